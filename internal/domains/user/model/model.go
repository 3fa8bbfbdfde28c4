package model

import "github.com/GitMovi52027/movi5/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPassword = "password"
	FieldRole     = "role"
)

type User struct {
	ID       string  `db:"id"`
	Email    string  `db:"email"`
	Name     *string `db:"name"`
	Password string  `db:"password"`
	Role     string  `db:"role"`
	model.Metadata
}

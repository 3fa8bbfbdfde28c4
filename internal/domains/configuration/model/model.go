package model

import "github.com/GitMovi52027/movi5/shared/model"

const (
	TableName  = "configurations"
	EntityName = "configuration"

	FieldID          = "id"
	FieldKey         = "key"
	FieldValue       = "value"
	FieldDescription = "description"
)

type Configuration struct {
	ID          string  `db:"id"`
	Key         string  `db:"key"`
	Value       string  `db:"value"`
	Description *string `db:"description"`
	model.Metadata
}

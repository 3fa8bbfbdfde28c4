package dto

import (
	"github.com/GitMovi52027/movi5/infras/jwt"
	userModel "github.com/GitMovi52027/movi5/internal/domains/user/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
	User         AccountResponse `json:"user"`
}

func (r *LoginResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

// AccountResponse is the public profile of an admin user. The password
// hash never leaves the service layer.
type AccountResponse struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

func (r *AccountResponse) FromModel(mod userModel.User) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Role = mod.Role
}

// UpdateAccountRequest carries an optional email change and an optional
// password change. Either password field present makes currentPassword
// mandatory.
type UpdateAccountRequest struct {
	Email           *string `json:"email" validate:"omitempty,email,max=255"`
	Name            *string `json:"name" validate:"omitempty,max=255"`
	CurrentPassword *string `json:"currentPassword" validate:"omitempty"`
	NewPassword     *string `json:"newPassword" validate:"omitempty,min=8"`
}

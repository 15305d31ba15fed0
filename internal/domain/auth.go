package domain

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("credentials incorrect")

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      Role   `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Signin(ctx context.Context, req SigninRequest) (*AuthResponse, error)
	// UserFromToken verifies the token and resolves its subject. Any failure
	// (bad signature, expiry, missing user) yields nil rather than an error.
	UserFromToken(ctx context.Context, token string) *User
}

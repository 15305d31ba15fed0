// Package domain
package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// RoleAllowed reports whether actual satisfies one of the required roles.
// An empty required list means any authenticated user.
func RoleAllowed(required []Role, actual Role) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == actual {
			return true
		}
	}
	return false
}

type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserRepository interface {
	// CreateWithCart persists the user together with their empty cart in a
	// single transaction. One cart per user, created at signup.
	CreateWithCart(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID int64) (*User, error)
}

// Package auth
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cartify-server/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo      domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration) domain.AuthService {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	user := &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      role,
		Password:  string(hash),
	}

	if err := s.repo.CreateWithCart(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Signin(ctx context.Context, req domain.SigninRequest) (*domain.AuthResponse, error) {
	// A missing user and a wrong password fail identically so the endpoint
	// cannot be used to enumerate accounts.
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{AccessToken: token}, nil
}

func (s *service) signToken(userID int64, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(s.jwtExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *service) UserFromToken(ctx context.Context, tokenString string) *domain.User {
	claims, err := parseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil
	}

	user, err := s.repo.GetByID(ctx, int64(sub))
	if err != nil {
		return nil
	}

	return user
}

func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Package cart
package cart

import (
	"context"

	"cartify-server/internal/cache"
	"cartify-server/internal/domain"
)

type service struct {
	repo  domain.CartRepository
	cache cache.CartCache
}

func NewService(repo domain.CartRepository, c cache.CartCache) domain.CartService {
	return &service{
		repo:  repo,
		cache: c,
	}
}

func (s *service) Get(ctx context.Context, userID int64) (*domain.Cart, error) {
	if cached, err := s.cache.Get(ctx, userID); err == nil {
		return cached, nil
	}

	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Best effort; a failed cache write never fails the read.
	_ = s.cache.Set(ctx, userID, cart)

	return cart, nil
}

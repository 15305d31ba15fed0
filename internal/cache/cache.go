// Package cache
package cache

import (
	"context"
	"errors"

	"cartify-server/internal/domain"
)

type CartCache interface {
	Get(ctx context.Context, userID int64) (*domain.Cart, error)
	Set(ctx context.Context, userID int64, cart *domain.Cart) error
	Delete(ctx context.Context, userID int64) error
}

var ErrCacheMiss = errors.New("cache miss")

// Noop stands in when no redis address is configured. Every read misses.
type Noop struct{}

func (Noop) Get(context.Context, int64) (*domain.Cart, error) { return nil, ErrCacheMiss }
func (Noop) Set(context.Context, int64, *domain.Cart) error   { return nil }
func (Noop) Delete(context.Context, int64) error              { return nil }

package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not found")
)

// InsufficientStockError reports a quantity request that exceeds the
// product's current stock. Available carries what is actually left.
type InsufficientStockError struct {
	ProductID int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Available)
}

type Cart struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId"`
	Items     []*CartItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type CartItem struct {
	ID        int64     `json:"id"`
	CartID    int64     `json:"cartId"`
	ProductID int64     `json:"productId"`
	Quantity  int64     `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CartItemCreateRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

type CartItemUpdateRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

type CartRepository interface {
	// GetByUserID loads the user's cart with its items and each item's
	// product.
	GetByUserID(ctx context.Context, userID int64) (*Cart, error)
}

// CartItemRepository scopes every lookup and mutation other than Create to
// the owning user via the cart relation, so a foreign item id behaves
// exactly like a missing one.
type CartItemRepository interface {
	Create(ctx context.Context, item *CartItem) error
	GetOwned(ctx context.Context, userID, itemID int64) (*CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID, quantity int64) (*CartItem, error)
	DeleteOwned(ctx context.Context, userID, itemID int64) error
	ListByUser(ctx context.Context, userID int64, opts ListOptions) ([]*CartItem, int64, error)
}

type CartService interface {
	Get(ctx context.Context, userID int64) (*Cart, error)
}

type CartItemService interface {
	Create(ctx context.Context, userID int64, req CartItemCreateRequest) (*CartItem, error)
	Get(ctx context.Context, userID, itemID int64) (*CartItem, error)
	GetAll(ctx context.Context, userID int64, opts ListOptions) (*Paginated[*CartItem], error)
	Update(ctx context.Context, userID, itemID int64, req CartItemUpdateRequest) (*CartItem, error)
	Delete(ctx context.Context, userID, itemID int64) error
}

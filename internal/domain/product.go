package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product already exists")
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ProductCreateRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int64           `json:"stock" validate:"gte=0"`
}

type ProductUpdateRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock" validate:"omitempty,gte=0"`
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID int64) (*Product, error)
	Update(ctx context.Context, req ProductUpdateRequest, productID int64) (*Product, error)
	Delete(ctx context.Context, productID int64) error
	List(ctx context.Context, opts ListOptions) ([]*Product, int64, error)
}

type ProductService interface {
	Create(ctx context.Context, req ProductCreateRequest) (*Product, error)
	Get(ctx context.Context, productID int64) (*Product, error)
	GetAll(ctx context.Context, opts ListOptions) (*Paginated[*Product], error)
	Update(ctx context.Context, req ProductUpdateRequest, productID int64) (*Product, error)
	Delete(ctx context.Context, productID int64) error
}

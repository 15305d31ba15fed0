// Package cartitem
package cartitem

import (
	"context"

	"cartify-server/internal/cache"
	"cartify-server/internal/domain"
)

type service struct {
	repo     domain.CartItemRepository
	carts    domain.CartService
	products domain.ProductService
	cache    cache.CartCache
}

func NewService(
	repo domain.CartItemRepository,
	carts domain.CartService,
	products domain.ProductService,
	c cache.CartCache,
) domain.CartItemService {
	return &service{
		repo:     repo,
		carts:    carts,
		products: products,
		cache:    c,
	}
}

// Create checks requested quantity against current stock before persisting
// the line item. The check and the insert are deliberately separate
// statements with no reservation lock, matching the observed behavior;
// concurrent creates can both pass the check.
func (s *service) Create(ctx context.Context, userID int64, req domain.CartItemCreateRequest) (*domain.CartItem, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if product.Stock-req.Quantity < 0 {
		return nil, &domain.InsufficientStockError{
			ProductID: product.ID,
			Available: product.Stock,
		}
	}

	item := &domain.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, userID)

	return item, nil
}

func (s *service) Get(ctx context.Context, userID, itemID int64) (*domain.CartItem, error) {
	return s.repo.GetOwned(ctx, userID, itemID)
}

func (s *service) GetAll(ctx context.Context, userID int64, opts domain.ListOptions) (*domain.Paginated[*domain.CartItem], error) {
	opts = opts.Normalize()

	items, total, err := s.repo.ListByUser(ctx, userID, opts)
	if err != nil {
		return nil, err
	}

	return domain.NewPaginated(items, total, opts), nil
}

func (s *service) Update(ctx context.Context, userID, itemID int64, req domain.CartItemUpdateRequest) (*domain.CartItem, error) {
	item, err := s.repo.GetOwned(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.Get(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	if req.Quantity > product.Stock {
		return nil, &domain.InsufficientStockError{
			ProductID: product.ID,
			Available: product.Stock,
		}
	}

	updated, err := s.repo.UpdateQuantity(ctx, userID, itemID, req.Quantity)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, userID)

	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID, itemID int64) error {
	if err := s.repo.DeleteOwned(ctx, userID, itemID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, userID)

	return nil
}

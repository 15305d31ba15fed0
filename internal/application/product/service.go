// Package product
package product

import (
	"context"

	"cartify-server/internal/domain"
)

type service struct {
	repo domain.ProductRepository
}

func NewService(repo domain.ProductRepository) domain.ProductService {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req domain.ProductCreateRequest) (*domain.Product, error) {
	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *service) Get(ctx context.Context, productID int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, productID)
}

func (s *service) GetAll(ctx context.Context, opts domain.ListOptions) (*domain.Paginated[*domain.Product], error) {
	opts = opts.Normalize()

	products, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	return domain.NewPaginated(products, total, opts), nil
}

func (s *service) Update(ctx context.Context, req domain.ProductUpdateRequest, productID int64) (*domain.Product, error) {
	return s.repo.Update(ctx, req, productID)
}

func (s *service) Delete(ctx context.Context, productID int64) error {
	return s.repo.Delete(ctx, productID)
}

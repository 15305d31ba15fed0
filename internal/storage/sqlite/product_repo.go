package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cartify-server/internal/domain"

	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) domain.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, description, price, stock, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		product.Name, product.Description, product.Price.String(), product.Stock, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT id, name, description, price, stock, created_at, updated_at
		FROM products WHERE id = ?`

	var (
		product domain.Product
		price   string
	)
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&price,
		&product.Stock,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	product.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product price: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, req domain.ProductUpdateRequest, productID int64) (*domain.Product, error) {
	product, err := r.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	product.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, price = ?, stock = ?, updated_at = ? WHERE id = ?`,
		product.Name, product.Description, product.Price.String(), product.Stock, product.UpdatedAt, productID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProductAlreadyExists
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to retrieve affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Product, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `SELECT id, name, description, price, stock, created_at, updated_at
		FROM products ORDER BY id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, opts.Limit, opts.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var (
			product domain.Product
			price   string
		)
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&price,
			&product.Stock,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}

		if product.Price, err = decimal.NewFromString(price); err != nil {
			return nil, 0, fmt.Errorf("failed to parse product price: %w", err)
		}

		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

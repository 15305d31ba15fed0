package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"cartify-server/internal/domain"

	"github.com/shopspring/decimal"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) domain.CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = ?`,
		userID,
	).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to scan cart: %w", err)
	}

	query := `SELECT
			ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
			p.id, p.name, p.description, p.price, p.stock, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = ?
		ORDER BY ci.id`

	rows, err := r.db.QueryContext(ctx, query, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	cart.Items = []*domain.CartItem{}
	for rows.Next() {
		var (
			item    domain.CartItem
			product domain.Product
			price   string
		)
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
			&product.ID,
			&product.Name,
			&product.Description,
			&price,
			&product.Stock,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}

		if product.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse product price: %w", err)
		}

		item.Product = &product
		cart.Items = append(cart.Items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cartify-server/internal/domain"
)

type CartItemRepository struct {
	db *sql.DB
}

func NewCartItemRepository(db *sql.DB) domain.CartItemRepository {
	return &CartItemRepository{db: db}
}

func (r *CartItemRepository) Create(ctx context.Context, item *domain.CartItem) error {
	now := time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		item.CartID, item.ProductID, item.Quantity, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now

	return nil
}

// GetOwned filters on both the item id and the owning cart's user id, so an
// item belonging to someone else is indistinguishable from a missing one.
func (r *CartItemRepository) GetOwned(ctx context.Context, userID, itemID int64) (*domain.CartItem, error) {
	query := `SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE ci.id = ? AND c.user_id = ?`

	var item domain.CartItem
	err := r.db.QueryRowContext(ctx, query, itemID, userID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to scan cart item: %w", err)
	}

	return &item, nil
}

func (r *CartItemRepository) UpdateQuantity(ctx context.Context, userID, itemID, quantity int64) (*domain.CartItem, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = ?, updated_at = ?
		 WHERE id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)`,
		quantity, time.Now().UTC(), itemID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return nil, domain.ErrCartItemNotFound
	}

	return r.GetOwned(ctx, userID, itemID)
}

func (r *CartItemRepository) DeleteOwned(ctx context.Context, userID, itemID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items
		 WHERE id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)`,
		itemID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to retrieve affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}

	return nil
}

func (r *CartItemRepository) ListByUser(ctx context.Context, userID int64, opts domain.ListOptions) ([]*domain.CartItem, int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cart_items ci JOIN carts c ON c.id = ci.cart_id WHERE c.user_id = ?`,
		userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cart items: %w", err)
	}

	query := `SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE c.user_id = ?
		ORDER BY ci.id
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, userID, opts.Limit, opts.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []*domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"cartify-server/internal/config"
	"cartify-server/internal/domain"
	"cartify-server/internal/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a file-backed database in a temp dir. A :memory: DSN
// would give every pooled connection its own empty database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	log := logger.New(&config.Config{LogLevel: "error", LogFormat: "text"})

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedUser(t *testing.T, db *sql.DB, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Role:      domain.RoleCustomer,
		Password:  "hashed-password",
	}
	require.NoError(t, NewUserRepository(db).CreateWithCart(context.Background(), user))

	return user
}

func seedProduct(t *testing.T, db *sql.DB, name string, stock int64) *domain.Product {
	t.Helper()

	product := &domain.Product{
		Name:  name,
		Price: decimal.NewFromFloat(9.99),
		Stock: stock,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))

	return product
}

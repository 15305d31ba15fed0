package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cartify-server/internal/application/auth"
	"cartify-server/internal/application/cart"
	"cartify-server/internal/application/cartitem"
	"cartify-server/internal/application/product"
	"cartify-server/internal/cache"
	"cartify-server/internal/config"
	"cartify-server/internal/domain"
	"cartify-server/internal/logger"
	"cartify-server/internal/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		LogLevel:  "error",
		LogFormat: "text",
	}
	log := logger.New(cfg)

	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cartCache := cache.Noop{}

	authService := auth.NewService(sqlite.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
	productService := product.NewService(sqlite.NewProductRepository(db))
	cartService := cart.NewService(sqlite.NewCartRepository(db), cartCache)
	cartItemService := cartitem.NewService(sqlite.NewCartItemRepository(db), cartService, productService, cartCache)

	return NewRouter(cfg, log, &RouterDeps{
		AuthService: authService,
		Auth:        NewAuthHandler(authService),
		Product:     NewProductHandler(productService),
		Cart:        NewCartHandler(cartService),
		CartItem:    NewCartItemHandler(cartItemService),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func signup(t *testing.T, router http.Handler, email, password string, role domain.Role) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  password,
		"role":      role,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func signin(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res domain.AuthResponse
	decodeBody(t, rec, &res)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func createProduct(t *testing.T, router http.Handler, adminToken, name string, price string, stock int64) int64 {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/product", adminToken, map[string]any{
		"name":  name,
		"price": price,
		"stock": stock,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var p domain.Product
	decodeBody(t, rec, &p)
	return p.ID
}

func TestSignupSigninUserRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "ada@example.com", "Str0ng!Pass", domain.RoleCustomer)
	token := signin(t, router, "ada@example.com", "Str0ng!Pass")

	rec := doJSON(t, router, http.MethodGet, "/auth/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NotContains(t, rec.Body.String(), "password", "hash never serialized")

	var user domain.User
	decodeBody(t, rec, &user)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, domain.RoleCustomer, user.Role)
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "ada@example.com", "Str0ng!Pass", domain.RoleCustomer)

	rec := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
		"firstName": "Test",
		"lastName":  "User",
		"email":     "ada@example.com",
		"password":  "Str0ng!Pass",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestSignup_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
		"firstName": "Test",
		"email":     "not-an-email",
		"password":  "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var res APIResponse
	decodeBody(t, rec, &res)
	assert.Equal(t, "The given data was invalid.", res.Message)

	errs, ok := res.Errors.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "lastname")
}

func TestSignin_UniformRejection(t *testing.T) {
	router := newTestRouter(t)
	signup(t, router, "ada@example.com", "Str0ng!Pass", domain.RoleCustomer)

	unknown := doJSON(t, router, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "Str0ng!Pass",
	})
	wrongPass := doJSON(t, router, http.MethodPost, "/auth/signin", "", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String(), "identical body for both failure modes")
}

func TestAuthUser_RequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/auth/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token found")

	rec = doJSON(t, router, http.MethodGet, "/auth/user", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestProductMutation_AdminOnly(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "admin@example.com", "Str0ng!Pass", domain.RoleAdmin)
	signup(t, router, "customer@example.com", "Str0ng!Pass", domain.RoleCustomer)
	adminToken := signin(t, router, "admin@example.com", "Str0ng!Pass")
	customerToken := signin(t, router, "customer@example.com", "Str0ng!Pass")

	body := map[string]any{"name": "keyboard", "price": "49.99", "stock": 5}

	rec := doJSON(t, router, http.MethodPost, "/product", customerToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADMIN access")

	rec = doJSON(t, router, http.MethodPost, "/product", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/product", adminToken, body)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestProduct_PublicRead(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "admin@example.com", "Str0ng!Pass", domain.RoleAdmin)
	adminToken := signin(t, router, "admin@example.com", "Str0ng!Pass")
	productID := createProduct(t, router, adminToken, "keyboard", "49.99", 5)

	// No token needed for reads.
	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/product/%d", productID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p domain.Product
	decodeBody(t, rec, &p)
	assert.Equal(t, "keyboard", p.Name)

	rec = doJSON(t, router, http.MethodGet, "/product/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/product/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProduct_ListPaginationContract(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "admin@example.com", "Str0ng!Pass", domain.RoleAdmin)
	adminToken := signin(t, router, "admin@example.com", "Str0ng!Pass")
	for i := 0; i < 12; i++ {
		createProduct(t, router, adminToken, fmt.Sprintf("product-%02d", i), "1.00", 1)
	}

	rec := doJSON(t, router, http.MethodGet, "/product?page=3&limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data        []domain.Product `json:"data"`
		TotalItems  int64            `json:"totalItems"`
		TotalPages  int              `json:"totalPages"`
		CurrentPage int              `json:"currentPage"`
	}
	decodeBody(t, rec, &page)

	assert.Equal(t, int64(12), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Len(t, page.Data, 2)

	// Out-of-range pages return an empty data array, not null.
	rec = doJSON(t, router, http.MethodGet, "/product?page=9&limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCart_RequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCart_CreatedAtSignup(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "ada@example.com", "Str0ng!Pass", domain.RoleCustomer)
	token := signin(t, router, "ada@example.com", "Str0ng!Pass")

	rec := doJSON(t, router, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var c domain.Cart
	decodeBody(t, rec, &c)
	assert.NotZero(t, c.ID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestCartItem_StockCheck(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "admin@example.com", "Str0ng!Pass", domain.RoleAdmin)
	adminToken := signin(t, router, "admin@example.com", "Str0ng!Pass")
	productID := createProduct(t, router, adminToken, "keyboard", "49.99", 5)

	signup(t, router, "ada@example.com", "Str0ng!Pass", domain.RoleCustomer)
	token := signin(t, router, "ada@example.com", "Str0ng!Pass")

	rec := doJSON(t, router, http.MethodPost, "/cart-item", token, map[string]any{
		"productId": productID,
		"quantity":  6,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "5 available")

	rec = doJSON(t, router, http.MethodPost, "/cart-item", token, map[string]any{
		"productId": productID,
		"quantity":  5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var item domain.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, int64(5), item.Quantity)

	// The cart now carries the line item with its product.
	rec = doJSON(t, router, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var c domain.Cart
	decodeBody(t, rec, &c)
	require.Len(t, c.Items, 1)
	require.NotNil(t, c.Items[0].Product)
	assert.Equal(t, "keyboard", c.Items[0].Product.Name)
}

func TestCartItem_ForeignItemLooksMissing(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "admin@example.com", "Str0ng!Pass", domain.RoleAdmin)
	adminToken := signin(t, router, "admin@example.com", "Str0ng!Pass")
	productID := createProduct(t, router, adminToken, "keyboard", "49.99", 10)

	signup(t, router, "owner@example.com", "Str0ng!Pass", domain.RoleCustomer)
	signup(t, router, "intruder@example.com", "Str0ng!Pass", domain.RoleCustomer)
	ownerToken := signin(t, router, "owner@example.com", "Str0ng!Pass")
	intruderToken := signin(t, router, "intruder@example.com", "Str0ng!Pass")

	rec := doJSON(t, router, http.MethodPost, "/cart-item", ownerToken, map[string]any{
		"productId": productID,
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item domain.CartItem
	decodeBody(t, rec, &item)
	itemPath := fmt.Sprintf("/cart-item/%d", item.ID)

	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, itemPath, intruderToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodPatch, itemPath, intruderToken, map[string]any{"quantity": 1}).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodDelete, itemPath, intruderToken, nil).Code)

	// Still intact for the owner.
	rec = doJSON(t, router, http.MethodGet, itemPath, ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCartItem_UpdateAndDelete(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "admin@example.com", "Str0ng!Pass", domain.RoleAdmin)
	adminToken := signin(t, router, "admin@example.com", "Str0ng!Pass")
	productID := createProduct(t, router, adminToken, "keyboard", "49.99", 10)

	signup(t, router, "ada@example.com", "Str0ng!Pass", domain.RoleCustomer)
	token := signin(t, router, "ada@example.com", "Str0ng!Pass")

	rec := doJSON(t, router, http.MethodPost, "/cart-item", token, map[string]any{
		"productId": productID,
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item domain.CartItem
	decodeBody(t, rec, &item)
	itemPath := fmt.Sprintf("/cart-item/%d", item.ID)

	// Over stock on update.
	rec = doJSON(t, router, http.MethodPatch, itemPath, token, map[string]any{"quantity": 11})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "10 available")

	rec = doJSON(t, router, http.MethodPatch, itemPath, token, map[string]any{"quantity": 7})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &item)
	assert.Equal(t, int64(7), item.Quantity)

	// Zero quantity rejected by validation.
	rec = doJSON(t, router, http.MethodPatch, itemPath, token, map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, itemPath, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item deleted successfully")

	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, itemPath, token, nil).Code)
}

func TestCartItem_IndexScopedToUser(t *testing.T) {
	router := newTestRouter(t)

	signup(t, router, "admin@example.com", "Str0ng!Pass", domain.RoleAdmin)
	adminToken := signin(t, router, "admin@example.com", "Str0ng!Pass")
	keyboard := createProduct(t, router, adminToken, "keyboard", "49.99", 10)
	mouse := createProduct(t, router, adminToken, "mouse", "19.99", 10)

	signup(t, router, "a@example.com", "Str0ng!Pass", domain.RoleCustomer)
	signup(t, router, "b@example.com", "Str0ng!Pass", domain.RoleCustomer)
	tokenA := signin(t, router, "a@example.com", "Str0ng!Pass")
	tokenB := signin(t, router, "b@example.com", "Str0ng!Pass")

	for _, pid := range []int64{keyboard, mouse} {
		rec := doJSON(t, router, http.MethodPost, "/cart-item", tokenA, map[string]any{
			"productId": pid,
			"quantity":  1,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/cart-item", tokenA, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data       []domain.CartItem `json:"data"`
		TotalItems int64             `json:"totalItems"`
	}
	decodeBody(t, rec, &page)
	assert.Equal(t, int64(2), page.TotalItems)
	assert.Len(t, page.Data, 2)

	rec = doJSON(t, router, http.MethodGet, "/cart-item", tokenB, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &page)
	assert.Equal(t, int64(0), page.TotalItems)
	assert.Empty(t, page.Data)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", strings.TrimSpace(rec.Body.String()))
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	// Absent header gets a generated id.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

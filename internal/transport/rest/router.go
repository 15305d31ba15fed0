package rest

import (
	"net/http"

	"cartify-server/internal/config"
	"cartify-server/internal/domain"
	"cartify-server/internal/logger"
	"cartify-server/internal/transport/rest/middleware"
)

type RouterDeps struct {
	AuthService domain.AuthService

	Auth     *AuthHandler
	Product  *ProductHandler
	Cart     *CartHandler
	CartItem *CartItemHandler
}

func NewRouter(cfg *config.Config, log logger.Logger, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.CORS(cfg))
	globalMw.Use(middleware.RequestID())
	globalMw.Use(middleware.AccessLog(log))

	userStack := middleware.New()
	userStack.Use(middleware.JWT(deps.AuthService))

	adminStack := userStack.Extend(middleware.RequireRole(domain.RoleAdmin))

	// HEALTH
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// AUTH
	mux.HandleFunc("POST /auth/signup", deps.Auth.Signup)
	mux.HandleFunc("POST /auth/signin", deps.Auth.Signin)
	mux.Handle("GET /auth/user", userStack.ThenFunc(deps.Auth.User))

	// PRODUCTS (public read, admin mutation)
	mux.HandleFunc("GET /product", deps.Product.Index)
	mux.HandleFunc("GET /product/{id}", deps.Product.Show)
	mux.Handle("POST /product", adminStack.ThenFunc(deps.Product.Store))
	mux.Handle("PATCH /product/{id}", adminStack.ThenFunc(deps.Product.Update))
	mux.Handle("DELETE /product/{id}", adminStack.ThenFunc(deps.Product.Destroy))

	// CART
	mux.Handle("GET /cart", userStack.ThenFunc(deps.Cart.Show))

	// CART ITEMS
	mux.Handle("GET /cart-item", userStack.ThenFunc(deps.CartItem.Index))
	mux.Handle("POST /cart-item", userStack.ThenFunc(deps.CartItem.Store))
	mux.Handle("GET /cart-item/{id}", userStack.ThenFunc(deps.CartItem.Show))
	mux.Handle("PATCH /cart-item/{id}", userStack.ThenFunc(deps.CartItem.Update))
	mux.Handle("DELETE /cart-item/{id}", userStack.ThenFunc(deps.CartItem.Destroy))

	return globalMw.Apply(mux)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cartify-server/internal/application/auth"
	"cartify-server/internal/application/cart"
	"cartify-server/internal/application/cartitem"
	"cartify-server/internal/application/product"
	"cartify-server/internal/cache"
	"cartify-server/internal/config"
	"cartify-server/internal/logger"
	"cartify-server/internal/storage/sqlite"
	"cartify-server/internal/transport/rest"

	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.New(cfg)

	db, err := sqlite.NewDB(cfg.DBPath, log)
	if err != nil {
		log.Error("sqlite", "connect", err)
		return
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("sqlite", "close", err)
		}
	}()

	var cartCache cache.CartCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		cartCache = cache.NewRedisCache(client, cfg.CacheTTL)
		log.Info("redis cart cache enabled", "addr", cfg.RedisAddr)
	}

	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	cartRepo := sqlite.NewCartRepository(db)
	cartItemRepo := sqlite.NewCartItemRepository(db)

	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	productService := product.NewService(productRepo)
	cartService := cart.NewService(cartRepo, cartCache)
	cartItemService := cartitem.NewService(cartItemRepo, cartService, productService, cartCache)

	router := rest.NewRouter(cfg, log, &rest.RouterDeps{
		AuthService: authService,
		Auth:        rest.NewAuthHandler(authService),
		Product:     rest.NewProductHandler(productService),
		Cart:        rest.NewCartHandler(cartService),
		CartItem:    rest.NewCartItemHandler(cartItemService),
	})

	srv := rest.NewServer(router, cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting http server", "address", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("http server shutdown error", "error", err)
		}

	case err := <-errCh:
		log.Error("http server error", "error", err)
	}

	log.Info("server stopped")
}

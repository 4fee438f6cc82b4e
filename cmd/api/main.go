package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bookstore/internal/auth"
	"bookstore/internal/config"
	"bookstore/internal/db"
	"bookstore/internal/httpserver"
	bookrepo "bookstore/internal/repository/book"
	"bookstore/internal/repository/book/spec"
	cartrepo "bookstore/internal/repository/cart"
	categoryrepo "bookstore/internal/repository/category"
	orderrepo "bookstore/internal/repository/order"
	userrepo "bookstore/internal/repository/user"
	booksvc "bookstore/internal/service/book"
	cartsvc "bookstore/internal/service/cart"
	categorysvc "bookstore/internal/service/category"
	ordersvc "bookstore/internal/service/order"
	usersvc "bookstore/internal/service/user"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	bookRepo := bookrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)

	bookService := booksvc.New(bookRepo, spec.NewBuilder(spec.DefaultRegistry()))
	categoryService := categorysvc.New(categoryRepo, bookRepo)
	cartService := cartsvc.New(cartRepo, bookRepo)
	orderService := ordersvc.New(orderRepo)
	userService := usersvc.New(userRepo, cartService, tokens)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Books:      bookService,
		Categories: categoryService,
		Carts:      cartService,
		Orders:     orderService,
		Users:      userService,
		Tokens:     tokens,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

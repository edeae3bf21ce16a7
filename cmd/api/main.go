package main

import (
	"context"
	"log"

	"github.com/rabbinur71/quickbite-frontend/internal/api"
	"github.com/rabbinur71/quickbite-frontend/internal/auth"
	"github.com/rabbinur71/quickbite-frontend/internal/cart"
	"github.com/rabbinur71/quickbite-frontend/internal/catalog"
	"github.com/rabbinur71/quickbite-frontend/internal/checkout"
	"github.com/rabbinur71/quickbite-frontend/internal/config"
	"github.com/rabbinur71/quickbite-frontend/internal/localstore"
	"github.com/rabbinur71/quickbite-frontend/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg := config.Load()

	// ───────────────────────── STORAGE ─────────────────────────
	var store localstore.Store
	switch cfg.StoreDriver {
	case "postgres":
		pool := localstore.ConnectPostgres(cfg.DatabaseURL)
		defer pool.Close()
		store = localstore.NewPostgresStore(pool)
	case "redis":
		client := localstore.ConnectRedis(cfg.RedisAddr)
		defer client.Close()
		store = localstore.NewRedisStore(client)
	default:
		store = localstore.NewMemoryStore()
	}

	// ───────────────────────── BACKEND CLIENT ─────────────────────────
	client := api.NewClient(cfg.BackendURL, store)

	// ───────────────────────── AUTH SESSION ─────────────────────────
	session := auth.NewSession(client)
	client.OnUnauthorized(session.Invalidate)
	session.Bootstrap(context.Background())

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(client)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(session)
	cartHandler := cart.NewHandler(store)
	catalogHandler := catalog.NewHandler(catalogService)
	adminHandler := catalog.NewAdminHandler(catalogService)
	checkoutHandler := checkout.NewHandler(store, cfg.WhatsAppNumber)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		JWTSecret: []byte(cfg.JWTSecret),
		Session:   session,
		Auth:      authHandler,
		Cart:      cartHandler,
		Catalog:   catalogHandler,
		Admin:     adminHandler,
		Checkout:  checkoutHandler,
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

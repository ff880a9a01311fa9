package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/10corp/shurjopay-blesta/internal/api"
	"github.com/10corp/shurjopay-blesta/internal/config"
	"github.com/10corp/shurjopay-blesta/internal/db"
	"github.com/10corp/shurjopay-blesta/internal/logger"
	"github.com/10corp/shurjopay-blesta/internal/middleware"
	"github.com/10corp/shurjopay-blesta/internal/payment"
	"github.com/10corp/shurjopay-blesta/internal/settings"
	"github.com/10corp/shurjopay-blesta/internal/shurjopay"

	"go.uber.org/zap"
)

// Indirections so tests can run main's wiring without a real database or
// listener.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("ShurjoPay gateway listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

// loadCredentials prefers the encrypted settings store over the environment
// for the sensitive fields, matching how the billing platform stores them.
func loadCredentials(cfg *config.Config, database *sql.DB) shurjopay.Credentials {
	creds := shurjopay.Credentials{
		StoreID:       cfg.StoreID,
		StorePassword: cfg.StorePassword,
		StorePrefix:   cfg.StorePrefix,
		DevMode:       cfg.DevMode,
	}

	if cfg.SettingsKey == "" {
		return creds
	}

	store, err := settings.NewStore(database, cfg.SettingsKey)
	if err != nil {
		logger.L().Warn("Settings store unavailable, using environment credentials", zap.Error(err))
		return creds
	}

	ctx := context.Background()
	if storeID, err := store.Get(ctx, "store_id"); err == nil {
		creds.StoreID = storeID
	}
	if storePassword, err := store.Get(ctx, "store_password"); err == nil {
		creds.StorePassword = storePassword
	}
	return creds
}

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	client := shurjopay.NewClient(loadCredentials(cfg, database))
	repo := payment.NewRepository(database)
	notifier := payment.NewNotifier(cfg.CallbackBaseURL, cfg.CompanyID)
	gateway := payment.NewService(client, repo, notifier, shurjopay.DefaultCurrency)

	return setupRouter(api.NewHandler(gateway))
}

func setupRouter(h *api.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("POST /checkout", middleware.AuthMiddleware(http.HandlerFunc(h.Checkout)))
	mux.HandleFunc("GET /return", h.Return)
	mux.HandleFunc("GET /cancel", h.Cancel)

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	return handler
}

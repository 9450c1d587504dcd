// @title                       Storefront API
// @version                     1.0
// @description                 Accounts, product catalog and card payments.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/api"
	"github.com/storefront/storefront-api/internal/api/handler"
	"github.com/storefront/storefront-api/internal/core/service"
	mongostore "github.com/storefront/storefront-api/internal/infrastructure/db/mongo"
	stripepay "github.com/storefront/storefront-api/internal/infrastructure/payment/stripe"
	"github.com/storefront/storefront-api/internal/pkg/config"
	"github.com/storefront/storefront-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "storefront-api",
	})

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to connect mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			lg.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	users := mongostore.NewUserRepository(db)
	products := mongostore.NewProductRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		lg.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := products.EnsureIndexes(ctx); err != nil {
		lg.Fatal().Err(err).Msg("failed to create product indexes")
	}

	if cfg.Stripe.SecretKey == "" {
		lg.Warn().Msg("STRIPE_SECRET_KEY is not set; charges will be rejected by the processor")
	}
	charges := stripepay.NewChargeClient(stripepay.Config{
		SecretKey: cfg.Stripe.SecretKey,
		APIURL:    cfg.Stripe.APIURL,
	}, lg)

	e := api.NewRouter(api.Dependencies{
		Users:    users,
		Products: products,
		Charges:  charges,
		Hasher:   service.NewBcryptHasher(cfg.Auth.BcryptCost),
		Tokens:   service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Logger:   lg,
		Checks:   []handler.DependencyChecker{mongostore.NewPinger(db)},
	})

	go func() {
		lg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	shutdown(e, cfg.ShutdownTimeout, lg)
}

// shutdown drains in-flight requests, giving up after timeout.
func shutdown(e *echo.Echo, timeout time.Duration, lg zerolog.Logger) {
	lg.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("graceful shutdown failed")
	}
}

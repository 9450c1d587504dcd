package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/storefront/storefront-api/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Config captures the settings required to talk to the Stripe API.
type Config struct {
	SecretKey string
	// APIURL overrides the Stripe endpoint. Empty means the public API.
	APIURL    string
	Timeout   time.Duration
}

// ChargeClient implements ports.ChargeGateway on the Stripe Charges API.
// Network retries are disabled; every failure reaches the caller at once.
type ChargeClient struct {
	api *client.API
}

func NewChargeClient(cfg Config, log zerolog.Logger) *ChargeClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		LeveledLogger:     leveledLogger{log: log.With().Str("component", "stripe").Logger()},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(cfg.APIURL)
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
	})
	return &ChargeClient{api: api}
}

func (c *ChargeClient) CreateCharge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	params := &stripe.ChargeParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		Source:   &stripe.PaymentSourceSourceParams{Token: stripe.String(req.Source)},
	}
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.Context = ctx

	ch, err := c.api.Charges.New(params)
	if err != nil {
		return nil, toPaymentError(err)
	}

	return &domain.Charge{
		ID:          ch.ID,
		Object:      ch.Object,
		Amount:      ch.Amount,
		Currency:    string(ch.Currency),
		Description: ch.Description,
		Status:      string(ch.Status),
		Paid:        ch.Paid,
		Captured:    ch.Captured,
		Created:     ch.Created,
		ReceiptURL:  ch.ReceiptURL,
	}, nil
}

// toPaymentError keeps Stripe's own message for API errors. Transport
// failures carry a generic message so connection details are not exposed.
func toPaymentError(err error) *domain.PaymentError {
	var se *stripe.Error
	if errors.As(err, &se) {
		msg := se.Msg
		if msg == "" {
			msg = fmt.Sprintf("payment processor returned status %d", se.HTTPStatusCode)
		}
		return &domain.PaymentError{Message: msg, Code: string(se.Code), Err: err}
	}
	return &domain.PaymentError{Message: "payment processor unavailable", Err: err}
}

// leveledLogger routes the Stripe SDK's internal logging through zerolog.
type leveledLogger struct {
	log zerolog.Logger
}

func (l leveledLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
func (l leveledLogger) Infof(format string, v ...interface{})  { l.log.Debug().Msgf(format, v...) }
func (l leveledLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l leveledLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }

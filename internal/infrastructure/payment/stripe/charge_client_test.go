package stripe

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/storefront-api/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *ChargeClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewChargeClient(Config{SecretKey: "sk_test_123", APIURL: srv.URL}, zerolog.Nop())
}

func TestChargeClient_CreateCharge(t *testing.T) {
	var form url.Values
	var idemKey, auth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/charges" {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))
		idemKey = r.Header.Get("Idempotency-Key")
		auth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "ch_123",
			"object": "charge",
			"amount": 2000,
			"currency": "xof",
			"description": "Order 42",
			"status": "succeeded",
			"paid": true,
			"captured": true,
			"created": 1760000000,
			"receipt_url": "https://pay.example.com/receipts/ch_123"
		}`)
	})

	ch, err := client.CreateCharge(context.Background(), domain.ChargeRequest{
		Amount:         2000,
		Currency:       "xof",
		Source:         "tok_visa",
		Description:    "Order 42",
		IdempotencyKey: "order-42",
	})
	require.NoError(t, err)

	assert.Equal(t, "2000", form.Get("amount"))
	assert.Equal(t, "xof", form.Get("currency"))
	assert.Equal(t, "tok_visa", form.Get("source"))
	assert.Equal(t, "Order 42", form.Get("description"))
	assert.Equal(t, "order-42", idemKey)
	assert.Equal(t, "Bearer sk_test_123", auth)

	assert.Equal(t, &domain.Charge{
		ID:          "ch_123",
		Object:      "charge",
		Amount:      2000,
		Currency:    "xof",
		Description: "Order 42",
		Status:      "succeeded",
		Paid:        true,
		Captured:    true,
		Created:     1760000000,
		ReceiptURL:  "https://pay.example.com/receipts/ch_123",
	}, ch)
}

func TestChargeClient_CardDeclined(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = io.WriteString(w, `{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`)
	})

	_, err := client.CreateCharge(context.Background(), domain.ChargeRequest{
		Amount: 500, Currency: "usd", Source: "tok_chargeDeclined",
	})

	var pe *domain.PaymentError
	require.True(t, errors.As(err, &pe), "expected *domain.PaymentError, got %v", err)
	assert.Equal(t, "Your card was declined.", pe.Message)
	assert.Equal(t, "card_declined", pe.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChargeClient_ServerErrorIsNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"type":"api_error","message":"Something went wrong."}}`)
	})

	_, err := client.CreateCharge(context.Background(), domain.ChargeRequest{
		Amount: 500, Currency: "usd", Source: "tok_visa",
	})

	var pe *domain.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Something went wrong.", pe.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChargeClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client := NewChargeClient(Config{SecretKey: "sk_test_123", APIURL: addr}, zerolog.Nop())
	_, err := client.CreateCharge(context.Background(), domain.ChargeRequest{
		Amount: 500, Currency: "usd", Source: "tok_visa",
	})

	var pe *domain.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "payment processor unavailable", pe.Message)
}

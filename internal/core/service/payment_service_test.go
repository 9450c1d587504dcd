package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/storefront-api/internal/core/domain"
)

type stubGateway struct {
	got   domain.ChargeRequest
	calls int
	err   error
}

func (g *stubGateway) CreateCharge(_ context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	g.calls++
	g.got = req
	if g.err != nil {
		return nil, g.err
	}
	return &domain.Charge{ID: "ch_1", Object: "charge", Amount: req.Amount, Currency: req.Currency, Status: "succeeded", Paid: true}, nil
}

func TestPaymentService_Charge(t *testing.T) {
	gw := &stubGateway{}
	svc := NewPaymentService(gw, discardLogger)

	charge, err := svc.Charge(context.Background(), domain.ChargeRequest{Amount: 1000, Currency: "XOF", Source: "tok_visa"})
	require.NoError(t, err)
	assert.Equal(t, "ch_1", charge.ID)
	assert.Equal(t, "xof", gw.got.Currency)
}

func TestPaymentService_ProcessorRejection(t *testing.T) {
	gw := &stubGateway{err: &domain.PaymentError{Message: "Your card was declined.", Code: "card_declined"}}
	svc := NewPaymentService(gw, discardLogger)

	_, err := svc.Charge(context.Background(), domain.ChargeRequest{Amount: 1000, Currency: "xof", Source: "tok_chargeDeclined"})

	var pe *domain.PaymentError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Your card was declined.", pe.Message)
	assert.Equal(t, 1, gw.calls, "charges are never retried")
}

func TestPaymentService_UnexpectedFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := NewPaymentService(&stubGateway{err: boom}, discardLogger)

	_, err := svc.Charge(context.Background(), domain.ChargeRequest{Amount: 1, Currency: "usd", Source: "tok"})
	assert.ErrorIs(t, err, boom)
}

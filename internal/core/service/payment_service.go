package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// PaymentService forwards charges to the payment processor. Nothing is
// retried; processor failures are returned to the caller immediately.
type PaymentService struct {
	gateway ports.ChargeGateway
	logger  zerolog.Logger
}

func NewPaymentService(gateway ports.ChargeGateway, logger zerolog.Logger) *PaymentService {
	return &PaymentService{gateway: gateway, logger: logger}
}

func (s *PaymentService) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	req.Currency = strings.ToLower(req.Currency)

	charge, err := s.gateway.CreateCharge(ctx, req)
	if err != nil {
		var pe *domain.PaymentError
		if errors.As(err, &pe) {
			s.logger.Warn().Str("code", pe.Code).Str("currency", req.Currency).Msg("charge rejected")
			return nil, err
		}
		return nil, fmt.Errorf("charge: %w", err)
	}

	s.logger.Info().
		Str("charge_id", charge.ID).
		Int64("amount", charge.Amount).
		Str("currency", charge.Currency).
		Msg("charge created")
	return charge, nil
}

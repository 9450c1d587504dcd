package ports

import (
	"context"

	"github.com/storefront/storefront-api/internal/core/domain"
)

// ChargeGateway captures card charges with an external payment processor.
// Processor-side rejections are returned as *domain.PaymentError.
type ChargeGateway interface {
	CreateCharge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error)
}

type PaymentService interface {
	Charge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error)
}

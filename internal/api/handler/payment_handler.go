package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/api/metrics"
	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// PaymentHandler forwards card charges to the payment processor.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type chargeRequest struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Source      string `json:"source" validate:"required"`
	Description string `json:"description"`
}

// Create handles POST /api/payments. Any failure, local or reported by the
// processor, is answered with 400 and {"error": "<message>"}.
//
// @Summary      Charge a card
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string         false  "Idempotency key forwarded to the processor"
// @Param        body             body      chargeRequest  true   "Charge details (amount in minor units)"
// @Success      201              {object}  domain.Charge
// @Failure      400              {object}  PaymentErrorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req chargeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, PaymentErrorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, PaymentErrorResponse{Error: joinFieldMessages(ve)})
		}
		return err
	}

	currency := strings.ToLower(req.Currency)
	charge, err := h.service.Charge(c.Request().Context(), domain.ChargeRequest{
		Amount:         req.Amount,
		Currency:       currency,
		Source:         req.Source,
		Description:    req.Description,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		var pe *domain.PaymentError
		if errors.As(err, &pe) {
			metrics.ChargesTotal.WithLabelValues("declined", currency).Inc()
		} else {
			metrics.ChargesTotal.WithLabelValues("error", currency).Inc()
		}
		return err
	}

	metrics.ChargesTotal.WithLabelValues("succeeded", currency).Inc()
	metrics.ChargeAmountTotal.WithLabelValues(currency).Add(float64(charge.Amount))
	return c.JSON(http.StatusCreated, charge)
}

func joinFieldMessages(ve *domain.ValidationError) string {
	msgs := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

package handler

import "github.com/storefront/storefront-api/internal/core/domain"

// ErrorResponse is the error envelope rendered for every failed request
// outside the payments route. Errors is only set for validation failures.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// PaymentErrorResponse is the envelope of a failed charge. Error carries the
// processor's message.
type PaymentErrorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

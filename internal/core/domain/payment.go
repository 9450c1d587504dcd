package domain

import "fmt"

// ChargeRequest is a card charge to forward to the payment processor.
// Amount is expressed in the currency's smallest unit.
type ChargeRequest struct {
	Amount         int64
	Currency       string
	Source         string
	Description    string
	IdempotencyKey string
}

// Charge is the processor's view of a created charge.
type Charge struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Paid        bool   `json:"paid"`
	Captured    bool   `json:"captured"`
	Created     int64  `json:"created"`
	ReceiptURL  string `json:"receipt_url,omitempty"`
}

// PaymentError wraps a failure reported by the payment processor. Message is
// safe to return to the client as-is.
type PaymentError struct {
	Message string
	Code    string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment failed (%s): %s", e.Code, e.Message)
	}
	return "payment failed: " + e.Message
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest input for recording a payment. PayeeID is resolved to
// worker_id or vendor_id according to PayeeType; exactly one ends up set.
type RecordPaymentRequest struct {
	PayeeType  string          `json:"payee_type" validate:"required,oneof=worker vendor"`
	PayeeID    string          `json:"payee_id" validate:"required"`
	CustomerID *string         `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      *string         `json:"notes"`
}

// PaymentResponse output for a payment.
type PaymentResponse struct {
	ID         string          `json:"id"`
	PayeeType  string          `json:"payee_type"`
	WorkerID   *string         `json:"worker_id"`
	VendorID   *string         `json:"vendor_id"`
	CustomerID *string         `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	AmountINR  string          `json:"amount_inr"`
	Notes      *string         `json:"notes"`
	PaidBy     string          `json:"paid_by"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PaymentListResponse payment list.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPurchaseRequest input for recording a vendor purchase. TotalAmount is not
// accepted from the client; it is always quantity x rate computed server-side.
type RecordPurchaseRequest struct {
	CustomerID      string          `json:"customer_id" validate:"required"`
	VendorID        string          `json:"vendor_id" validate:"required"`
	ItemDescription string          `json:"item_description" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,gt=0"`
	Unit            string          `json:"unit"`
	Rate            decimal.Decimal `json:"rate"`
}

// VendorPurchaseResponse output for a vendor purchase.
type VendorPurchaseResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	VendorID        string          `json:"vendor_id"`
	ItemDescription string          `json:"item_description"`
	Quantity        int             `json:"quantity"`
	Unit            string          `json:"unit"`
	Rate            decimal.Decimal `json:"rate"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PurchasedBy     string          `json:"purchased_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

// VendorPurchaseListResponse purchase list.
type VendorPurchaseListResponse struct {
	Items []VendorPurchaseResponse `json:"items"`
}

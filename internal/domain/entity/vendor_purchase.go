package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorPurchase records items bought from a vendor for a customer's project.
// TotalAmount is always Quantity x Rate, computed server-side at record time.
type VendorPurchase struct {
	ID              string
	CustomerID      string
	VendorID        string
	ItemDescription string
	Quantity        int
	Unit            string
	Rate            decimal.Decimal
	TotalAmount     decimal.Decimal
	PurchasedBy     string // User id
	CreatedAt       time.Time
}

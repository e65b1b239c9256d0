package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payee types for Payment.
const (
	PayeeTypeWorker = "worker"
	PayeeTypeVendor = "vendor"
)

// Payment records money paid out to a worker or vendor, optionally tied to a
// customer. Exactly one of WorkerID/VendorID is set, matching PayeeType.
type Payment struct {
	ID         string
	PayeeType  string // worker | vendor
	WorkerID   *string
	VendorID   *string
	CustomerID *string
	Amount     decimal.Decimal // always positive
	Notes      *string
	PaidBy     string // User id
	CreatedAt  time.Time
}

// PayeeID returns the id of whichever payee is set.
func (p *Payment) PayeeID() string {
	switch {
	case p.WorkerID != nil:
		return *p.WorkerID
	case p.VendorID != nil:
		return *p.VendorID
	}
	return ""
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold flags a material for alerting when its quantity drops below it.
const LowStockThreshold = 20

// Material represents an inventory item. Quantity is whole units on hand; Price is
// the current cost per unit in INR. The remote store names these total_quantity and
// cost_price; the translation happens only in the persistence adapters.
type Material struct {
	ID        string
	Name      string
	Quantity  int // units on hand, never negative
	Unit      string
	Price     decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock reports whether the material should appear in low-stock alerts.
func (m *Material) LowStock() bool {
	return m.Quantity < LowStockThreshold
}

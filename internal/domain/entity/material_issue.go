package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialIssue records material handed to a project. RateAtIssue is the
// material's unit price frozen at the moment of issue: later changes to the
// material's current price never alter it, so historical project costs stay fixed.
type MaterialIssue struct {
	ID          string
	ProjectID   string
	MaterialID  string
	Quantity    int // always positive
	RateAtIssue decimal.Decimal
	IssuedBy    string // User id
	CreatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valid statuses for Project.
const (
	ProjectStatusPending    = "pending"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
)

// ValidProjectStatus reports whether s is one of the recognized statuses.
func ValidProjectStatus(s string) bool {
	return s == ProjectStatusPending || s == ProjectStatusInProgress || s == ProjectStatusCompleted
}

// Project represents an interior-design engagement for a customer. ProjectValue is
// the agreed contract value in INR. CreatedAt is preserved across edits.
type Project struct {
	ID           string
	Name         string
	CustomerID   string // must reference an existing Customer
	ProjectValue decimal.Decimal
	Status       string // pending, in-progress, completed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

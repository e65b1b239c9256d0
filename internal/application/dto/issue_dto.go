package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueMaterialRequest input for issuing material to a project. Rate is optional:
// when nil the material's current price is frozen into the event as rate_at_issue.
type IssueMaterialRequest struct {
	ProjectID  string           `json:"project_id" validate:"required"`
	MaterialID string           `json:"material_id" validate:"required"`
	Quantity   int              `json:"quantity" validate:"required,gt=0"`
	Rate       *decimal.Decimal `json:"rate"`
}

// MaterialIssueResponse output for an issue event.
type MaterialIssueResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	MaterialID  string          `json:"material_id"`
	Quantity    int             `json:"quantity"`
	RateAtIssue decimal.Decimal `json:"rate_at_issue"`
	IssuedBy    string          `json:"issued_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MaterialIssueListResponse issue-event list.
type MaterialIssueListResponse struct {
	Items []MaterialIssueResponse `json:"items"`
}

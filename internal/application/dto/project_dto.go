package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProjectRequest input for creating or updating a project.
type SaveProjectRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	CustomerID   string          `json:"customer_id" validate:"required"`
	ProjectValue decimal.Decimal `json:"project_value"`
	Status       string          `json:"status"`
}

// ProjectResponse output for a project.
type ProjectResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CustomerID   string          `json:"customer_id"`
	ProjectValue decimal.Decimal `json:"project_value"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProjectListResponse project list.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
}

// ProjectFinancialsResponse derived money view of a project, recomputed on demand
// from its issue events (never cached).
type ProjectFinancialsResponse struct {
	ProjectID            string          `json:"project_id"`
	ProjectValue         decimal.Decimal `json:"project_value"`
	TotalMaterialCost    decimal.Decimal `json:"total_material_cost"`
	Profit               decimal.Decimal `json:"profit"`
	ProjectValueINR      string          `json:"project_value_inr"`
	TotalMaterialCostINR string          `json:"total_material_cost_inr"`
	ProfitINR            string          `json:"profit_inr"`
}

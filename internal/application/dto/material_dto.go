package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveMaterialRequest input for creating or updating a material. The same body
// serves POST (create) and PUT /:id (update); the id travels in the path.
type SaveMaterialRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Quantity int             `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// MaterialResponse output for a material.
type MaterialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	PriceINR  string          `json:"price_inr"`
	Category  string          `json:"category"`
	LowStock  bool            `json:"low_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MaterialListResponse material list.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
}

package dto

import "github.com/shopspring/decimal"

// OverviewResponse dashboard summary: entity counts, total inventory value and
// the materials below the low-stock threshold.
type OverviewResponse struct {
	Materials          int                `json:"materials"`
	Customers          int                `json:"customers"`
	Projects           int                `json:"projects"`
	ActiveProjects     int                `json:"active_projects"`
	InventoryValue     decimal.Decimal    `json:"inventory_value"`
	InventoryValueINR  string             `json:"inventory_value_inr"`
	LowStockCount      int                `json:"low_stock_count"`
	LowStockMaterials  []MaterialResponse `json:"low_stock_materials"`
}

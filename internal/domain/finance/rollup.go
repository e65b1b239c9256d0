// Package finance holds the project financial rollup (pure domain service).
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/domain/entity"
)

// ProjectFinancials is the derived money view of a project.
// Profit = ProjectValue - TotalMaterialCost and may be negative; no clamping.
type ProjectFinancials struct {
	ProjectValue      decimal.Decimal
	TotalMaterialCost decimal.Decimal
	Profit            decimal.Decimal
}

// Compute sums quantity x rate_at_issue over the project's issue events and
// derives profit against the recorded project value.
//
// Only the frozen RateAtIssue enters the sum, never the material's current price:
// changing a material's price must not retroactively change past issue costs.
// Events are assumed validated at entry (positive quantities, non-negative rates).
func Compute(projectValue decimal.Decimal, issues []*entity.MaterialIssue) ProjectFinancials {
	total := decimal.Zero
	for _, issue := range issues {
		qty := decimal.NewFromInt(int64(issue.Quantity))
		total = total.Add(qty.Mul(issue.RateAtIssue))
	}
	return ProjectFinancials{
		ProjectValue:      projectValue,
		TotalMaterialCost: total,
		Profit:            projectValue.Sub(total),
	}
}

package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
	"github.com/interiorhq/interman-api/pkg/currency"
)

// OverviewUseCase builds the dashboard summary: counts, total inventory value and
// low-stock alerts. Every call re-fetches; nothing is cached across requests.
type OverviewUseCase struct {
	materialRepo repository.MaterialRepository
	customerRepo repository.CustomerRepository
	projectRepo  repository.ProjectRepository
}

// NewOverviewUseCase builds the use case.
func NewOverviewUseCase(
	materialRepo repository.MaterialRepository,
	customerRepo repository.CustomerRepository,
	projectRepo repository.ProjectRepository,
) *OverviewUseCase {
	return &OverviewUseCase{
		materialRepo: materialRepo,
		customerRepo: customerRepo,
		projectRepo:  projectRepo,
	}
}

// Summary aggregates the overview figures in one pass over each list.
func (uc *OverviewUseCase) Summary() (*dto.OverviewResponse, error) {
	materials, err := uc.materialRepo.List()
	if err != nil {
		return nil, err
	}
	customers, err := uc.customerRepo.List()
	if err != nil {
		return nil, err
	}
	projects, err := uc.projectRepo.List()
	if err != nil {
		return nil, err
	}

	inventoryValue := decimal.Zero
	lowStock := make([]dto.MaterialResponse, 0)
	for _, m := range materials {
		qty := decimal.NewFromInt(int64(m.Quantity))
		inventoryValue = inventoryValue.Add(qty.Mul(m.Price))
		if m.LowStock() {
			lowStock = append(lowStock, *toMaterialResponse(m))
		}
	}

	active := 0
	for _, p := range projects {
		if p.Status == entity.ProjectStatusInProgress {
			active++
		}
	}

	return &dto.OverviewResponse{
		Materials:         len(materials),
		Customers:         len(customers),
		Projects:          len(projects),
		ActiveProjects:    active,
		InventoryValue:    inventoryValue,
		InventoryValueINR: currency.FormatINR(inventoryValue),
		LowStockCount:     len(lowStock),
		LowStockMaterials: lowStock,
	}, nil
}

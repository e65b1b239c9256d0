package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/internal/application/usecase"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/infrastructure/memory"
)

func TestOverviewSummary(t *testing.T) {
	materials := memory.NewMaterialRepository()
	customers := memory.NewCustomerRepository()
	projects := memory.NewProjectRepository()

	now := time.Now()
	// 40 x 150 + 5 x 200 = 7000; the second material is below the threshold.
	require.NoError(t, materials.Create(&entity.Material{
		ID: uuid.New().String(), Name: "Plywood", Quantity: 40, Unit: "sheet",
		Price: decimal.NewFromInt(150), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, materials.Create(&entity.Material{
		ID: uuid.New().String(), Name: "Veneer", Quantity: 5, Unit: "sheet",
		Price: decimal.NewFromInt(200), CreatedAt: now, UpdatedAt: now,
	}))

	customer := &entity.Customer{ID: uuid.New().String(), Name: "Mehta Family", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, customers.Create(customer))

	require.NoError(t, projects.Create(&entity.Project{
		ID: uuid.New().String(), Name: "Villa", CustomerID: customer.ID,
		Status: entity.ProjectStatusInProgress, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, projects.Create(&entity.Project{
		ID: uuid.New().String(), Name: "Cafe", CustomerID: customer.ID,
		Status: entity.ProjectStatusCompleted, CreatedAt: now, UpdatedAt: now,
	}))

	uc := usecase.NewOverviewUseCase(materials, customers, projects)
	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 2, out.Materials)
	assert.Equal(t, 1, out.Customers)
	assert.Equal(t, 2, out.Projects)
	assert.Equal(t, 1, out.ActiveProjects)
	assert.Equal(t, "7000", out.InventoryValue.String())
	assert.Equal(t, "₹7,000.00", out.InventoryValueINR)
	assert.Equal(t, 1, out.LowStockCount)
	require.Len(t, out.LowStockMaterials, 1)
	assert.Equal(t, "Veneer", out.LowStockMaterials[0].Name)
}

func TestOverviewSummaryEmptyStores(t *testing.T) {
	uc := usecase.NewOverviewUseCase(
		memory.NewMaterialRepository(),
		memory.NewCustomerRepository(),
		memory.NewProjectRepository(),
	)
	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 0, out.Materials)
	assert.True(t, out.InventoryValue.IsZero())
	assert.Empty(t, out.LowStockMaterials)
}

package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/application/usecase"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/infrastructure/memory"
)

func projectFixture(t *testing.T) (*usecase.ProjectUseCase, *memory.MaterialIssueRepo, string) {
	t.Helper()
	projects := memory.NewProjectRepository()
	customers := memory.NewCustomerRepository()
	issues := memory.NewMaterialIssueRepository()

	customer := &entity.Customer{
		ID: uuid.New().String(), Name: "Mehta Family",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, customers.Create(customer))

	return usecase.NewProjectUseCase(projects, customers, issues), issues, customer.ID
}

func TestCreateProjectRequiresExistingCustomer(t *testing.T) {
	uc, _, customerID := projectFixture(t)

	_, err := uc.Create(dto.SaveProjectRequest{
		Name: "3BHK Interiors", CustomerID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.Create(dto.SaveProjectRequest{
		Name: "3BHK Interiors", CustomerID: customerID,
		ProjectValue: decimal.NewFromInt(500000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusPending, out.Status)
}

func TestCreateProjectRejectsBadStatus(t *testing.T) {
	uc, _, customerID := projectFixture(t)

	_, err := uc.Create(dto.SaveProjectRequest{
		Name: "Office Fit-out", CustomerID: customerID, Status: "stalled",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.SaveProjectRequest{
		Name: "Office Fit-out", CustomerID: customerID,
		ProjectValue: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProjectPreservesCreatedAt(t *testing.T) {
	uc, _, customerID := projectFixture(t)

	created, err := uc.Create(dto.SaveProjectRequest{
		Name: "Villa Interiors", CustomerID: customerID,
		ProjectValue: decimal.NewFromInt(800000),
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.SaveProjectRequest{
		Name: "Villa Interiors Phase 2", CustomerID: customerID,
		ProjectValue: decimal.NewFromInt(900000),
		Status:       entity.ProjectStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Villa Interiors Phase 2", updated.Name)
	assert.Equal(t, entity.ProjectStatusInProgress, updated.Status)
}

func TestProjectFinancialsRollup(t *testing.T) {
	uc, issues, customerID := projectFixture(t)

	created, err := uc.Create(dto.SaveProjectRequest{
		Name: "Showroom", CustomerID: customerID,
		ProjectValue: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	// Two issues at frozen rates: 10 x 150.50 + 5 x 160.00 = 2305.00
	require.NoError(t, issues.Create(&entity.MaterialIssue{
		ID: uuid.New().String(), ProjectID: created.ID, MaterialID: uuid.New().String(),
		Quantity: 10, RateAtIssue: decimal.RequireFromString("150.50"),
		IssuedBy: "u1", CreatedAt: time.Now(),
	}))
	require.NoError(t, issues.Create(&entity.MaterialIssue{
		ID: uuid.New().String(), ProjectID: created.ID, MaterialID: uuid.New().String(),
		Quantity: 5, RateAtIssue: decimal.NewFromInt(160),
		IssuedBy: "u1", CreatedAt: time.Now(),
	}))

	f, err := uc.Financials(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2305", f.TotalMaterialCost.String())
	assert.Equal(t, "2695", f.Profit.String())
	assert.Equal(t, "₹2,305.00", f.TotalMaterialCostINR)
	assert.Equal(t, "₹2,695.00", f.ProfitINR)
}

func TestProjectFinancialsUnknownProject(t *testing.T) {
	uc, _, _ := projectFixture(t)
	_, err := uc.Financials(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProjectIsIdempotent(t *testing.T) {
	uc, _, customerID := projectFixture(t)

	created, err := uc.Create(dto.SaveProjectRequest{
		Name: "Cafe Interiors", CustomerID: customerID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

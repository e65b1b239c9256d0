package issue_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/application/issue"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/infrastructure/memory"
)

type fixture struct {
	uc        *issue.RegisterIssueUseCase
	materials *memory.MaterialRepo
	issues    *memory.MaterialIssueRepo
	logs      *memory.MaterialLogRepo
	projectID string
	material  *entity.Material
}

func newFixture(t *testing.T, stock int, price decimal.Decimal) *fixture {
	t.Helper()
	issues := memory.NewMaterialIssueRepository()
	materials := memory.NewMaterialRepository()
	logs := memory.NewMaterialLogRepository()
	projects := memory.NewProjectRepository()
	runner := memory.NewTxRunner(issues, materials, logs)

	project := &entity.Project{
		ID:           uuid.New().String(),
		Name:         "Sharma Residence",
		CustomerID:   uuid.New().String(),
		ProjectValue: decimal.NewFromInt(500000),
		Status:       entity.ProjectStatusInProgress,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, projects.Create(project))

	material := &entity.Material{
		ID:        uuid.New().String(),
		Name:      "Plywood 18mm",
		Quantity:  stock,
		Unit:      "sheet",
		Price:     price,
		Category:  "plywood",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, materials.Create(material))

	return &fixture{
		uc:        issue.NewRegisterIssueUseCase(runner, projects, issues),
		materials: materials,
		issues:    issues,
		logs:      logs,
		projectID: project.ID,
		material:  material,
	}
}

func TestRegisterFreezesCurrentPrice(t *testing.T) {
	f := newFixture(t, 40, decimal.RequireFromString("150.50"))

	out, err := f.uc.Register(context.Background(), "user-1", dto.IssueMaterialRequest{
		ProjectID:  f.projectID,
		MaterialID: f.material.ID,
		Quantity:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, "150.5", out.RateAtIssue.String())
	assert.Equal(t, "user-1", out.IssuedBy)

	// Stock decremented, audit entry appended.
	m, err := f.materials.GetByID(f.material.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, m.Quantity)

	trail, err := f.logs.List()
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, -10, trail[0].QuantityChange)
	assert.Equal(t, entity.LogReasonIssue, trail[0].Reason)
	require.NotNil(t, trail[0].ProjectID)
	assert.Equal(t, f.projectID, *trail[0].ProjectID)
}

func TestRegisterFormRateWins(t *testing.T) {
	f := newFixture(t, 40, decimal.NewFromInt(150))

	formRate := decimal.NewFromInt(175)
	out, err := f.uc.Register(context.Background(), "user-1", dto.IssueMaterialRequest{
		ProjectID:  f.projectID,
		MaterialID: f.material.ID,
		Quantity:   5,
		Rate:       &formRate,
	})
	require.NoError(t, err)
	assert.Equal(t, "175", out.RateAtIssue.String())
}

func TestRegisterLaterPriceEditDoesNotTouchEvent(t *testing.T) {
	f := newFixture(t, 40, decimal.NewFromInt(150))

	out, err := f.uc.Register(context.Background(), "user-1", dto.IssueMaterialRequest{
		ProjectID:  f.projectID,
		MaterialID: f.material.ID,
		Quantity:   5,
	})
	require.NoError(t, err)

	m, err := f.materials.GetByID(f.material.ID)
	require.NoError(t, err)
	m.Price = decimal.NewFromInt(999)
	require.NoError(t, f.materials.Update(m))

	list, err := f.uc.ListByProject(f.projectID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, out.RateAtIssue, list.Items[0].RateAtIssue)
	assert.Equal(t, "150", list.Items[0].RateAtIssue.String())
}

func TestRegisterInsufficientStockWritesNothing(t *testing.T) {
	f := newFixture(t, 3, decimal.NewFromInt(150))

	_, err := f.uc.Register(context.Background(), "user-1", dto.IssueMaterialRequest{
		ProjectID:  f.projectID,
		MaterialID: f.material.ID,
		Quantity:   4,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	m, err := f.materials.GetByID(f.material.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Quantity)

	events, err := f.issues.List()
	require.NoError(t, err)
	assert.Empty(t, events)

	trail, err := f.logs.List()
	require.NoError(t, err)
	assert.Empty(t, trail)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t, 40, decimal.NewFromInt(150))
	ctx := context.Background()

	_, err := f.uc.Register(ctx, "user-1", dto.IssueMaterialRequest{
		ProjectID: f.projectID, MaterialID: f.material.ID, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Register(ctx, "user-1", dto.IssueMaterialRequest{
		ProjectID: f.projectID, MaterialID: f.material.ID, Quantity: -2,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negative := decimal.NewFromInt(-1)
	_, err = f.uc.Register(ctx, "user-1", dto.IssueMaterialRequest{
		ProjectID: f.projectID, MaterialID: f.material.ID, Quantity: 1, Rate: &negative,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Register(ctx, "", dto.IssueMaterialRequest{
		ProjectID: f.projectID, MaterialID: f.material.ID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUnknownReferences(t *testing.T) {
	f := newFixture(t, 40, decimal.NewFromInt(150))
	ctx := context.Background()

	_, err := f.uc.Register(ctx, "user-1", dto.IssueMaterialRequest{
		ProjectID: uuid.New().String(), MaterialID: f.material.ID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Register(ctx, "user-1", dto.IssueMaterialRequest{
		ProjectID: f.projectID, MaterialID: uuid.New().String(), Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterExactStockDrainsToZero(t *testing.T) {
	f := newFixture(t, 7, decimal.NewFromInt(150))

	_, err := f.uc.Register(context.Background(), "user-1", dto.IssueMaterialRequest{
		ProjectID:  f.projectID,
		MaterialID: f.material.ID,
		Quantity:   7,
	})
	require.NoError(t, err)

	m, err := f.materials.GetByID(f.material.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Quantity)
}

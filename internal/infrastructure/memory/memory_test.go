package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

func newMaterial(name string, qty int) *entity.Material {
	now := time.Now()
	return &entity.Material{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  qty,
		Unit:      "pcs",
		Price:     decimal.NewFromInt(150),
		Category:  "plywood",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMaterialRepoCRUD(t *testing.T) {
	repo := NewMaterialRepository()

	m := newMaterial("Plywood 18mm", 40)
	require.NoError(t, repo.Create(m))

	got, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Plywood 18mm", got.Name)
	assert.Equal(t, 40, got.Quantity)

	// Stored value must not alias the caller's struct.
	m.Name = "changed outside"
	got, err = repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plywood 18mm", got.Name)

	got.Quantity = 35
	require.NoError(t, repo.Update(got))
	again, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 35, again.Quantity)

	require.NoError(t, repo.Delete(m.ID))
	gone, err := repo.GetByID(m.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting again is still a no-op.
	require.NoError(t, repo.Delete(m.ID))
}

func TestMaterialRepoCreateDuplicate(t *testing.T) {
	repo := NewMaterialRepository()
	m := newMaterial("Teak veneer", 10)
	require.NoError(t, repo.Create(m))
	assert.ErrorIs(t, repo.Create(m), domain.ErrDuplicate)
}

func TestMaterialRepoListNewestFirst(t *testing.T) {
	repo := NewMaterialRepository()
	first := newMaterial("first", 1)
	second := newMaterial("second", 2)
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)
	assert.Equal(t, "first", list[1].Name)
}

func TestUserRepoEmailLookup(t *testing.T) {
	repo := NewUserRepository()
	u := &entity.User{
		ID:    uuid.New().String(),
		Email: "Priya@Example.com",
		Name:  "Priya",
		Role:  entity.RoleEmployee,
	}
	require.NoError(t, repo.Create(u))

	got, err := repo.FindByEmail("priya@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	dup := &entity.User{ID: uuid.New().String(), Email: "PRIYA@example.com"}
	assert.ErrorIs(t, repo.Create(dup), domain.ErrEmailAlreadyExists)

	missing, err := repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMaterialIssueRepoListByProject(t *testing.T) {
	repo := NewMaterialIssueRepository()
	projectA := uuid.New().String()
	projectB := uuid.New().String()
	for i, pid := range []string{projectA, projectB, projectA} {
		require.NoError(t, repo.Create(&entity.MaterialIssue{
			ID:          uuid.New().String(),
			ProjectID:   pid,
			MaterialID:  uuid.New().String(),
			Quantity:    i + 1,
			RateAtIssue: decimal.NewFromInt(100),
			IssuedBy:    "u1",
			CreatedAt:   time.Now(),
		}))
	}

	list, err := repo.ListByProject(projectA)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, issue := range list {
		assert.Equal(t, projectA, issue.ProjectID)
	}
}

func TestTxRunnerRollsBackOnError(t *testing.T) {
	issues := NewMaterialIssueRepository()
	materials := NewMaterialRepository()
	logs := NewMaterialLogRepository()
	runner := NewTxRunner(issues, materials, logs)

	m := newMaterial("MDF board", 50)
	require.NoError(t, materials.Create(m))

	boom := errors.New("boom")
	err := runner.Run(context.Background(), func(
		issueRepo repository.MaterialIssueRepository,
		materialRepo repository.MaterialRepository,
		logRepo repository.MaterialLogRepository,
	) error {
		locked, err := materialRepo.GetForUpdate(m.ID)
		require.NoError(t, err)
		locked.Quantity -= 10
		require.NoError(t, materialRepo.Update(locked))
		require.NoError(t, issueRepo.Create(&entity.MaterialIssue{
			ID:         uuid.New().String(),
			ProjectID:  "p1",
			MaterialID: m.ID,
			Quantity:   10,
			IssuedBy:   "u1",
			CreatedAt:  time.Now(),
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Everything inside the failed run is rewound.
	got, err := materials.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Quantity)
	list, err := issues.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxRunnerCommitsOnSuccess(t *testing.T) {
	issues := NewMaterialIssueRepository()
	materials := NewMaterialRepository()
	logs := NewMaterialLogRepository()
	runner := NewTxRunner(issues, materials, logs)

	m := newMaterial("Laminate sheet", 30)
	require.NoError(t, materials.Create(m))

	err := runner.Run(context.Background(), func(
		issueRepo repository.MaterialIssueRepository,
		materialRepo repository.MaterialRepository,
		logRepo repository.MaterialLogRepository,
	) error {
		locked, err := materialRepo.GetForUpdate(m.ID)
		if err != nil {
			return err
		}
		locked.Quantity -= 5
		if err := materialRepo.Update(locked); err != nil {
			return err
		}
		return logRepo.Append(&entity.MaterialLog{
			ID:             uuid.New().String(),
			MaterialID:     m.ID,
			QuantityChange: -5,
			UsedBy:         "u1",
			Reason:         entity.LogReasonIssue,
			CreatedAt:      time.Now(),
		})
	})
	require.NoError(t, err)

	got, err := materials.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Quantity)
	trail, err := logs.List()
	require.NoError(t, err)
	require.Len(t, trail, 1)
	assert.Equal(t, -5, trail[0].QuantityChange)
}

package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/application/usecase"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/infrastructure/memory"
)

func customerUC() *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(memory.NewCustomerRepository())
}

func TestCustomerCRUD(t *testing.T) {
	uc := customerUC()

	created, err := uc.Create(dto.SaveCustomerRequest{
		Name: "Mehta Family", Email: "mehta@example.com", Phone: "9876543210",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := uc.Update(created.ID, dto.SaveCustomerRequest{
		Name: "Mehta Family Trust", Email: "trust@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mehta Family Trust", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	require.NoError(t, uc.Delete(created.ID))
	require.NoError(t, uc.Delete(created.ID))

	list, err = uc.List()
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestCustomerValidation(t *testing.T) {
	uc := customerUC()

	_, err := uc.Create(dto.SaveCustomerRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(uuid.New().String(), dto.SaveCustomerRequest{Name: "Someone"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

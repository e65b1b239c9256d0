package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
	"github.com/interiorhq/interman-api/pkg/currency"
)

// MaterialUseCase CRUD for inventory materials. Stock decrements for issues go
// through the issue use case, not here.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase builds the use case.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func validateMaterialInput(in dto.SaveMaterialRequest) error {
	if in.Name == "" || in.Unit == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create adds a new material; the repository-facing id is assigned here and is
// stable thereafter.
func (uc *MaterialUseCase) Create(in dto.SaveMaterialRequest) (*dto.MaterialResponse, error) {
	if err := validateMaterialInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	material := &entity.Material{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Price:     in.Price,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Update replaces the material's fields keyed on id. Repeated identical updates
// converge to the same stored record.
func (uc *MaterialUseCase) Update(id string, in dto.SaveMaterialRequest) (*dto.MaterialResponse, error) {
	if err := validateMaterialInput(in); err != nil {
		return nil, err
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	material.Name = in.Name
	material.Quantity = in.Quantity
	material.Unit = in.Unit
	material.Price = in.Price
	material.Category = in.Category
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// List returns all materials. A fetch failure is an error, never an empty list.
func (uc *MaterialUseCase) List() (*dto.MaterialListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Items: items}, nil
}

// GetByID returns one material, or nil when absent.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toMaterialResponse(material), nil
}

// Delete removes a material. Deleting a missing id is a no-op.
func (uc *MaterialUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		Unit:      m.Unit,
		Price:     m.Price,
		PriceINR:  currency.FormatINR(m.Price),
		Category:  m.Category,
		LowStock:  m.LowStock(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

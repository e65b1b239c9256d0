package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

// VendorUseCase CRUD for the vendor roster.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase builds the use case.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create adds a vendor. Phone and address stay NULL when absent.
func (uc *VendorUseCase) Create(in dto.SaveVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	vendor := &entity.Vendor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Update edits a vendor keyed on id.
func (uc *VendorUseCase) Update(id string, in dto.SaveVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	vendor.Name = in.Name
	vendor.Phone = in.Phone
	vendor.Address = in.Address
	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List returns all vendors.
func (uc *VendorUseCase) List() (*dto.VendorListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.VendorListResponse{Items: items}, nil
}

// Delete removes a vendor. Missing ids are a no-op.
func (uc *VendorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Phone:     v.Phone,
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
	}
}

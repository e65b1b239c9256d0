package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// VendorRepository defines the persistence port for vendors (DIP).
type VendorRepository interface {
	List() ([]*entity.Vendor, error)
	GetByID(id string) (*entity.Vendor, error)
	Create(vendor *entity.Vendor) error
	Update(vendor *entity.Vendor) error
	Delete(id string) error
}

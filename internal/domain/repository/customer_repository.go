package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// CustomerRepository defines the persistence port for customers (DIP).
type CustomerRepository interface {
	List() ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(customer *entity.Customer) error
	Update(customer *entity.Customer) error
	Delete(id string) error
}

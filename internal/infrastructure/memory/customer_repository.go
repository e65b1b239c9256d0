package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo keeps customers in process memory.
type CustomerRepo struct {
	t *table[entity.Customer]
}

// NewCustomerRepository builds an empty in-memory customer store.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{t: newTable[entity.Customer]()}
}

func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.t.list(), nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.t.get(id), nil
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	if r.t.get(customer.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(customer.ID, customer)
	return nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.t.put(customer.ID, customer)
	return nil
}

func (r *CustomerRepo) Delete(id string) error {
	r.t.del(id)
	return nil
}

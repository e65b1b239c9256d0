package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo keeps payments in process memory.
type PaymentRepo struct {
	t *table[entity.Payment]
}

// NewPaymentRepository builds an empty in-memory payment store.
func NewPaymentRepository() *PaymentRepo {
	return &PaymentRepo{t: newTable[entity.Payment]()}
}

func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	return r.t.list(), nil
}

func (r *PaymentRepo) Create(payment *entity.Payment) error {
	if r.t.get(payment.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(payment.ID, payment)
	return nil
}

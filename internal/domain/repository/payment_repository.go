package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// PaymentRepository defines the persistence port for payments (DIP).
type PaymentRepository interface {
	List() ([]*entity.Payment, error)
	Create(payment *entity.Payment) error
}

package repository

import "github.com/interiorhq/interman-api/internal/domain/entity"

// WorkerRepository defines the persistence port for workers (DIP).
type WorkerRepository interface {
	List() ([]*entity.Worker, error)
	GetByID(id string) (*entity.Worker, error)
	Create(worker *entity.Worker) error
	Update(worker *entity.Worker) error
	Delete(id string) error
}

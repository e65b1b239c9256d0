package memory

import (
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo keeps workers in process memory.
type WorkerRepo struct {
	t *table[entity.Worker]
}

// NewWorkerRepository builds an empty in-memory worker store.
func NewWorkerRepository() *WorkerRepo {
	return &WorkerRepo{t: newTable[entity.Worker]()}
}

func (r *WorkerRepo) List() ([]*entity.Worker, error) {
	return r.t.list(), nil
}

func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	return r.t.get(id), nil
}

func (r *WorkerRepo) Create(worker *entity.Worker) error {
	if r.t.get(worker.ID) != nil {
		return domain.ErrDuplicate
	}
	r.t.put(worker.ID, worker)
	return nil
}

func (r *WorkerRepo) Update(worker *entity.Worker) error {
	r.t.put(worker.ID, worker)
	return nil
}

func (r *WorkerRepo) Delete(id string) error {
	r.t.del(id)
	return nil
}

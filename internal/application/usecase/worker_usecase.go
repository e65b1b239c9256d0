package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

// WorkerUseCase CRUD for the worker roster.
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase builds the use case.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create adds a worker. Phone and trade stay NULL when absent.
func (uc *WorkerUseCase) Create(in dto.SaveWorkerRequest) (*dto.WorkerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	worker := &entity.Worker{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Trade:     in.Trade,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// Update edits a worker keyed on id.
func (uc *WorkerUseCase) Update(id string, in dto.SaveWorkerRequest) (*dto.WorkerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	worker, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	worker.Name = in.Name
	worker.Phone = in.Phone
	worker.Trade = in.Trade
	if err := uc.repo.Update(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// List returns all workers.
func (uc *WorkerUseCase) List() (*dto.WorkerListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return &dto.WorkerListResponse{Items: items}, nil
}

// Delete removes a worker. Missing ids are a no-op.
func (uc *WorkerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     w.Phone,
		Trade:     w.Trade,
		CreatedAt: w.CreatedAt,
	}
}

package usecase

import (
	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

// LogUseCase reads the append-only material audit log. Entries are written only
// by the issue use case; there is no mutation path here.
type LogUseCase struct {
	repo repository.MaterialLogRepository
}

// NewLogUseCase builds the use case.
func NewLogUseCase(repo repository.MaterialLogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// List returns the audit log, newest first per the repository ordering.
func (uc *LogUseCase) List() (*dto.MaterialLogListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLogResponse(l))
	}
	return &dto.MaterialLogListResponse{Items: items}, nil
}

func toLogResponse(l *entity.MaterialLog) *dto.MaterialLogResponse {
	if l == nil {
		return nil
	}
	return &dto.MaterialLogResponse{
		ID:             l.ID,
		MaterialID:     l.MaterialID,
		QuantityChange: l.QuantityChange,
		ProjectID:      l.ProjectID,
		UsedBy:         l.UsedBy,
		Reason:         l.Reason,
		Timestamp:      l.CreatedAt,
	}
}

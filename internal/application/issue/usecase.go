// Package issue implements the material-issue workflow: the one multi-write
// operation in the system, performed transactionally.
package issue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

// RegisterIssueUseCase issues material to a project: inserts the issue event with
// the rate frozen at this moment, decrements the material's stock and appends an
// audit entry, all inside one transaction.
type RegisterIssueUseCase struct {
	txRunner    TxRunner
	projectRepo repository.ProjectRepository
	issueRepo   repository.MaterialIssueRepository
}

// NewRegisterIssueUseCase builds the use case.
func NewRegisterIssueUseCase(
	txRunner TxRunner,
	projectRepo repository.ProjectRepository,
	issueRepo repository.MaterialIssueRepository,
) *RegisterIssueUseCase {
	return &RegisterIssueUseCase{txRunner: txRunner, projectRepo: projectRepo, issueRepo: issueRepo}
}

// Register validates and applies a material issue.
//
// Validation happens before any write: quantity must be a positive integer, the
// rate (when given) non-negative, and project and material must exist. The stock
// check runs on a row locked inside the transaction so two concurrent issues
// cannot both drain the same units.
func (uc *RegisterIssueUseCase) Register(ctx context.Context, issuedBy string, in dto.IssueMaterialRequest) (*dto.MaterialIssueResponse, error) {
	if in.ProjectID == "" || in.MaterialID == "" || issuedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Rate != nil && in.Rate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	project, err := uc.projectRepo.GetByID(in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	event := &entity.MaterialIssue{
		ID:         uuid.New().String(),
		ProjectID:  in.ProjectID,
		MaterialID: in.MaterialID,
		Quantity:   in.Quantity,
		IssuedBy:   issuedBy,
		CreatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		issueRepo repository.MaterialIssueRepository,
		materialRepo repository.MaterialRepository,
		logRepo repository.MaterialLogRepository,
	) error {
		material, err := materialRepo.GetForUpdate(in.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if material.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		// Freeze the rate: the form's rate wins when present, otherwise the
		// material's price as of now. Later price edits never touch this event.
		if in.Rate != nil {
			event.RateAtIssue = *in.Rate
		} else {
			event.RateAtIssue = material.Price
		}

		if err := issueRepo.Create(event); err != nil {
			return err
		}

		material.Quantity -= in.Quantity
		material.UpdatedAt = now
		if err := materialRepo.Update(material); err != nil {
			return err
		}

		return logRepo.Append(&entity.MaterialLog{
			ID:             uuid.New().String(),
			MaterialID:     in.MaterialID,
			QuantityChange: -in.Quantity,
			ProjectID:      &in.ProjectID,
			UsedBy:         issuedBy,
			Reason:         entity.LogReasonIssue,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toIssueResponse(event), nil
}

// List returns all issue events.
func (uc *RegisterIssueUseCase) List() (*dto.MaterialIssueListResponse, error) {
	list, err := uc.issueRepo.List()
	if err != nil {
		return nil, err
	}
	return toIssueList(list), nil
}

// ListByProject returns the issue events belonging to one project.
func (uc *RegisterIssueUseCase) ListByProject(projectID string) (*dto.MaterialIssueListResponse, error) {
	list, err := uc.issueRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	return toIssueList(list), nil
}

func toIssueList(list []*entity.MaterialIssue) *dto.MaterialIssueListResponse {
	items := make([]dto.MaterialIssueResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toIssueResponse(e))
	}
	return &dto.MaterialIssueListResponse{Items: items}
}

func toIssueResponse(e *entity.MaterialIssue) *dto.MaterialIssueResponse {
	if e == nil {
		return nil
	}
	return &dto.MaterialIssueResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		MaterialID:  e.MaterialID,
		Quantity:    e.Quantity,
		RateAtIssue: e.RateAtIssue,
		IssuedBy:    e.IssuedBy,
		CreatedAt:   e.CreatedAt,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/application/dto"
	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/finance"
	"github.com/interiorhq/interman-api/internal/domain/repository"
	"github.com/interiorhq/interman-api/pkg/currency"
)

// ProjectUseCase CRUD for projects plus the on-demand financial rollup.
type ProjectUseCase struct {
	repo         repository.ProjectRepository
	customerRepo repository.CustomerRepository
	issueRepo    repository.MaterialIssueRepository
}

// NewProjectUseCase builds the use case.
func NewProjectUseCase(
	repo repository.ProjectRepository,
	customerRepo repository.CustomerRepository,
	issueRepo repository.MaterialIssueRepository,
) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, customerRepo: customerRepo, issueRepo: issueRepo}
}

func (uc *ProjectUseCase) validateProjectInput(in dto.SaveProjectRequest) error {
	if in.Name == "" || in.CustomerID == "" {
		return domain.ErrInvalidInput
	}
	if in.ProjectValue.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.Status != "" && !entity.ValidProjectStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Create adds a project. The customer must exist; status defaults to pending.
func (uc *ProjectUseCase) Create(in dto.SaveProjectRequest) (*dto.ProjectResponse, error) {
	if err := uc.validateProjectInput(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPending
	}
	now := time.Now()
	project := &entity.Project{
		ID:           uuid.New().String(),
		Name:         in.Name,
		CustomerID:   in.CustomerID,
		ProjectValue: in.ProjectValue,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Update edits a project keyed on id. CreatedAt is preserved across edits.
func (uc *ProjectUseCase) Update(id string, in dto.SaveProjectRequest) (*dto.ProjectResponse, error) {
	if err := uc.validateProjectInput(in); err != nil {
		return nil, err
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	project.Name = in.Name
	project.CustomerID = in.CustomerID
	project.ProjectValue = in.ProjectValue
	if in.Status != "" {
		project.Status = in.Status
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List returns all projects.
func (uc *ProjectUseCase) List() (*dto.ProjectListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProjectResponse(p))
	}
	return &dto.ProjectListResponse{Items: items}, nil
}

// GetByID returns one project, or nil when absent.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}
	return toProjectResponse(project), nil
}

// Delete removes a project. Missing ids are a no-op.
func (uc *ProjectUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Financials recomputes the project's money view from its issue events. Nothing
// is cached: each call re-fetches, so the figures always reflect remote truth.
func (uc *ProjectUseCase) Financials(projectID string) (*dto.ProjectFinancialsResponse, error) {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	issues, err := uc.issueRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	f := finance.Compute(project.ProjectValue, issues)
	return &dto.ProjectFinancialsResponse{
		ProjectID:            project.ID,
		ProjectValue:         f.ProjectValue,
		TotalMaterialCost:    f.TotalMaterialCost,
		Profit:               f.Profit,
		ProjectValueINR:      currency.FormatINR(f.ProjectValue),
		TotalMaterialCostINR: currency.FormatINR(f.TotalMaterialCost),
		ProfitINR:            currency.FormatINR(f.Profit),
	}, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		CustomerID:   p.CustomerID,
		ProjectValue: p.ProjectValue,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

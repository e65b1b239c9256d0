package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/domain"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/finance"
	"github.com/interiorhq/interman-api/internal/domain/repository"
)

// StatementLine one issued-material line on the printed statement.
type StatementLine struct {
	Description string
	Unit        string
	Quantity    int
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

// StatementPDFGenerator renders a project financial statement. Implemented by the
// Maroto adapter in infrastructure/pdf; the port keeps the use case print-agnostic.
type StatementPDFGenerator interface {
	GenerateStatementPDF(
		ctx context.Context,
		project *entity.Project,
		customer *entity.Customer,
		lines []StatementLine,
		financials finance.ProjectFinancials,
	) ([]byte, error)
}

// StatementUseCase produces the downloadable PDF statement for a project: its
// issue events priced at their frozen rates plus the financial rollup.
type StatementUseCase struct {
	projectRepo  repository.ProjectRepository
	customerRepo repository.CustomerRepository
	issueRepo    repository.MaterialIssueRepository
	materialRepo repository.MaterialRepository
	generator    StatementPDFGenerator
}

// NewStatementUseCase builds the use case.
func NewStatementUseCase(
	projectRepo repository.ProjectRepository,
	customerRepo repository.CustomerRepository,
	issueRepo repository.MaterialIssueRepository,
	materialRepo repository.MaterialRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
		issueRepo:    issueRepo,
		materialRepo: materialRepo,
		generator:    generator,
	}
}

// Generate builds the statement PDF bytes for a project.
func (uc *StatementUseCase) Generate(ctx context.Context, projectID string) ([]byte, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(project.CustomerID)
	if err != nil {
		return nil, err
	}
	issues, err := uc.issueRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}

	lines := make([]StatementLine, 0, len(issues))
	for _, e := range issues {
		desc := e.MaterialID
		unit := ""
		// Best effort: a deleted material still prints with its id as description.
		if material, err := uc.materialRepo.GetByID(e.MaterialID); err == nil && material != nil {
			desc = material.Name
			unit = material.Unit
		}
		qty := decimal.NewFromInt(int64(e.Quantity))
		lines = append(lines, StatementLine{
			Description: desc,
			Unit:        unit,
			Quantity:    e.Quantity,
			Rate:        e.RateAtIssue,
			Amount:      qty.Mul(e.RateAtIssue),
		})
	}

	return uc.generator.GenerateStatementPDF(ctx, project, customer, lines, finance.Compute(project.ProjectValue, issues))
}

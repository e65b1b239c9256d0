// Package pdf renders the downloadable project statement using Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name          │  Project + Date            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: Name + contact                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Material | Unit | Rate | Amount               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Project value / Material cost / PROFIT             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/interiorhq/interman-api/internal/application/usecase"
	"github.com/interiorhq/interman-api/internal/domain/entity"
	"github.com/interiorhq/interman-api/internal/domain/finance"
	"github.com/interiorhq/interman-api/pkg/currency"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ usecase.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implements usecase.StatementPDFGenerator using Maroto v2.
type MarotoStatementGenerator struct {
	companyName string
}

// NewMarotoStatementGenerator builds the generator. companyName prints in the header.
func NewMarotoStatementGenerator(companyName string) *MarotoStatementGenerator {
	return &MarotoStatementGenerator{companyName: companyName}
}

// GenerateStatementPDF renders the statement and returns its bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	project *entity.Project,
	customer *entity.Customer,
	lines []usecase.StatementLine,
	financials finance.ProjectFinancials,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Project Statement", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(financials))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate statement PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company name (left), project name + date (right).
func (g *MarotoStatementGenerator) headerRow(project *entity.Project) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Project Financial Statement", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(project.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Status: "+project.Status, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
			text.New("Date: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: the customer block. A missing customer record still prints.
func customerRow(customer *entity.Customer) core.Row {
	name, contact := "—", "—"
	if customer != nil {
		name = customer.Name
		contact = fmt.Sprintf("Phone: %s   |   Email: %s", orDash(customer.Phone), orDash(customer.Email))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Material", 5, align.Left),
		h("Unit", 1, align.Center),
		h("Rate", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

func tableLineRows(lines []usecase.StatementLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money(l.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money(l.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned rollup block. A negative profit prints in red.
func totalsRow(f finance.ProjectFinancials) core.Row {
	profitColor := colorPrimary
	if f.Profit.IsNegative() {
		profitColor = colorRed
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Project value:"),
			label("Material cost:"),
			text.New("PROFIT:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: profitColor, Right: 2,
			}),
		),
		col.New(4).Add(
			value(money(f.ProjectValue)),
			value(money(f.TotalMaterialCost)),
			text.New(money(f.Profit), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: profitColor, Right: 1,
			}),
		),
		col.New(1),
	)
}

// money renders an INR amount with lakh/crore grouping. Helvetica (a PDF core
// font) has no rupee glyph, so the "₹" becomes "Rs." on paper.
func money(d decimal.Decimal) string {
	return "Rs. " + strings.TrimPrefix(currency.FormatINR(d), "₹")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// Package pdf implementa la impresión del reporte de fluxo de caixa.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Loja  │  Período + Fecha de emisión        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA CRÉDITOS: Descrição | Registros | Valor               │
//	│  TABLA DÉBITOS:  Descrição | Registros | Valor               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Crédito / Débito / SALDO                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/gestfinance-api/internal/application/analytics"
	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/pkg/ptbr"
)

var _ analytics.CashFlowPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCredit  = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorDebit   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// Margins márgenes de página en mm.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.CashFlowPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
	margins Margins
}

// NewMarotoPDFGenerator construye el generador con márgenes de 20 mm.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: appName, margins: Margins{Top: 20, Bottom: 20, Left: 20, Right: 20}}
}

// WithMargins reemplaza los márgenes de página.
func (g *MarotoPDFGenerator) WithMargins(m Margins) *MarotoPDFGenerator {
	g.margins = m
	return g
}

// GenerateCashFlowPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCashFlowPDF(_ context.Context, report *dto.CashFlowReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(g.margins.Left).WithRightMargin(g.margins.Right).
		WithTopMargin(g.margins.Top).WithBottomMargin(g.margins.Bottom).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Fluxo de Caixa", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if report.Filter.Category == "" || report.Filter.Category == "Crédito" {
		m.AddRows(sectionRows("CRÉDITOS", colorCredit, report.Credits, report.CreditTotal)...)
	}
	if report.Filter.Category == "" || report.Filter.Category == "Débito" {
		m.AddRows(sectionRows("DÉBITOS", colorDebit, report.Debits, report.DebitTotal)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y loja (izq), período y fecha de emisión (der).
func headerRow(r *dto.CashFlowReportDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Relatório de Fluxo de Caixa", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Loja: "+r.StoreLabel, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+period(r.Filter), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2,
			}),
			text.New("Emitido em: "+issuedAt(r.GeneratedAt), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// sectionRows: título, cabecera y una fila por descripción.
func sectionRows(title string, color *props.Color, groups []dto.CashFlowGroupDTO, total decimal.Decimal) []core.Row {
	rows := []core.Row{
		row.New(4),
		row.New(7).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: color, Top: 1,
		}))),
		tableHeaderRow(),
	}
	if len(groups) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New("Nenhum lançamento no período.", props.Text{
			Size: 8, Color: colorGray, Top: 1, Left: 1,
		}))))
		return rows
	}
	for _, g := range groups {
		rows = append(rows, row.New(6).Add(
			col.New(7).Add(text.New(g.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", g.Count), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(ptbr.Money(g.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	rows = append(rows, row.New(7).Add(
		col.New(9).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 2})),
		col.New(3).Add(text.New(ptbr.Money(total), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: color})),
	))
	return rows
}

// tableHeaderRow: cabecera de la tabla con fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Descrição", 7, align.Left),
		h("Registros", 2, align.Center),
		h("Valor", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(r *dto.CashFlowReportDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	balanceColor := colorCredit
	if r.Balance.IsNegative() {
		balanceColor = colorDebit
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Total Crédito:"),
			text.New("Total Débito:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			text.New("SALDO:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 11, Color: colorPrimary}),
		),
		col.New(3).Add(
			text.New(ptbr.Money(r.CreditTotal), props.Text{Size: 9, Align: align.Right, Right: 1, Color: colorCredit}),
			text.New(ptbr.Money(r.DebitTotal), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5, Color: colorDebit}),
			text.New(ptbr.Money(r.Balance), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 11, Color: balanceColor}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func period(f dto.CashFlowFilter) string {
	switch {
	case f.From == "" && f.To == "":
		return "Todo o período"
	case f.From == "":
		return "até " + ptbr.Date(f.To)
	case f.To == "":
		return "a partir de " + ptbr.Date(f.From)
	}
	return ptbr.Date(f.From) + " a " + ptbr.Date(f.To)
}

func issuedAt(rfc3339 string) string {
	if len(rfc3339) < 10 {
		return rfc3339
	}
	return ptbr.Date(rfc3339[:10])
}

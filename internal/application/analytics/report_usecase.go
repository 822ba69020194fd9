package analytics

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	"github.com/jhoicas/gestfinance-api/pkg/ptbr"
)

// Valores de filtro equivalentes a "sin filtro".
const (
	AllCategories = "Crédito/Débito"
	AllStores     = "todas"
	allStoresName = "Todas as Lojas"
)

// ReportUseCase genera el reporte de flujo de caja agrupado por descripción.
type ReportUseCase struct {
	transactions repository.TransactionRepository
	pdf          CashFlowPDFGenerator
	now          func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta a PDF.
func NewReportUseCase(transactions repository.TransactionRepository, pdf CashFlowPDFGenerator) *ReportUseCase {
	return &ReportUseCase{transactions: transactions, pdf: pdf, now: time.Now}
}

// CashFlow filtra por rango de fechas, categoría y tienda y agrupa por descripción.
func (uc *ReportUseCase) CashFlow(ctx context.Context, f dto.CashFlowFilter) (*dto.CashFlowReportDTO, error) {
	f, err := normalizeCashFlowFilter(f)
	if err != nil {
		return nil, err
	}
	list, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	var credits, debits, all []*entity.Transaction
	for _, t := range list {
		if f.From != "" && t.Date < f.From {
			continue
		}
		if f.To != "" && t.Date > f.To {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Store != "" && t.Store != f.Store {
			continue
		}
		all = append(all, t)
		switch t.Category {
		case entity.CategoryCredit:
			credits = append(credits, t)
		case entity.CategoryDebit:
			debits = append(debits, t)
		}
	}

	report := &dto.CashFlowReportDTO{
		Filter:      f,
		StoreLabel:  allStoresName,
		Credits:     groupByDescription(credits),
		Debits:      groupByDescription(debits),
		All:         groupByDescription(all),
		CreditTotal: sumValues(credits),
		DebitTotal:  sumValues(debits),
		GeneratedAt: uc.now().Format(time.RFC3339),
	}
	if f.Store != "" {
		report.StoreLabel = f.Store
	}
	report.Balance = report.CreditTotal.Sub(report.DebitTotal)
	return report, nil
}

// CashFlowPDF genera el reporte y lo renderiza en PDF.
func (uc *ReportUseCase) CashFlowPDF(ctx context.Context, f dto.CashFlowFilter) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.CashFlow(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCashFlowPDF(ctx, report)
}

func normalizeCashFlowFilter(f dto.CashFlowFilter) (dto.CashFlowFilter, error) {
	f.From = strings.TrimSpace(f.From)
	f.To = strings.TrimSpace(f.To)
	f.Category = strings.TrimSpace(f.Category)
	f.Store = strings.TrimSpace(f.Store)

	for _, date := range []string{f.From, f.To} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return f, domain.ErrInvalidInput
		}
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		return f, domain.ErrInvalidInput
	}
	if f.Category == AllCategories {
		f.Category = ""
	}
	if f.Category != "" && !entity.IsValidCategory(f.Category) {
		return f, domain.ErrInvalidInput
	}
	if strings.EqualFold(f.Store, AllStores) {
		f.Store = ""
	}
	return f, nil
}

// groupByDescription suma valores y cuenta registros por descripción, ordenado con collation pt-BR.
func groupByDescription(list []*entity.Transaction) []dto.CashFlowGroupDTO {
	idx := make(map[string]int)
	groups := make([]dto.CashFlowGroupDTO, 0)
	for _, t := range list {
		i, ok := idx[t.Description]
		if !ok {
			i = len(groups)
			idx[t.Description] = i
			groups = append(groups, dto.CashFlowGroupDTO{Description: t.Description, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(t.Value)
		groups[i].Count++
	}
	col := ptbr.NewCollator()
	slices.SortStableFunc(groups, func(a, b dto.CashFlowGroupDTO) int {
		return col.CompareString(a.Description, b.Description)
	})
	return groups
}

func sumValues(list []*entity.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range list {
		sum = sum.Add(t.Value)
	}
	return sum
}

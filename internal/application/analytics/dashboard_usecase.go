// Package analytics contiene los casos de uso de lectura: dashboard financiero,
// reporte de flujo de caja y vitrine de productos.
package analytics

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
)

const (
	trendWindow         = 6 // meses considerados para la tendencia
	movingAverageWindow = 3 // meses de la media móvil
	lowStockThreshold   = 5
)

var projectionGrowth = decimal.RequireFromString("1.05")

// DashboardUseCase genera el resumen financiero y las alertas de productos.
type DashboardUseCase struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(transactions repository.TransactionRepository, products repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{transactions: transactions, products: products, now: time.Now}
}

// WithClock reemplaza el reloj usado para las alertas de vencimiento (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO; store vacío considera todas las tiendas.
//
// Dos lecturas en paralelo:
//  1. transacciones → totales, serie mensual, tendencia y proyección
//  2. productos     → notificaciones de vencimiento y stock
func (uc *DashboardUseCase) GetSummary(ctx context.Context, store string) (*dto.DashboardSummaryDTO, error) {
	type txResult struct {
		list []*entity.Transaction
		err  error
	}
	type productResult struct {
		list []*entity.Product
		err  error
	}
	txCh := make(chan txResult, 1)
	productCh := make(chan productResult, 1)

	go func() {
		list, err := uc.transactions.List(ctx)
		txCh <- txResult{list, err}
	}()
	go func() {
		list, err := uc.products.List(ctx)
		productCh <- productResult{list, err}
	}()

	txs := <-txCh
	products := <-productCh
	if txs.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones: %w", txs.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}

	store = strings.TrimSpace(store)
	out := &dto.DashboardSummaryDTO{
		Store:       store,
		CreditTotal: decimal.Zero,
		DebitTotal:  decimal.Zero,
	}

	// ── Totales y serie mensual ───────────────────────────────────────────────
	byMonth := make(map[string]*dto.MonthlyBalanceDTO)
	for _, t := range txs.list {
		if store != "" && t.Store != store {
			continue
		}
		month := monthOf(t.Date)
		m, ok := byMonth[month]
		if !ok && month != "" {
			m = &dto.MonthlyBalanceDTO{Month: month, Credit: decimal.Zero, Debit: decimal.Zero}
			byMonth[month] = m
		}
		switch t.Category {
		case entity.CategoryCredit:
			out.CreditTotal = out.CreditTotal.Add(t.Value)
			out.CreditCount++
			if m != nil {
				m.Credit = m.Credit.Add(t.Value)
			}
		case entity.CategoryDebit:
			out.DebitTotal = out.DebitTotal.Add(t.Value)
			out.DebitCount++
			if m != nil {
				m.Debit = m.Debit.Add(t.Value)
			}
		}
	}
	out.Balance = out.CreditTotal.Sub(out.DebitTotal)

	out.Monthly = make([]dto.MonthlyBalanceDTO, 0, len(byMonth))
	for _, m := range byMonth {
		m.Balance = m.Credit.Sub(m.Debit)
		out.Monthly = append(out.Monthly, *m)
	}
	slices.SortFunc(out.Monthly, func(a, b dto.MonthlyBalanceDTO) int { return strings.Compare(a.Month, b.Month) })

	// ── Análisis ──────────────────────────────────────────────────────────────
	out.Trend = trend(out.Monthly)
	out.MovingAverage = movingAverage(out.Monthly).Round(2)
	out.Projection = out.MovingAverage.Mul(projectionGrowth).Round(2)

	out.Notifications = notifications(products.list, uc.now())
	return out, nil
}

// monthOf devuelve YYYY-MM de una fecha YYYY-MM-DD; vacío si no tiene ese formato.
func monthOf(date string) string {
	if len(date) < 7 || date[4] != '-' {
		return ""
	}
	return date[:7]
}

// trend suma las variaciones de saldo mes a mes en la ventana de los últimos 6 meses.
func trend(monthly []dto.MonthlyBalanceDTO) string {
	window := monthly[max(0, len(monthly)-trendWindow):]
	if len(window) < 2 {
		return dto.TrendInsufficient
	}
	delta := decimal.Zero
	for i := 1; i < len(window); i++ {
		delta = delta.Add(window[i].Balance.Sub(window[i-1].Balance))
	}
	switch {
	case delta.IsPositive():
		return dto.TrendGrowth
	case delta.IsNegative():
		return dto.TrendDecline
	default:
		return dto.TrendStable
	}
}

func movingAverage(monthly []dto.MonthlyBalanceDTO) decimal.Decimal {
	window := monthly[max(0, len(monthly)-movingAverageWindow):]
	if len(window) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, m := range window {
		sum = sum.Add(m.Balance)
	}
	return sum.Div(decimal.NewFromInt(int64(len(window))))
}

func notifications(products []*entity.Product, now time.Time) []dto.NotificationDTO {
	out := make([]dto.NotificationDTO, 0)
	low := decimal.NewFromInt(lowStockThreshold)
	for _, p := range products {
		if days, ok := expiringSoon(p.ExpiryDate, now); ok {
			out = append(out, dto.NotificationDTO{
				Type:         dto.NotificationExpiring,
				ProductCode:  p.Code,
				ProductName:  p.Name,
				Message:      fmt.Sprintf("%s vence em %d dias", p.Name, days),
				DaysToExpiry: days,
				RemainingQty: p.RemainingQty,
			})
		}
		switch {
		case p.RemainingQty.IsZero():
			out = append(out, dto.NotificationDTO{
				Type:         dto.NotificationOutOfStock,
				ProductCode:  p.Code,
				ProductName:  p.Name,
				Message:      fmt.Sprintf("%s está fora de estoque", p.Name),
				RemainingQty: p.RemainingQty,
			})
		case p.RemainingQty.IsPositive() && p.RemainingQty.LessThanOrEqual(low):
			out = append(out, dto.NotificationDTO{
				Type:         dto.NotificationLowStock,
				ProductCode:  p.Code,
				ProductName:  p.Name,
				Message:      fmt.Sprintf("%s com estoque baixo: %s unidades", p.Name, p.RemainingQty),
				RemainingQty: p.RemainingQty,
			})
		}
	}
	return out
}

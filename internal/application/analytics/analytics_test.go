package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/application/analytics"
	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/inventory"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/records"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/sqlite"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newRepos(t *testing.T) repository.Repositories {
	t.Helper()
	db, err := sqlite.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return records.NewRepositories(sqlite.NewRecordStore(db))
}

func seedTransactions(t *testing.T, repo repository.TransactionRepository) {
	t.Helper()
	rows := []entity.Transaction{
		{ID: "t1", Date: "2024-01-10", Store: "Casa", Category: entity.CategoryCredit, Description: "Poupança", Value: d("100")},
		{ID: "t2", Date: "2024-01-20", Store: "Casa", Category: entity.CategoryDebit, Description: "Dinheiro", Value: d("30")},
		{ID: "t3", Date: "2024-02-05", Store: "Banco", Category: entity.CategoryCredit, Description: "Conta Corrente", Value: d("50")},
		{ID: "t4", Date: "2024-03-01", Store: "Casa", Category: entity.CategoryCredit, Description: "Poupança", Value: d("200")},
		{ID: "t5", Date: "2024-03-02", Store: "Casa", Category: entity.CategoryDebit, Description: "Água", Value: d("20")},
	}
	for i := range rows {
		rows[i].Quantity = decimal.NewFromInt(1)
		require.NoError(t, repo.Create(context.Background(), &rows[i]))
	}
}

func seedProduct(t *testing.T, repo repository.ProductRepository, code, name, expiry, qty, shipped string) {
	t.Helper()
	p := &entity.Product{
		ID: "id-" + code, Code: code, Name: name, Brand: "Nestlé", Category: "Caixa", ExpiryDate: expiry,
		PurchasedQty: d(qty), UnitPrice: d("2"), Discount: decimal.Zero, ShippedQty: d(shipped),
	}
	require.NoError(t, inventory.ApplyLedger(p))
	require.NoError(t, repo.Create(context.Background(), p))
}

func june15() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local) }

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_TotalesSerieYTendencia(t *testing.T) {
	repos := newRepos(t)
	seedTransactions(t, repos.Transactions)
	uc := analytics.NewDashboardUseCase(repos.Transactions, repos.Products).WithClock(june15)

	s, err := uc.GetSummary(context.Background(), "")
	require.NoError(t, err)

	assert.True(t, s.CreditTotal.Equal(d("350")))
	assert.True(t, s.DebitTotal.Equal(d("50")))
	assert.True(t, s.Balance.Equal(d("300")))
	assert.Equal(t, 3, s.CreditCount)
	assert.Equal(t, 2, s.DebitCount)

	require.Len(t, s.Monthly, 3)
	assert.Equal(t, "2024-01", s.Monthly[0].Month)
	assert.Equal(t, "2024-03", s.Monthly[2].Month)
	assert.True(t, s.Monthly[0].Balance.Equal(d("70")))
	assert.True(t, s.Monthly[2].Balance.Equal(d("180")))

	assert.Equal(t, dto.TrendGrowth, s.Trend)
	assert.True(t, s.MovingAverage.Equal(d("100")))
	assert.True(t, s.Projection.Equal(d("105")))
}

func TestDashboard_FiltroPorTiendaConUnSoloMes(t *testing.T) {
	repos := newRepos(t)
	seedTransactions(t, repos.Transactions)
	uc := analytics.NewDashboardUseCase(repos.Transactions, repos.Products)

	s, err := uc.GetSummary(context.Background(), "Banco")
	require.NoError(t, err)
	assert.Equal(t, "Banco", s.Store)
	assert.True(t, s.Balance.Equal(d("50")))
	assert.Equal(t, dto.TrendInsufficient, s.Trend)
	assert.True(t, s.Projection.Equal(d("52.5")))
}

func TestDashboard_SinDatos(t *testing.T) {
	repos := newRepos(t)
	s, err := analytics.NewDashboardUseCase(repos.Transactions, repos.Products).GetSummary(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, s.Monthly)
	assert.Equal(t, dto.TrendInsufficient, s.Trend)
	assert.True(t, s.MovingAverage.IsZero())
	assert.Empty(t, s.Notifications)
}

func TestDashboard_Notificaciones(t *testing.T) {
	repos := newRepos(t)
	seedProduct(t, repos.Products, "PRD000001", "Iogurte", "2024-06-25", "10", "7") // vence en 10 días, stock 3
	seedProduct(t, repos.Products, "PRD000002", "Queijo", "2024-06-15", "4", "4")   // vence hoy, sin stock
	seedProduct(t, repos.Products, "PRD000003", "Arroz", "2024-09-01", "50", "0")
	uc := analytics.NewDashboardUseCase(repos.Transactions, repos.Products).WithClock(june15)

	s, err := uc.GetSummary(context.Background(), "")
	require.NoError(t, err)

	byType := map[string][]string{}
	for _, n := range s.Notifications {
		byType[n.Type] = append(byType[n.Type], n.ProductCode)
	}
	assert.Equal(t, []string{"PRD000001"}, byType[dto.NotificationExpiring])
	assert.Equal(t, []string{"PRD000001"}, byType[dto.NotificationLowStock])
	assert.Equal(t, []string{"PRD000002"}, byType[dto.NotificationOutOfStock])
	assert.Len(t, s.Notifications, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de flujo de caja
// ──────────────────────────────────────────────────────────────────────────────

func TestCashFlow_AgrupaPorDescripcion(t *testing.T) {
	repos := newRepos(t)
	seedTransactions(t, repos.Transactions)
	uc := analytics.NewReportUseCase(repos.Transactions, nil)

	r, err := uc.CashFlow(context.Background(), dto.CashFlowFilter{Category: analytics.AllCategories, Store: "todas"})
	require.NoError(t, err)

	assert.Equal(t, "Todas as Lojas", r.StoreLabel)
	require.Len(t, r.Credits, 2)
	assert.Equal(t, "Conta Corrente", r.Credits[0].Description)
	assert.Equal(t, "Poupança", r.Credits[1].Description)
	assert.True(t, r.Credits[1].Total.Equal(d("300")))
	assert.Equal(t, 2, r.Credits[1].Count)

	require.Len(t, r.Debits, 2)
	assert.Equal(t, "Água", r.Debits[0].Description)
	assert.Len(t, r.All, 4)
	assert.True(t, r.Balance.Equal(d("300")))
}

func TestCashFlow_FiltrosDeFechaYCategoria(t *testing.T) {
	repos := newRepos(t)
	seedTransactions(t, repos.Transactions)
	uc := analytics.NewReportUseCase(repos.Transactions, nil)

	r, err := uc.CashFlow(context.Background(), dto.CashFlowFilter{From: "2024-01-15", To: "2024-03-01", Category: entity.CategoryCredit})
	require.NoError(t, err)
	assert.True(t, r.CreditTotal.Equal(d("250")))
	assert.True(t, r.DebitTotal.IsZero())
	assert.Empty(t, r.Debits)

	_, err = uc.CashFlow(context.Background(), dto.CashFlowFilter{From: "15/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CashFlow(context.Background(), dto.CashFlowFilter{From: "2024-03-01", To: "2024-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CashFlow(context.Background(), dto.CashFlowFilter{Category: "Outro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type fakePDF struct{ got *dto.CashFlowReportDTO }

func (f *fakePDF) GenerateCashFlowPDF(_ context.Context, r *dto.CashFlowReportDTO) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}

func TestCashFlowPDF_DelegaEnGenerador(t *testing.T) {
	repos := newRepos(t)
	seedTransactions(t, repos.Transactions)
	gen := &fakePDF{}

	b, err := analytics.NewReportUseCase(repos.Transactions, gen).CashFlowPDF(context.Background(), dto.CashFlowFilter{Store: "Casa"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(b))
	require.NotNil(t, gen.got)
	assert.Equal(t, "Casa", gen.got.StoreLabel)
	assert.True(t, gen.got.CreditTotal.Equal(d("300")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Vitrine
// ──────────────────────────────────────────────────────────────────────────────

func TestShowcase_FiltraYSumaValorEnStock(t *testing.T) {
	repos := newRepos(t)
	seedProduct(t, repos.Products, "PRD000001", "Iogurte Natural", "2024-06-25", "10", "7")
	seedProduct(t, repos.Products, "PRD000002", "Queijo", "2024-12-01", "4", "4")
	seedProduct(t, repos.Products, "PRD000003", "Iogurte Morango", "2024-12-01", "5", "0")
	uc := analytics.NewShowcaseUseCase(repos.Products).WithClock(june15)

	s, err := uc.Get(context.Background(), dto.ShowcaseFilter{Name: "iogurte"})
	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultShowcaseTitle, s.Title)
	assert.Equal(t, 2, s.InStockCount)
	assert.Equal(t, 1, s.OutOfStockCount)
	require.Len(t, s.Items, 2)
	assert.True(t, s.Items[0].ExpiringSoon)
	assert.False(t, s.Items[1].ExpiringSoon)
	assert.True(t, s.RemainingValue.Equal(d("16")), "3*2 + 5*2")

	out, err := uc.Get(context.Background(), dto.ShowcaseFilter{Status: entity.StatusOutOfStock})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "PRD000002", out.Items[0].Code)
}

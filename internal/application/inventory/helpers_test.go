package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/application/inventory"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	domaininv "github.com/jhoicas/gestfinance-api/internal/domain/inventory"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/records"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/sqlite"
)

type fixture struct {
	repos repository.Repositories
	uc    *inventory.OutboundUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := sqlite.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	repos := records.NewRepositories(sqlite.NewRecordStore(db))
	return &fixture{
		repos: repos,
		uc:    inventory.NewOutboundUseCase(sqlite.NewTxRunner(db), repos, nil),
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedProduct guarda un producto con los derivados calculados.
func (f *fixture) seedProduct(t *testing.T, code, name, qty, price, discount string) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:           "id-" + code,
		Code:         code,
		PurchaseDate: "2024-03-01",
		Name:         name,
		ExpiryDate:   "2025-03-01",
		PurchasedQty: d(qty),
		UnitPrice:    d(price),
		Discount:     d(discount),
	}
	require.NoError(t, domaininv.ApplyLedger(p))
	require.NoError(t, f.repos.Products.Create(context.Background(), p))
	return p
}

// registerDescriptions agrega nombres a la lista de descripciones.
func (f *fixture) registerDescriptions(t *testing.T, names ...string) {
	t.Helper()
	ctx := context.Background()
	reg, err := f.repos.Registry.Get(ctx)
	require.NoError(t, err)
	reg.Descriptions = append(reg.Descriptions, names...)
	require.NoError(t, f.repos.Registry.Save(ctx, reg))
}

package records_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/repository"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/records"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/sqlite"
)

func newRepos(t *testing.T) repository.Repositories {
	t.Helper()
	db, err := sqlite.Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return records.NewRepositories(sqlite.NewRecordStore(db))
}

func TestProductRepo_BuscaPorCodigo(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	p := &entity.Product{ID: "p1", Code: "PRD000123", Name: "Leite", PurchasedQty: decimal.NewFromInt(12)}
	require.NoError(t, repos.Products.Create(ctx, p))

	got, err := repos.Products.GetByCode(ctx, "PRD000123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Leite", got.Name)
	assert.True(t, got.PurchasedQty.Equal(decimal.NewFromInt(12)))

	none, err := repos.Products.GetByCode(ctx, "PRD999999")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestTransactionRepo_ActualizaEnElLugar(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	tx := &entity.Transaction{ID: "t1", Date: "2024-01-05", Store: "Casa", Category: entity.CategoryCredit, Description: "Poupança", Value: decimal.NewFromInt(100)}
	require.NoError(t, repos.Transactions.Create(ctx, tx))
	tx.Value = decimal.NewFromInt(150)
	require.NoError(t, repos.Transactions.Update(ctx, tx))

	list, err := repos.Transactions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Value.Equal(decimal.NewFromInt(150)))

	require.NoError(t, repos.Transactions.Delete(ctx, "t1"))
	got, err := repos.Transactions.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRegistryRepo_DefectosYGuardado(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	reg, err := repos.Registry.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultRegistry().Stores, reg.Stores)

	reg.Stores = []string{"Feira"}
	require.NoError(t, repos.Registry.Save(ctx, reg))
	reg.Brands = []string{"Marca X"}
	require.NoError(t, repos.Registry.Save(ctx, reg))

	got, err := repos.Registry.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Feira"}, got.Stores)
	assert.Equal(t, []string{"Marca X"}, got.Brands)

	recs, err := repos.Records.ListByKind(ctx, entity.RecordRegistry)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/application/inventory"
	"github.com/jhoicas/gestfinance-api/internal/domain"
	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Process
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_SalidaParcialActualizaStockYGeneraDebito(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "PRD000001", "Arroz 5kg", "10", "5.00", "10.00")
	f.registerDescriptions(t, "Arroz 5kg")

	res, err := f.uc.Process(ctx, inventory.OutboundInput{
		Date:        "2024-04-02",
		Origin:      "Depósito",
		Destination: "Loja Centro",
		ProductCode: "PRD000001",
		Quantity:    d("3"),
	})
	require.NoError(t, err)

	assert.True(t, res.Movement.UnitPrice.Equal(d("4")))
	assert.True(t, res.Movement.Total.Equal(d("12")))
	assert.Equal(t, "Arroz 5kg", res.Movement.ProductName)
	assert.Equal(t, "Depósito", res.Movement.Location)

	require.NotNil(t, res.Product)
	assert.True(t, res.Product.ShippedQty.Equal(d("3")))
	assert.True(t, res.Product.RemainingQty.Equal(d("7")))
	assert.True(t, res.Product.ShippedValue.Equal(d("12")))
	assert.True(t, res.Product.RemainingValue.Equal(d("28")))
	assert.Equal(t, entity.StatusInStock, res.Product.Status)

	require.NotNil(t, res.Transaction)
	assert.Equal(t, entity.CategoryDebit, res.Transaction.Category)
	assert.Equal(t, "Depósito", res.Transaction.Store)
	assert.Equal(t, "Arroz 5kg", res.Transaction.Description)
	assert.Equal(t, "Saída de produto do Depósito para Loja Centro", res.Transaction.Note)
	assert.True(t, res.Transaction.Value.Equal(d("12")))
	assert.True(t, res.Transaction.Quantity.Equal(d("3")))

	stored, err := f.repos.Products.GetByCode(ctx, "PRD000001")
	require.NoError(t, err)
	assert.True(t, stored.RemainingQty.Equal(d("7")))

	txs, err := f.repos.Transactions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestProcess_SalidaTotalDejaFueraDeStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "PRD000002", "Feijão", "10", "5.00", "10.00")
	f.registerDescriptions(t, "Feijão")

	res, err := f.uc.Process(context.Background(), inventory.OutboundInput{
		Origin: "Depósito", ProductCode: "PRD000002", Quantity: d("10"),
	})
	require.NoError(t, err)

	assert.True(t, res.Product.RemainingQty.IsZero())
	assert.Equal(t, entity.StatusOutOfStock, res.Product.Status)
	assert.Equal(t, "Saída de produto do Depósito para Destino", res.Transaction.Note)
	assert.NotEmpty(t, res.Movement.Date, "sin fecha se usa la de hoy")
}

func TestProcess_SinDescripcionRegistradaNoEscribeNada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "PRD000003", "Produto Sem Cadastro", "10", "5.00", "10.00")

	_, err := f.uc.Process(ctx, inventory.OutboundInput{
		Origin: "Depósito", ProductCode: "PRD000003", Quantity: d("3"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingRegistryEntry)
	var missing *domain.MissingRegistryEntryError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Produto Sem Cadastro", missing.ProductName)

	movements, err := f.repos.Movements.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movements)
	txs, err := f.repos.Transactions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
	p, err := f.repos.Products.GetByCode(ctx, "PRD000003")
	require.NoError(t, err)
	assert.True(t, p.ShippedQty.IsZero())
}

func TestProcess_CodigoDesconocidoRegistraSoloElMovimiento(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.uc.Process(ctx, inventory.OutboundInput{
		Origin: "Depósito", ProductCode: "PRD999999", Quantity: d("2"),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Product)
	assert.Nil(t, res.Transaction)
	assert.True(t, res.Movement.Total.IsZero())

	movements, err := f.repos.Movements.List(ctx)
	require.NoError(t, err)
	assert.Len(t, movements, 1)
	txs, err := f.repos.Transactions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterFromRequest (validaciones del formulario)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterFromRequest_CantidadNoPositiva(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.RegisterFromRequest(context.Background(), dto.RegisterOutboundRequest{
		Origin: "Depósito", ProductCode: "PRD000001", Quantity: d("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterFromRequest_CodigoDesconocido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.RegisterFromRequest(context.Background(), dto.RegisterOutboundRequest{
		Origin: "Depósito", ProductCode: "PRD404404", Quantity: d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterFromRequest_StockInsuficiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "PRD000004", "Café", "5", "10", "0")
	f.registerDescriptions(t, "Café")

	_, err := f.uc.RegisterFromRequest(ctx, dto.RegisterOutboundRequest{
		Origin: "Depósito", ProductCode: "PRD000004", Quantity: d("6"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	movements, err := f.repos.Movements.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestRegisterFromRequest_OK(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "PRD000005", "Açúcar", "4", "2.50", "1.00")
	f.registerDescriptions(t, "Açúcar")

	out, err := f.uc.RegisterFromRequest(context.Background(), dto.RegisterOutboundRequest{
		Date: "2024-05-10", Origin: " Depósito ", Destination: "Loja", ProductCode: "PRD000005", Quantity: d("4"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Depósito", out.Movement.Origin)
	require.NotNil(t, out.Product)
	assert.Equal(t, entity.StatusOutOfStock, out.Product.Status)
	require.NotNil(t, out.Transaction)
	assert.True(t, out.Transaction.Value.Equal(d("9")), "4 * (2.50 - 0.25)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mantenimiento de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_ListarActualizarEliminar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "PRD000006", "Leite", "20", "3", "0")
	f.registerDescriptions(t, "Leite")

	res, err := f.uc.Process(ctx, inventory.OutboundInput{
		Date: "2024-06-01", Origin: "Depósito", ProductCode: "PRD000006", Quantity: d("5"),
	})
	require.NoError(t, err)
	_, err = f.uc.Process(ctx, inventory.OutboundInput{
		Date: "2024-06-02", Origin: "Depósito", ProductCode: "PRD000006", Quantity: d("1"),
	})
	require.NoError(t, err)

	list, err := f.uc.ListMovements(ctx, dto.OutboundFilter{Date: "2024-06-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	list, err = f.uc.ListMovements(ctx, dto.OutboundFilter{ProductName: "lei"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	dest := "Loja Norte"
	updated, err := f.uc.UpdateMovement(ctx, res.Movement.ID, dto.UpdateOutboundRequest{Destination: &dest})
	require.NoError(t, err)
	assert.Equal(t, "Loja Norte", updated.Destination)
	assert.True(t, updated.Quantity.Equal(d("5")))

	p, err := f.repos.Products.GetByCode(ctx, "PRD000006")
	require.NoError(t, err)
	assert.True(t, p.ShippedQty.Equal(d("6")), "editar la salida no reajusta el stock")

	require.NoError(t, f.uc.DeleteMovement(ctx, res.Movement.ID))
	_, err = f.uc.GetMovement(ctx, res.Movement.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.uc.DeleteMovement(ctx, res.Movement.ID), domain.ErrNotFound)

	txs, err := f.repos.Transactions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 2, "eliminar la salida no elimina la transacción generada")
}

package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
	"github.com/jhoicas/gestfinance-api/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func inputs(qty, price, discount string) inventory.LedgerInputs {
	return inventory.LedgerInputs{PurchasedQty: d(qty), UnitPrice: d(price), Discount: d(discount)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto de referencia: 10 unidades a 5.00 con 10.00 de descuento total.
// ──────────────────────────────────────────────────────────────────────────────

func TestRecompute_CompraSinSalidas(t *testing.T) {
	v, err := inventory.Recompute(inputs("10", "5.00", "10.00"), decimal.Zero)
	require.NoError(t, err)

	assert.True(t, v.TotalPrice.Equal(d("50")), "valor total = 5 * 10")
	assert.True(t, v.UnitDiscount.Equal(d("1")), "descuento unitario = 10 / 10")
	assert.True(t, v.DiscountedUnitPrice.Equal(d("4")), "unidad con descuento = 5 - 1")
	assert.True(t, v.DiscountedTotal.Equal(d("40")), "total con descuento = 50 - 10")
	assert.True(t, v.RemainingQty.Equal(d("10")))
	assert.True(t, v.RemainingValue.Equal(d("40")))
	assert.True(t, v.ShippedValue.IsZero())
	assert.Equal(t, entity.StatusInStock, v.Status)
}

func TestRecompute_SalidaParcial(t *testing.T) {
	v, err := inventory.Recompute(inputs("10", "5.00", "10.00"), d("3"))
	require.NoError(t, err)

	assert.True(t, v.ShippedQty.Equal(d("3")))
	assert.True(t, v.RemainingQty.Equal(d("7")))
	assert.True(t, v.ShippedValue.Equal(d("12")))
	assert.True(t, v.RemainingValue.Equal(d("28")))
	assert.Equal(t, entity.StatusInStock, v.Status)
}

func TestRecompute_SalidaTotalDejaFueraDeStock(t *testing.T) {
	v, err := inventory.Recompute(inputs("10", "5.00", "10.00"), d("10"))
	require.NoError(t, err)

	assert.True(t, v.RemainingQty.IsZero())
	assert.True(t, v.RemainingValue.IsZero())
	assert.Equal(t, entity.StatusOutOfStock, v.Status)
}

func TestRecompute_SobreSalidaSeLimitaACero(t *testing.T) {
	v, err := inventory.Recompute(inputs("10", "5.00", "10.00"), d("15"))
	require.NoError(t, err)

	assert.True(t, v.RemainingQty.IsZero(), "el stock nunca es negativo")
	assert.True(t, v.RemainingValue.IsZero(), "el valor en stock nunca es negativo")
	assert.True(t, v.ShippedValue.Equal(d("60")))
	assert.Equal(t, entity.StatusOutOfStock, v.Status)
}

func TestRecompute_CantidadCeroDevuelveError(t *testing.T) {
	_, err := inventory.Recompute(inputs("0", "5.00", "1.00"), decimal.Zero)
	assert.ErrorIs(t, err, inventory.ErrZeroPurchasedQuantity)
}

// Propiedades: total = precio * cantidad, total con descuento = total - descuento,
// stock = max(0, comprado - salido) e idempotencia.
func TestRecompute_Propiedades(t *testing.T) {
	cases := []struct {
		qty, price, discount, shipped string
	}{
		{"1", "0", "0", "0"},
		{"3", "10", "1", "1"},
		{"7", "3.33", "2.5", "7"},
		{"12", "19.90", "0", "20"},
		{"100", "0.01", "0.5", "99"},
	}
	for _, c := range cases {
		in := inputs(c.qty, c.price, c.discount)
		first, err := inventory.Recompute(in, d(c.shipped))
		require.NoError(t, err)
		second, err := inventory.Recompute(in, d(c.shipped))
		require.NoError(t, err)

		assertSameValues(t, first, second)
		assert.True(t, first.TotalPrice.Equal(in.UnitPrice.Mul(in.PurchasedQty)))
		assert.True(t, first.DiscountedTotal.Equal(first.TotalPrice.Sub(in.Discount)))
		want := decimal.Max(decimal.Zero, in.PurchasedQty.Sub(d(c.shipped)))
		assert.True(t, first.RemainingQty.Equal(want))
		assert.False(t, first.RemainingQty.IsNegative())
	}
}

func TestApplyLedger_EscribeDerivadosEnProducto(t *testing.T) {
	p := &entity.Product{
		PurchasedQty: d("10"),
		UnitPrice:    d("5"),
		Discount:     d("10"),
		ShippedQty:   d("3"),
		// derivados obsoletos que deben sobrescribirse
		RemainingQty: d("99"),
		Status:       entity.StatusOutOfStock,
	}
	require.NoError(t, inventory.ApplyLedger(p))

	assert.True(t, p.RemainingQty.Equal(d("7")))
	assert.True(t, p.DiscountedUnitPrice.Equal(d("4")))
	assert.Equal(t, entity.StatusInStock, p.Status)
	assert.True(t, p.InStock())
}

func assertSameValues(t *testing.T, a, b inventory.LedgerValues) {
	t.Helper()
	pairs := [][2]decimal.Decimal{
		{a.TotalPrice, b.TotalPrice},
		{a.UnitDiscount, b.UnitDiscount},
		{a.DiscountedUnitPrice, b.DiscountedUnitPrice},
		{a.DiscountedTotal, b.DiscountedTotal},
		{a.ShippedQty, b.ShippedQty},
		{a.RemainingQty, b.RemainingQty},
		{a.ShippedValue, b.ShippedValue},
		{a.RemainingValue, b.RemainingValue},
	}
	for i, p := range pairs {
		assert.True(t, p[0].Equal(p[1]), "campo derivado %d difiere entre recálculos", i)
	}
	assert.Equal(t, a.Status, b.Status)
}

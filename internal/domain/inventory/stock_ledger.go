package inventory

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// ErrZeroPurchasedQuantity la cantidad comprada es cero y el descuento unitario no está definido.
var ErrZeroPurchasedQuantity = errors.New("cantidad comprada igual a cero")

// LedgerInputs campos de entrada de un producto que determinan los derivados.
type LedgerInputs struct {
	PurchasedQty decimal.Decimal
	UnitPrice    decimal.Decimal
	Discount     decimal.Decimal // descuento total de la compra
}

// LedgerValues campos derivados de un producto.
type LedgerValues struct {
	TotalPrice          decimal.Decimal
	UnitDiscount        decimal.Decimal
	DiscountedUnitPrice decimal.Decimal
	DiscountedTotal     decimal.Decimal
	ShippedQty          decimal.Decimal
	RemainingQty        decimal.Decimal
	ShippedValue        decimal.Decimal
	RemainingValue      decimal.Decimal
	Status              string
}

// Recompute calcula los campos derivados (servicio de dominio, sin efectos secundarios).
//
//	ValorTotal            = ValorUnitario * CantComprada
//	DescuentoUnitario     = DescuentoAplicado / CantComprada
//	UnidadConDescuento    = ValorUnitario - DescuentoUnitario
//	ValorTotalConDesc     = ValorTotal - DescuentoAplicado
//	CantEnStock           = max(0, CantComprada - CantSalida)
//	ValorSalida           = CantSalida * UnidadConDescuento
//	ValorStock            = CantEnStock * UnidadConDescuento (nunca negativo)
func Recompute(in LedgerInputs, shipped decimal.Decimal) (LedgerValues, error) {
	if in.PurchasedQty.IsZero() {
		return LedgerValues{}, ErrZeroPurchasedQuantity
	}
	total := in.UnitPrice.Mul(in.PurchasedQty)
	unitDiscount := in.Discount.Div(in.PurchasedQty)
	discountedUnit := in.UnitPrice.Sub(unitDiscount)

	remaining := decimal.Max(decimal.Zero, in.PurchasedQty.Sub(shipped))
	remainingValue := decimal.Max(decimal.Zero, remaining.Mul(discountedUnit))

	status := entity.StatusOutOfStock
	if remaining.GreaterThan(decimal.Zero) {
		status = entity.StatusInStock
	}

	return LedgerValues{
		TotalPrice:          total,
		UnitDiscount:        unitDiscount,
		DiscountedUnitPrice: discountedUnit,
		DiscountedTotal:     total.Sub(in.Discount),
		ShippedQty:          shipped,
		RemainingQty:        remaining,
		ShippedValue:        shipped.Mul(discountedUnit),
		RemainingValue:      remainingValue,
		Status:              status,
	}, nil
}

// ApplyLedger recalcula los derivados del producto con su cantidad de salida actual
// y los escribe en la entidad.
func ApplyLedger(p *entity.Product) error {
	v, err := Recompute(LedgerInputs{
		PurchasedQty: p.PurchasedQty,
		UnitPrice:    p.UnitPrice,
		Discount:     p.Discount,
	}, p.ShippedQty)
	if err != nil {
		return err
	}
	p.TotalPrice = v.TotalPrice
	p.UnitDiscount = v.UnitDiscount
	p.DiscountedUnitPrice = v.DiscountedUnitPrice
	p.DiscountedTotal = v.DiscountedTotal
	p.ShippedQty = v.ShippedQty
	p.RemainingQty = v.RemainingQty
	p.ShippedValue = v.ShippedValue
	p.RemainingValue = v.RemainingValue
	p.Status = v.Status
	return nil
}

package entity

import "github.com/shopspring/decimal"

// Situación de stock de un producto.
const (
	StatusInStock    = "Em Estoque"
	StatusOutOfStock = "Fora de Estoque"
)

// Product representa una compra de producto con sus campos derivados de stock y descuento.
// Los campos derivados se recalculan siempre con inventory.ApplyLedger; nunca se editan a mano.
// Las etiquetas JSON son el formato persistido y el del backup.
type Product struct {
	ID           string          `json:"id"`
	Code         string          `json:"codigo"` // PRD + 6 dígitos, único
	PurchaseDate string          `json:"dataCompra"`
	Name         string          `json:"produto"`
	Category     string          `json:"categoria"`
	Brand        string          `json:"marca"`
	Description  string          `json:"descricao"`
	ExpiryDate   string          `json:"validade"`
	PurchasedQty decimal.Decimal `json:"quantidadeComprada"`
	UnitPrice    decimal.Decimal `json:"valorUnitario"`
	Discount     decimal.Decimal `json:"descontoAplicado"` // descuento total de la compra

	// Derivados
	TotalPrice          decimal.Decimal `json:"valorTotal"`
	UnitDiscount        decimal.Decimal `json:"descontoUnitario"`
	DiscountedUnitPrice decimal.Decimal `json:"unidadeComDesconto"`
	DiscountedTotal     decimal.Decimal `json:"valorTotalComDesconto"`
	ShippedQty          decimal.Decimal `json:"quantidadeSaiu"`
	RemainingQty        decimal.Decimal `json:"quantidadeEstoque"`
	ShippedValue        decimal.Decimal `json:"valorTotalSaiu"`
	RemainingValue      decimal.Decimal `json:"valorTotalEstoque"`
	Status              string          `json:"situacao"`
}

// InStock indica si queda cantidad disponible.
func (p *Product) InStock() bool {
	return p.RemainingQty.GreaterThan(decimal.Zero)
}

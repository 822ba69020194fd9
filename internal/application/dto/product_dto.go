package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// CreateProductRequest entrada para registrar una compra de producto.
// El código y los campos derivados se calculan en el servidor.
type CreateProductRequest struct {
	PurchaseDate string          `json:"purchase_date"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Description  string          `json:"description"`
	ExpiryDate   string          `json:"expiry_date"`
	PurchasedQty decimal.Decimal `json:"purchased_qty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Discount     decimal.Decimal `json:"discount"`
}

// UpdateProductRequest entrada para actualizar un producto. No permite tocar derivados ni la cantidad de salida.
type UpdateProductRequest struct {
	PurchaseDate *string          `json:"purchase_date"`
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Brand        *string          `json:"brand"`
	Description  *string          `json:"description"`
	ExpiryDate   *string          `json:"expiry_date"`
	PurchasedQty *decimal.Decimal `json:"purchased_qty"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Discount     *decimal.Decimal `json:"discount"`
}

// ProductFilter filtros de GET /api/products.
type ProductFilter struct {
	Code         string `query:"code"`
	Name         string `query:"name"`
	Brand        string `query:"brand"`
	PurchaseDate string `query:"purchase_date"`
	ExpiryDate   string `query:"expiry_date"`
	InStockOnly  bool   `query:"in_stock_only"`
}

// ProductResponse salida de un producto con sus campos derivados.
type ProductResponse struct {
	ID                  string          `json:"id"`
	Code                string          `json:"code"`
	PurchaseDate        string          `json:"purchase_date"`
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	Brand               string          `json:"brand"`
	Description         string          `json:"description"`
	ExpiryDate          string          `json:"expiry_date"`
	PurchasedQty        decimal.Decimal `json:"purchased_qty"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Discount            decimal.Decimal `json:"discount"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	UnitDiscount        decimal.Decimal `json:"unit_discount"`
	DiscountedUnitPrice decimal.Decimal `json:"discounted_unit_price"`
	DiscountedTotal     decimal.Decimal `json:"discounted_total"`
	ShippedQty          decimal.Decimal `json:"shipped_qty"`
	RemainingQty        decimal.Decimal `json:"remaining_qty"`
	ShippedValue        decimal.Decimal `json:"shipped_value"`
	RemainingValue      decimal.Decimal `json:"remaining_value"`
	Status              string          `json:"status"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad a la respuesta.
func NewProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:                  p.ID,
		Code:                p.Code,
		PurchaseDate:        p.PurchaseDate,
		Name:                p.Name,
		Category:            p.Category,
		Brand:               p.Brand,
		Description:         p.Description,
		ExpiryDate:          p.ExpiryDate,
		PurchasedQty:        p.PurchasedQty,
		UnitPrice:           p.UnitPrice,
		Discount:            p.Discount,
		TotalPrice:          p.TotalPrice,
		UnitDiscount:        p.UnitDiscount,
		DiscountedUnitPrice: p.DiscountedUnitPrice,
		DiscountedTotal:     p.DiscountedTotal,
		ShippedQty:          p.ShippedQty,
		RemainingQty:        p.RemainingQty,
		ShippedValue:        p.ShippedValue,
		RemainingValue:      p.RemainingValue,
		Status:              p.Status,
	}
}

// NewProductListResponse mapea una lista de entidades.
func NewProductListResponse(list []*entity.Product) *ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *NewProductResponse(p))
	}
	return &ProductListResponse{Items: items, Total: len(items)}
}

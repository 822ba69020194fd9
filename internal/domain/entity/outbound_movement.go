package entity

import "github.com/shopspring/decimal"

// OutboundMovement representa una salida de stock de un local hacia otro.
// Location replica Origin por compatibilidad con registros antiguos que solo tenían "local".
type OutboundMovement struct {
	ID          string          `json:"id"`
	Date        string          `json:"data"`
	Location    string          `json:"local"`
	Origin      string          `json:"localSaida,omitempty"`
	Destination string          `json:"localChegada,omitempty"`
	ProductCode string          `json:"codigoProduto"`
	ProductName string          `json:"produto"`
	ExpiryDate  string          `json:"dataValidade"`
	UnitPrice   decimal.Decimal `json:"valorUnitario"` // unidadeComDesconto del producto
	Quantity    decimal.Decimal `json:"quantidadeSaida"`
	Total       decimal.Decimal `json:"valorTotalFinal"`
}

// OriginLocation devuelve el local de salida, con fallback al campo legado.
func (m *OutboundMovement) OriginLocation() string {
	if m.Origin != "" {
		return m.Origin
	}
	return m.Location
}

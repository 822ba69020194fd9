package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// RegisterOutboundRequest body para POST /api/outbound-movements.
type RegisterOutboundRequest struct {
	Date        string          `json:"date"` // vacío = hoy
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// UpdateOutboundRequest body para PUT /api/outbound-movements/:id.
// Solo fecha y locales: la cantidad no se reajusta.
type UpdateOutboundRequest struct {
	Date        *string `json:"date"`
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
}

// OutboundFilter filtros de GET /api/outbound-movements.
type OutboundFilter struct {
	ProductCode string `query:"product_code"`
	ProductName string `query:"product_name"`
	Date        string `query:"date"`
}

// OutboundMovementResponse salida de un movimiento de salida.
type OutboundMovementResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	ExpiryDate  string          `json:"expiry_date"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// OutboundListResponse listado de movimientos.
type OutboundListResponse struct {
	Items []OutboundMovementResponse `json:"items"`
	Total int                        `json:"total"`
}

// OutboundResultResponse resultado de registrar una salida.
// Product y Transaction son nil cuando el código no corresponde a ningún producto.
type OutboundResultResponse struct {
	Movement    OutboundMovementResponse `json:"movement"`
	Product     *ProductResponse         `json:"product,omitempty"`
	Transaction *TransactionResponse     `json:"transaction,omitempty"`
}

// NewOutboundMovementResponse mapea la entidad a la respuesta.
func NewOutboundMovementResponse(m *entity.OutboundMovement) *OutboundMovementResponse {
	return &OutboundMovementResponse{
		ID:          m.ID,
		Date:        m.Date,
		Origin:      m.OriginLocation(),
		Destination: m.Destination,
		ProductCode: m.ProductCode,
		ProductName: m.ProductName,
		ExpiryDate:  m.ExpiryDate,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		Total:       m.Total,
	}
}

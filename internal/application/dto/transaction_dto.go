package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestfinance-api/internal/domain/entity"
)

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Store       string          `json:"store"`
	Category    string          `json:"category"` // Crédito | Débito
	Note        string          `json:"note"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// UpdateTransactionRequest body para PUT /api/transactions/:id (campos opcionales).
type UpdateTransactionRequest struct {
	Date        *string          `json:"date"`
	Store       *string          `json:"store"`
	Category    *string          `json:"category"`
	Note        *string          `json:"note"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Value       *decimal.Decimal `json:"value"`
}

// TransactionFilter filtros de GET /api/transactions.
// Date y Category son exactos; Store, Description y Value buscan por subcadena.
type TransactionFilter struct {
	Date        string `query:"date"`
	Store       string `query:"store"`
	Category    string `query:"category"`
	Description string `query:"description"`
	Value       string `query:"value"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Store       string          `json:"store"`
	Category    string          `json:"category"`
	Note        string          `json:"note"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
}

// TransactionListResponse listado de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// NewTransactionResponse mapea la entidad a la respuesta.
func NewTransactionResponse(t *entity.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Store:       t.Store,
		Category:    t.Category,
		Note:        t.Note,
		Description: t.Description,
		Quantity:    t.Quantity,
		Value:       t.Value,
	}
}

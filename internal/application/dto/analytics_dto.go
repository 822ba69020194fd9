package dto

import "github.com/shopspring/decimal"

// ── Fluxo de caixa ────────────────────────────────────────────────────────────

// CashFlowFilter parámetros de GET /api/reports/cash-flow.
type CashFlowFilter struct {
	From     string `query:"from"`     // YYYY-MM-DD inclusive
	To       string `query:"to"`       // YYYY-MM-DD inclusive
	Category string `query:"category"` // Crédito | Débito | vacío = ambas
	Store    string `query:"store"`    // vacío = todas
}

// CashFlowGroupDTO total de una descripción.
type CashFlowGroupDTO struct {
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	Count       int             `json:"count"`
}

// CashFlowReportDTO respuesta del reporte de flujo de caja.
type CashFlowReportDTO struct {
	Filter      CashFlowFilter     `json:"filter"`
	StoreLabel  string             `json:"store_label"`
	Credits     []CashFlowGroupDTO `json:"credits"`
	Debits      []CashFlowGroupDTO `json:"debits"`
	All         []CashFlowGroupDTO `json:"all"`
	CreditTotal decimal.Decimal    `json:"credit_total"`
	DebitTotal  decimal.Decimal    `json:"debit_total"`
	Balance     decimal.Decimal    `json:"balance"`
	GeneratedAt string             `json:"generated_at"`
}

// ── Vitrine ───────────────────────────────────────────────────────────────────

// ShowcaseFilter parámetros de GET /api/showcase.
type ShowcaseFilter struct {
	Title    string `query:"title"`
	Name     string `query:"name"`
	Brand    string `query:"brand"`
	Category string `query:"category"`
	Status   string `query:"status"` // Em Estoque | Fora de Estoque | vacío = todas
}

// ShowcaseItemDTO producto en la vitrine.
type ShowcaseItemDTO struct {
	ProductResponse
	ExpiringSoon bool `json:"expiring_soon"`
}

// ShowcaseDTO respuesta de la vitrine.
// Los contadores consideran todos los productos; el valor, solo los filtrados.
type ShowcaseDTO struct {
	Title           string            `json:"title"`
	Items           []ShowcaseItemDTO `json:"items"`
	InStockCount    int               `json:"in_stock_count"`
	OutOfStockCount int               `json:"out_of_stock_count"`
	RemainingValue  decimal.Decimal   `json:"remaining_value"`
}

package dto

import "github.com/shopspring/decimal"

// Tendencias del saldo mensual.
const (
	TrendGrowth       = "Crescimento"
	TrendDecline      = "Declínio"
	TrendStable       = "Estável"
	TrendInsufficient = "Dados insuficientes"
)

// Tipos de notificación del dashboard.
const (
	NotificationExpiring   = "expiring"
	NotificationLowStock   = "low_stock"
	NotificationOutOfStock = "out_of_stock"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Store       string          `json:"store"` // vacío = todas las tiendas
	CreditTotal decimal.Decimal `json:"credit_total"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	Balance     decimal.Decimal `json:"balance"` // crédito - débito
	CreditCount int             `json:"credit_count"`
	DebitCount  int             `json:"debit_count"`

	// Serie mensual en orden cronológico (YYYY-MM)
	Monthly []MonthlyBalanceDTO `json:"monthly"`

	Trend         string          `json:"trend"`          // últimos 6 meses
	MovingAverage decimal.Decimal `json:"moving_average"` // saldo medio de los últimos 3 meses
	Projection    decimal.Decimal `json:"projection"`     // MovingAverage * 1.05

	Notifications []NotificationDTO `json:"notifications"`
}

// MonthlyBalanceDTO créditos y débitos de un mes.
type MonthlyBalanceDTO struct {
	Month   string          `json:"month"`
	Credit  decimal.Decimal `json:"credit"`
	Debit   decimal.Decimal `json:"debit"`
	Balance decimal.Decimal `json:"balance"`
}

// NotificationDTO alerta sobre un producto (vencimiento o stock).
type NotificationDTO struct {
	Type         string          `json:"type"`
	ProductCode  string          `json:"product_code"`
	ProductName  string          `json:"product_name"`
	Message      string          `json:"message"`
	DaysToExpiry int             `json:"days_to_expiry,omitempty"`
	RemainingQty decimal.Decimal `json:"remaining_qty"`
}

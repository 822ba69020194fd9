package entity

import "github.com/shopspring/decimal"

// Categorías de transacción financiera.
const (
	CategoryCredit = "Crédito"
	CategoryDebit  = "Débito"
)

// Transaction representa un lanzamiento financiero (crédito o débito) de una tienda.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"data"` // YYYY-MM-DD
	Store       string          `json:"loja"`
	Category    string          `json:"categoria"`
	Note        string          `json:"observacao"`
	Description string          `json:"descricao"` // tomada de los cadastros
	Quantity    decimal.Decimal `json:"quantidade"`
	Value       decimal.Decimal `json:"valor"`
}

// IsValidCategory indica si la categoría es Crédito o Débito.
func IsValidCategory(c string) bool {
	return c == CategoryCredit || c == CategoryDebit
}

package entity

import "github.com/shopspring/decimal"

// Cantidades y montos viajan como números JSON en registros, backups y respuestas HTTP,
// igual que en los backups de la aplicación web.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

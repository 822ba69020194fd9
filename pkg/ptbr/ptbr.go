// Package ptbr agrupa el formato y la ordenación de textos en portugués de Brasil.
package ptbr

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tag idioma usado por la aplicación.
var Tag = language.BrazilianPortuguese

// NewCollator ordena respetando acentos e ignorando mayúsculas.
// collate.Collator no es seguro para uso concurrente: crear uno por ordenación.
func NewCollator() *collate.Collator {
	return collate.New(Tag, collate.IgnoreCase)
}

// Money formatea un valor como moneda brasileña, ej: R$ 1.234,56.
func Money(v decimal.Decimal) string {
	p := message.NewPrinter(Tag)
	return p.Sprintf("R$ %.2f", v.Round(2).InexactFloat64())
}

// Number formatea una cantidad con separadores locales y hasta dos decimales.
func Number(v decimal.Decimal) string {
	p := message.NewPrinter(Tag)
	if v.Equal(v.Truncate(0)) {
		return p.Sprintf("%d", v.IntPart())
	}
	return p.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// Date convierte YYYY-MM-DD a DD/MM/YYYY; devuelve el texto original si no tiene ese formato.
func Date(iso string) string {
	if len(iso) != 10 || iso[4] != '-' || iso[7] != '-' {
		return iso
	}
	return iso[8:10] + "/" + iso[5:7] + "/" + iso[0:4]
}

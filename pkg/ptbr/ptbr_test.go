package ptbr_test

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestfinance-api/pkg/ptbr"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", ptbr.Money(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "R$ 0,50", ptbr.Money(decimal.RequireFromString("0.5")))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "12", ptbr.Number(decimal.NewFromInt(12)))
	assert.Equal(t, "2,50", ptbr.Number(decimal.RequireFromString("2.5")))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "02/04/2024", ptbr.Date("2024-04-02"))
	assert.Equal(t, "abril", ptbr.Date("abril"))
}

func TestCollator_OrdenaConAcentos(t *testing.T) {
	words := []string{"Banco", "Água", "abacaxi", "Cartão"}
	col := ptbr.NewCollator()
	slices.SortFunc(words, col.CompareString)
	assert.Equal(t, []string{"abacaxi", "Água", "Banco", "Cartão"}, words)
}

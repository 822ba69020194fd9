package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/pdf"
)

func TestGenerateCashFlowPDF_GeneraDocumento(t *testing.T) {
	report := &dto.CashFlowReportDTO{
		Filter:     dto.CashFlowFilter{From: "2024-01-01", To: "2024-01-31"},
		StoreLabel: "Todas as Lojas",
		Credits: []dto.CashFlowGroupDTO{
			{Description: "Poupança", Total: decimal.RequireFromString("1500.25"), Count: 3},
		},
		Debits:      []dto.CashFlowGroupDTO{},
		CreditTotal: decimal.RequireFromString("1500.25"),
		DebitTotal:  decimal.Zero,
		Balance:     decimal.RequireFromString("1500.25"),
		GeneratedAt: "2024-02-01T10:00:00Z",
	}

	b, err := pdf.NewMarotoPDFGenerator("gestfinance").
		WithMargins(pdf.Margins{Top: 10, Bottom: 10, Left: 15, Right: 15}).
		GenerateCashFlowPDF(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

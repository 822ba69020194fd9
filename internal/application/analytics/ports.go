package analytics

import (
	"context"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
)

// CashFlowPDFGenerator puerto para renderizar el reporte de flujo de caja en PDF.
type CashFlowPDFGenerator interface {
	GenerateCashFlowPDF(ctx context.Context, report *dto.CashFlowReportDTO) ([]byte, error)
}

package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestfinance-api/internal/application/analytics"
	"github.com/jhoicas/gestfinance-api/internal/application/dto"
)

// ReportHandler maneja el reporte de fluxo de caixa y la vitrine.
type ReportHandler struct {
	reports  *appanalytics.ReportUseCase
	showcase *appanalytics.ShowcaseUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *appanalytics.ReportUseCase, showcase *appanalytics.ShowcaseUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, showcase: showcase}
}

// CashFlow godoc
// @Summary      Reporte de fluxo de caixa
// @Description  Agrupa por descripción los créditos y débitos del período.
// @Tags         reports
// @Produce      json
// @Param        from      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        category  query  string  false  "Crédito | Débito | Crédito/Débito"
// @Param        store     query  string  false  "Loja o todas"
// @Success      200  {object}  dto.CashFlowReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/cash-flow [get]
func (h *ReportHandler) CashFlow(c *fiber.Ctx) error {
	var f dto.CashFlowFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	report, err := h.reports.CashFlow(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// CashFlowPDF godoc
// @Summary      Reporte de fluxo de caixa en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        from      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        category  query  string  false  "Crédito | Débito | Crédito/Débito"
// @Param        store     query  string  false  "Loja o todas"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/cash-flow/pdf [get]
func (h *ReportHandler) CashFlowPDF(c *fiber.Ctx) error {
	var f dto.CashFlowFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	b, err := h.reports.CashFlowPDF(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="fluxo-de-caixa-%s.pdf"`, time.Now().Format("2006-01-02")))
	return c.Send(b)
}

// Showcase godoc
// @Summary      Vitrine de productos
// @Tags         reports
// @Produce      json
// @Param        title     query  string  false  "Título"
// @Param        name      query  string  false  "Nombre (subcadena)"
// @Param        brand     query  string  false  "Marca"
// @Param        category  query  string  false  "Categoría"
// @Param        status    query  string  false  "Em Estoque | Fora de Estoque"
// @Success      200  {object}  dto.ShowcaseDTO
// @Router       /api/showcase [get]
func (h *ReportHandler) Showcase(c *fiber.Ctx) error {
	var f dto.ShowcaseFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	out, err := h.showcase.Get(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

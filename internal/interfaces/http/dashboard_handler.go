package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestfinance-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve totales, serie mensual, tendencia, projeção y notificaciones.
// GET /api/dashboard/summary?store=
//
// store vacío o "todas" resume todas las lojas.
//
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Param        store  query  string  false  "Loja"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), c.Query("store"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

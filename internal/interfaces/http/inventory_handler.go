package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de salida.
type InventoryHandler struct {
	uc *inventory.OutboundUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.OutboundUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterOutbound godoc
// @Summary      Registrar salida de producto
// @Description  Descuenta el stock, guarda el movimiento y genera la transacción de Débito en una sola transacción.
// @Tags         outbound-movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterOutboundRequest  true  "date, origin, destination, product_code, quantity"
// @Success      201   {object}  dto.OutboundResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/outbound-movements [post]
func (h *InventoryHandler) RegisterOutbound(c *fiber.Ctx) error {
	var in dto.RegisterOutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RegisterFromRequest(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento de salida
// @Tags         outbound-movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.OutboundMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outbound-movements/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetMovement(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos de salida
// @Tags         outbound-movements
// @Produce      json
// @Param        product_code  query  string  false  "Código (subcadena)"
// @Param        product_name  query  string  false  "Nombre (subcadena)"
// @Param        date          query  string  false  "Fecha exacta (YYYY-MM-DD)"
// @Success      200  {object}  dto.OutboundListResponse
// @Router       /api/outbound-movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var f dto.OutboundFilter
	if err := c.QueryParser(&f); err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.ListMovements(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar movimiento de salida
// @Description  Solo fecha y locales; el stock no se reajusta.
// @Tags         outbound-movements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.UpdateOutboundRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OutboundMovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/outbound-movements/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateMovement(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento de salida
// @Tags         outbound-movements
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outbound-movements/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteMovement(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

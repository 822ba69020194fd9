package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/application/usecase"
)

// RegistryHandler expone los cadastros (lojas, descricoes, categoriasProdutos, marcas).
type RegistryHandler struct {
	uc *usecase.RegistryUseCase
}

// NewRegistryHandler construye el handler.
func NewRegistryHandler(uc *usecase.RegistryUseCase) *RegistryHandler {
	return &RegistryHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener cadastros
// @Tags         registry
// @Produce      json
// @Success      200  {object}  dto.RegistryResponse
// @Router       /api/registry [get]
func (h *RegistryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReplaceList godoc
// @Summary      Reemplazar una lista de cadastros
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        list  path  string  true  "lojas | descricoes | categoriasProdutos | marcas"
// @Param        body  body  dto.ReplaceRegistryListRequest  true  "Valores"
// @Success      200   {object}  dto.RegistryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registry/{list} [put]
func (h *RegistryHandler) ReplaceList(c *fiber.Ctx) error {
	var in dto.ReplaceRegistryListRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ReplaceList(c.UserContext(), c.Params("list"), in.Values)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddValue godoc
// @Summary      Agregar un valor a una lista
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        list  path  string  true  "lojas | descricoes | categoriasProdutos | marcas"
// @Param        body  body  dto.RegistryValueRequest  true  "Valor"
// @Success      200   {object}  dto.RegistryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registry/{list} [post]
func (h *RegistryHandler) AddValue(c *fiber.Ctx) error {
	var in dto.RegistryValueRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddValue(c.UserContext(), c.Params("list"), in.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveValue godoc
// @Summary      Quitar un valor de una lista
// @Tags         registry
// @Produce      json
// @Param        list   path  string  true  "lojas | descricoes | categoriasProdutos | marcas"
// @Param        value  path  string  true  "Valor (url-encoded)"
// @Success      200    {object}  dto.RegistryResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/registry/{list}/{value} [delete]
func (h *RegistryHandler) RemoveValue(c *fiber.Ctx) error {
	value, err := url.PathUnescape(c.Params("value"))
	if err != nil {
		return invalidParams(c)
	}
	out, err := h.uc.RemoveValue(c.UserContext(), c.Params("list"), value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

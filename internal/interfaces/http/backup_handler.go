package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestfinance-api/internal/application/backup"
	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/infrastructure/backupfile"
)

// BackupHandler exporta e importa el contenido completo del almacén.
type BackupHandler struct {
	svc *backup.Service
}

// NewBackupHandler construye el handler.
func NewBackupHandler(svc *backup.Service) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Export godoc
// @Summary      Descargar backup
// @Tags         backup
// @Produce      json
// @Success      200  {file}    file
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, err := h.svc.Export(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := backup.Encode(&buf, data); err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, backupfile.FileName(time.Now())))
	return c.Send(buf.Bytes())
}

// Import godoc
// @Summary      Restaurar backup
// @Description  Reemplaza todo el contenido del almacén. Un documento sin transacoes, produtos, saidasProdutos o cadastros se rechaza sin cambios.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.ImportBackupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	data, err := backup.Decode(bytes.NewReader(c.Body()))
	if err != nil {
		return respondError(c, err)
	}
	sum, err := h.svc.Import(c.UserContext(), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ImportBackupResponse{
		Transactions: sum.Transactions,
		Products:     sum.Products,
		Movements:    sum.Movements,
		BackupDate:   sum.BackupDate,
	})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/document"
	"github.com/jhoicas/Cotizador-api/internal/application/quoting"
)

// HistoryHandler historial de cotizaciones generadas.
type HistoryHandler struct {
	uc   *quoting.HistoryUseCase
	docs *document.UseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *quoting.HistoryUseCase, docs *document.UseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc, docs: docs}
}

// List godoc
// @Summary      Historial (más reciente primero, máx. 10)
// @Tags         history
// @Produce      json
// @Success      200  {object}  dto.HistoryListResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Get godoc
// @Summary      Cargar un registro: snapshot y borrador restaurado
// @Tags         history
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.HistoryRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/history/{id} [get]
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Quitar un registro del historial
// @Tags         history
// @Param        id   path  string  true  "ID del registro"
// @Success      204
// @Router       /api/history/{id} [delete]
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF documento imprimible del registro.
// GET /api/history/:id/pdf
func (h *HistoryHandler) PDF(c *fiber.Ctx) error {
	f, err := h.docs.PDFByRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, f)
}

// XLSX hoja de cálculo del registro.
// GET /api/history/:id/xlsx
func (h *HistoryHandler) XLSX(c *fiber.Ctx) error {
	f, err := h.docs.SheetByRecord(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, f)
}

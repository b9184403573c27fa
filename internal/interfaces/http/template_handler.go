package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/quoting"
)

// TemplateHandler catálogo fijo y servicios recientes.
type TemplateHandler struct {
	uc *quoting.HistoryUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *quoting.HistoryUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List godoc
// @Summary      Plantillas de servicio incluidas
// @Tags         templates
// @Produce      json
// @Success      200  {object}  dto.TemplateListResponse
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Templates())
}

// Recent godoc
// @Summary      Servicios usados recientemente (máx. 10)
// @Tags         templates
// @Produce      json
// @Success      200  {object}  dto.TemplateListResponse
// @Router       /api/templates/recent [get]
func (h *TemplateHandler) Recent(c *fiber.Ctx) error {
	return c.JSON(h.uc.RecentTemplates())
}

// RemoveRecent godoc
// @Summary      Quitar un servicio reciente por nombre
// @Tags         templates
// @Param        name  path  string  true  "Nombre del servicio"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/templates/recent/{name} [delete]
func (h *TemplateHandler) RemoveRecent(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	if err := h.uc.RemoveRecent(c.UserContext(), name); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

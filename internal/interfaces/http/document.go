package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
)

// sendDocument responde el archivo como descarga. El nombre puede llevar Hangul,
// por eso va también en filename* (RFC 5987).
func sendDocument(c *fiber.Ctx, f *dto.DocumentFile) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="quote"; filename*=UTF-8''%s`, url.PathEscape(f.Filename)))
	return c.Send(f.Content)
}

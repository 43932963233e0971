package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omsayari/sayari-api/internal/application/auth"
	"github.com/omsayari/sayari-api/internal/application/dto"
)

// HeaderAdminPassword header con el secreto compartido de administración.
const HeaderAdminPassword = "x-admin-password"

// AdminMiddleware exige el secreto de administración en las rutas de mutación.
// Si la credencial no verifica, responde 401 sin tocar el store.
func AdminMiddleware(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !verifier.Verify(c.Get(HeaderAdminPassword)) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "contraseña incorrecta",
			})
		}
		return c.Next()
	}
}

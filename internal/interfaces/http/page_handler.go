package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omsayari/sayari-api/internal/application/usecase"
	"github.com/omsayari/sayari-api/internal/domain/entity"
)

// PageHandler renderiza la página inicial del lado del servidor.
// Solo lectura; las mutaciones pasan por la API.
type PageHandler struct {
	uc       *usecase.ItemUseCase
	appTitle string
}

// NewPageHandler construye el handler.
func NewPageHandler(uc *usecase.ItemUseCase, appTitle string) *PageHandler {
	return &PageHandler{uc: uc, appTitle: appTitle}
}

// Index renderiza la lista completa de items, más recientes primero.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.Render("index", fiber.Map{
		"Title":      h.appTitle,
		"Items":      items,
		"Categories": entity.Categories(),
	})
}

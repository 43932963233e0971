package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/omsayari/sayari-api/internal/application/auth"
	"github.com/omsayari/sayari-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC   *usecase.ItemUseCase
	ExportUC *usecase.ExportUseCase
	PDF      ExportPDFGenerator
	Verifier auth.Verifier
	AppTitle string
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	pageHandler := NewPageHandler(deps.ItemUC, deps.AppTitle)
	app.Get("/", pageHandler.Index)

	api := app.Group("/api")
	admin := AdminMiddleware(deps.Verifier)

	// Items. POST queda sin el check de contraseña mientras PUT/DELETE sí lo
	// exigen, igual que el sistema original.
	// TODO: decidir si la creación también debe exigir x-admin-password.
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.ListAll)
	items.Post("/", itemHandler.Create)
	items.Get("/:category", itemHandler.ListByCategory)
	items.Put("/:id", admin, itemHandler.Update)
	items.Delete("/:id", admin, itemHandler.Delete)

	// Export (público, solo lectura)
	export := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC, deps.PDF)
	export.Get("/:category", exportHandler.Text)
	export.Get("/:category/pdf", exportHandler.PDF)
}

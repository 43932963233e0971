package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/omsayari/sayari-api/internal/application/dto"
	"github.com/omsayari/sayari-api/internal/application/usecase"
)

// ExportPDFGenerator renderiza un reporte como PDF.
type ExportPDFGenerator interface {
	Generate(report *usecase.ExportReport) ([]byte, error)
}

// ExportHandler sirve el reporte de una categoría como descarga.
type ExportHandler struct {
	uc  *usecase.ExportUseCase
	pdf ExportPDFGenerator
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase, pdf ExportPDFGenerator) *ExportHandler {
	return &ExportHandler{uc: uc, pdf: pdf}
}

// Text godoc
// @Summary      Exportar categoría como texto plano
// @Tags         export
// @Produce      plain
// @Param        category  path  string  true  "Categoría (flirting, sayari, mix)"
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/{category} [get]
func (h *ExportHandler) Text(c *fiber.Ctx) error {
	report, err := h.buildReport(c)
	if err != nil || report == nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.txt"`, report.Filename))
	return c.SendString(report.Text())
}

// PDF godoc
// @Summary      Exportar categoría como PDF
// @Tags         export
// @Produce      application/pdf
// @Param        category  path  string  true  "Categoría (flirting, sayari, mix)"
// @Success      200  {string}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export/{category}/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	report, err := h.buildReport(c)
	if err != nil || report == nil {
		return err
	}
	doc, err := h.pdf.Generate(report)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, report.Filename))
	return c.Send(doc)
}

// buildReport arma el reporte; si falla, escribe la respuesta de error y
// devuelve report nil.
func (h *ExportHandler) buildReport(c *fiber.Ctx) (*usecase.ExportReport, error) {
	report, err := h.uc.Build(c.Context(), c.Params("category"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCategory) {
			return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CATEGORY", Message: err.Error()})
		}
		return nil, internalError(c, err)
	}
	return report, nil
}

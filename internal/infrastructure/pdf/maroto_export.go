// Package pdf genera la versión PDF del reporte de exportación de una categoría.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Título del reporte                  │
//	│  Export Date / Total Items                   │
//	│  ───────────────────────────────────────────│
//	│  1. contenido del item                       │
//	│  2. contenido del item                       │
//	│  ...                                         │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/omsayari/sayari-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 124, Green: 58, Blue: 237}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoExportGenerator renderiza un ExportReport como PDF usando Maroto v2.
type MarotoExportGenerator struct{}

// NewMarotoExportGenerator construye el generador.
func NewMarotoExportGenerator() *MarotoExportGenerator { return &MarotoExportGenerator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoExportGenerator) Generate(report *usecase.ExportReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(report)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, r := range itemRows(report) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRows: título + metadatos del reporte.
func headerRows(report *usecase.ExportReport) []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New(report.Title, props.Text{
					Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
				}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(
				text.New("Export Date: "+report.ExportedAt.Format("02/01/2006 15:04:05"), props.Text{
					Size: 9, Color: colorGray,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Total Items: %d", len(report.Items)), props.Text{
					Size: 9, Color: colorGray,
				}),
			),
		),
	}
}

// itemRows: una fila numerada por item, en el mismo orden del reporte.
func itemRows(report *usecase.ExportReport) []core.Row {
	rows := make([]core.Row, 0, len(report.Items))
	for i, content := range report.Items {
		rows = append(rows, row.New(8).Add(
			col.New(1).Add(
				text.New(fmt.Sprintf("%d.", i+1), props.Text{
					Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
				}),
			),
			col.New(11).Add(
				text.New(content, props.Text{Size: 10, Top: 1}),
			),
		))
	}
	return rows
}

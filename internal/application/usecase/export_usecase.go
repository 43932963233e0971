package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/omsayari/sayari-api/internal/domain/entity"
	"github.com/omsayari/sayari-api/internal/domain/repository"
)

// ExportReport datos ya formateados de una exportación de categoría.
type ExportReport struct {
	Title      string    // ej. "Om The Flirter - Flirting"
	ExportedAt time.Time
	Items      []string  // contenidos en orden más reciente primero
	Filename   string    // <categoría>-<epochMillis> sin extensión
}

// ExportUseCase genera el reporte de texto de una categoría.
type ExportUseCase struct {
	repo     repository.ItemRepository
	appTitle string
}

// NewExportUseCase construye el caso de uso. appTitle encabeza el reporte.
func NewExportUseCase(repo repository.ItemRepository, appTitle string) *ExportUseCase {
	return &ExportUseCase{repo: repo, appTitle: appTitle}
}

// Build arma el reporte de una categoría. Categoría inválida -> ErrInvalidCategory.
func (uc *ExportUseCase) Build(ctx context.Context, category string) (*ExportReport, error) {
	cat := entity.Category(category)
	if !cat.IsValid() {
		return nil, ErrInvalidCategory
	}
	list, err := uc.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	contents := make([]string, 0, len(list))
	for _, item := range list {
		contents = append(contents, item.Content)
	}
	// cases.Caser es stateful: una instancia por llamada.
	titler := cases.Title(language.English)
	return &ExportReport{
		Title:      fmt.Sprintf("%s - %s", uc.appTitle, titler.String(category)),
		ExportedAt: now,
		Items:      contents,
		Filename:   fmt.Sprintf("%s-%d", category, now.UnixMilli()),
	}, nil
}

// Text renderiza el reporte como texto plano: título, fecha, total,
// regla de 50 '=' y lista numerada con línea en blanco entre entradas.
func (r *ExportReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Title)
	fmt.Fprintf(&b, "Export Date: %s\n", r.ExportedAt.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "Total Items: %d\n", len(r.Items))
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")
	for i, content := range r.Items {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, content)
	}
	return b.String()
}

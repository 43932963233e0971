package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/omsayari/sayari-api/internal/application/dto"
	"github.com/omsayari/sayari-api/internal/domain/entity"
)

func itemsN(n int) []dto.ItemResponse {
	base := time.Now()
	out := make([]dto.ItemResponse, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, dto.ItemResponse{
			ID:        fmt.Sprintf("id-%d", i),
			Content:   fmt.Sprintf("contenido %d", i),
			Category:  "flirting",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestState_BusquedaCaseInsensitiveSubstring(t *testing.T) {
	s := NewState(entity.CategoryFlirting).WithItems([]dto.ItemResponse{
		{ID: "a", Content: "say hello world"},
		{ID: "b", Content: "otra cosa"},
	})

	s = s.WithSearch("Hello")
	got := s.Filtered()
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("la query 'Hello' debe matchear 'say hello world', got=%v", got)
	}

	s = s.WithSearch("")
	if len(s.Filtered()) != 2 {
		t.Fatalf("query vacía debe devolver la lista completa")
	}
}

func TestState_BusquedaRecortaYBajaAMinusculas(t *testing.T) {
	s := NewState(entity.CategoryMix).WithSearch("  HOLA  ")
	if s.SearchQuery != "hola" {
		t.Fatalf("query esperada 'hola', got=%q", s.SearchQuery)
	}
	if s.Page != 1 {
		t.Fatalf("la búsqueda debe volver a la página 1")
	}
}

func TestState_Paginacion25Items(t *testing.T) {
	s := NewState(entity.CategoryFlirting).WithItems(itemsN(25))

	if got := len(s.Displayed()); got != 10 {
		t.Fatalf("primer render: esperados 10 visibles, got=%d", got)
	}
	if !s.HasMore() || s.Remaining() != 15 {
		t.Fatalf("deben quedar 15 restantes, got=%d", s.Remaining())
	}

	s = s.LoadMore()
	if got := len(s.Displayed()); got != 20 {
		t.Fatalf("segunda página: esperados 20 visibles, got=%d", got)
	}

	s = s.LoadMore()
	if got := len(s.Displayed()); got != 25 {
		t.Fatalf("tercera página: esperados 25 visibles, got=%d", got)
	}
	if s.HasMore() {
		t.Fatalf("con todo visible no debe ofrecer 'load more'")
	}

	// Sin restantes, LoadMore es un no-op.
	if s.LoadMore().Page != s.Page {
		t.Fatalf("LoadMore sin restantes no debe avanzar la página")
	}
}

func TestState_PaginacionSobreListaFiltrada(t *testing.T) {
	items := itemsN(30)
	for i := 0; i < 12; i++ {
		items[i].Content = fmt.Sprintf("especial %d", i)
	}
	s := NewState(entity.CategoryFlirting).WithItems(items).WithSearch("especial")

	if got := len(s.Filtered()); got != 12 {
		t.Fatalf("esperados 12 filtrados, got=%d", got)
	}
	if got := len(s.Displayed()); got != 10 {
		t.Fatalf("ventana inicial sobre filtrados debe ser 10, got=%d", got)
	}
	if s.Remaining() != 2 {
		t.Fatalf("esperados 2 restantes, got=%d", s.Remaining())
	}
}

func TestState_WithItemsVuelveAPagina1ConservandoBusqueda(t *testing.T) {
	s := NewState(entity.CategoryFlirting).WithItems(itemsN(25))
	s = s.WithSearch("contenido")
	s = s.LoadMore()
	if s.Page != 2 {
		t.Fatalf("precondición: página 2, got=%d", s.Page)
	}

	// Recarga tras una mutación: página 1, la búsqueda sigue activa.
	s = s.WithItems(itemsN(25))
	if s.Page != 1 {
		t.Fatalf("la recarga debe volver a la página 1, got=%d", s.Page)
	}
	if s.SearchQuery != "contenido" {
		t.Fatalf("la recarga no debe limpiar la búsqueda, got=%q", s.SearchQuery)
	}
}

func TestState_SwitchCategoryLimpiaTodo(t *testing.T) {
	s := NewState(entity.CategoryFlirting).WithItems(itemsN(25)).WithSearch("algo")
	s = s.LoadMore()

	s = s.SwitchCategory(entity.CategorySayari)
	if s.Category != entity.CategorySayari {
		t.Fatalf("categoría esperada sayari, got=%s", s.Category)
	}
	if s.SearchQuery != "" || s.Page != 1 || len(s.Items) != 0 {
		t.Fatalf("el cambio de categoría debe limpiar búsqueda, página e items: %+v", s)
	}
}

func TestState_FindItemIdViejo(t *testing.T) {
	s := NewState(entity.CategoryMix).WithItems(itemsN(3))

	if _, ok := s.FindItem("id-1"); !ok {
		t.Fatalf("id cargado debe encontrarse")
	}
	if _, ok := s.FindItem("id-inexistente"); ok {
		t.Fatalf("id viejo no debe encontrarse")
	}
}

// Package tui implementa el cliente de terminal: un espejo en memoria de los
// items de la categoría activa, con búsqueda y paginación aplicadas antes de
// renderizar. El estado es un valor explícito y las transiciones son funciones
// puras, de modo que controlador y vista se prueban sin terminal.
package tui

import (
	"strings"

	"github.com/omsayari/sayari-api/internal/application/dto"
	"github.com/omsayari/sayari-api/internal/domain/entity"
)

// PageSize cantidad de items revelados por cada "load more".
const PageSize = 10

// State estado autoritativo del cliente: categoría activa, lista traída del
// servidor, query de búsqueda y página actual. Todo lo derivado (filtrado,
// visible, restante) se recalcula de estos cuatro campos.
type State struct {
	Category    entity.Category
	Items       []dto.ItemResponse
	SearchQuery string
	Page        int
}

// NewState estado inicial sobre una categoría, sin items cargados aún.
func NewState(category entity.Category) State {
	return State{Category: category, Page: 1}
}

// WithItems reemplaza la lista tras un fetch y vuelve a la página 1.
// La query de búsqueda activa se conserva y se reaplica al derivar.
func (s State) WithItems(items []dto.ItemResponse) State {
	s.Items = items
	s.Page = 1
	return s
}

// WithSearch fija la query (minúsculas, recortada) y vuelve a la página 1.
func (s State) WithSearch(query string) State {
	s.SearchQuery = strings.ToLower(strings.TrimSpace(query))
	s.Page = 1
	return s
}

// SwitchCategory cambia de categoría: limpia la búsqueda y vuelve a la página 1.
// La lista queda vacía hasta que llegue el fetch de la categoría nueva.
func (s State) SwitchCategory(category entity.Category) State {
	s.Category = category
	s.Items = nil
	s.SearchQuery = ""
	s.Page = 1
	return s
}

// LoadMore avanza una página si queda algo por revelar. No dispara red:
// solo amplía la ventana sobre la lista ya filtrada.
func (s State) LoadMore() State {
	if s.HasMore() {
		s.Page++
	}
	return s
}

// Filtered subsecuencia de Items cuyo contenido contiene la query
// (case-insensitive). Query vacía devuelve la lista completa.
func (s State) Filtered() []dto.ItemResponse {
	if s.SearchQuery == "" {
		return s.Items
	}
	var out []dto.ItemResponse
	for _, item := range s.Items {
		if strings.Contains(strings.ToLower(item.Content), s.SearchQuery) {
			out = append(out, item)
		}
	}
	return out
}

// Displayed prefijo de Filtered limitado por la página actual:
// min(Page*PageSize, len(Filtered)).
func (s State) Displayed() []dto.ItemResponse {
	filtered := s.Filtered()
	limit := s.Page * PageSize
	if limit > len(filtered) {
		limit = len(filtered)
	}
	return filtered[:limit]
}

// HasMore indica si quedan items filtrados fuera de la ventana actual.
func (s State) HasMore() bool {
	return len(s.Displayed()) < len(s.Filtered())
}

// Remaining cuántos items filtrados faltan por revelar.
func (s State) Remaining() int {
	return len(s.Filtered()) - len(s.Displayed())
}

// FindItem busca un item por id en la lista ya cargada (sin fetch extra).
// Si el id no está (estado viejo), ok es false y el llamador descarta la acción.
func (s State) FindItem(id string) (dto.ItemResponse, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return dto.ItemResponse{}, false
}

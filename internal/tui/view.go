package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/omsayari/sayari-api/internal/domain/entity"
)

// renderList función pura de State a la lista renderizada: estados vacíos,
// tarjetas de items, línea de resumen y control de "load more". selected es el
// índice del cursor dentro de Displayed.
func renderList(s State, selected int) string {
	filtered := s.Filtered()
	if len(filtered) == 0 {
		if s.SearchQuery != "" {
			return mutedStyle.Render("Sin resultados para la búsqueda.\nProbá otro término o limpiá la búsqueda para ver todo.")
		}
		return mutedStyle.Render("Todavía no hay items.\nPresioná 'a' para crear el primero.")
	}

	displayed := s.Displayed()
	var b strings.Builder

	b.WriteString(renderSummary(s))
	b.WriteString("\n")

	for i, item := range displayed {
		style := cardStyle
		if i == selected {
			style = cardSelectedStyle
		}
		b.WriteString(style.Render(item.Content))
		b.WriteString("\n")
	}

	if s.HasMore() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("m: cargar más (%d restantes)", s.Remaining())))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummary línea "Showing N of M items"; con búsqueda activa agrega el
// total de la categoría.
func renderSummary(s State) string {
	displayed, filtered := len(s.Displayed()), len(s.Filtered())
	if s.SearchQuery != "" {
		return mutedStyle.Render(fmt.Sprintf(
			"Showing %d of %d items (Total: %d)", displayed, filtered, len(s.Items)))
	}
	return mutedStyle.Render(fmt.Sprintf("Showing %d of %d items", displayed, filtered))
}

// renderTabs barra de categorías con la activa resaltada.
func renderTabs(active entity.Category) string {
	parts := make([]string, 0, 3)
	for _, cat := range entity.Categories() {
		style := tabStyle
		if cat == active {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(cat.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderFormModal modal de alta/edición alrededor del textinput ya renderizado.
func renderFormModal(title, inputView string) string {
	content := strings.Join([]string{
		titleStyle.Render(title),
		"",
		inputView,
		"",
		helpStyle.Render("enter: guardar   esc: cancelar"),
	}, "\n")
	return modalStyle.Render(content)
}

// renderConfirmModal modal de confirmación de borrado.
func renderConfirmModal(content string, confirmFocused bool) string {
	confirm := "[ Eliminar ]"
	cancel := "[ Cancelar ]"
	if confirmFocused {
		confirm = dangerStyle.Bold(true).Render(confirm)
		cancel = mutedStyle.Render(cancel)
	} else {
		confirm = mutedStyle.Render(confirm)
		cancel = lipgloss.NewStyle().Bold(true).Render(cancel)
	}

	preview := content
	if len(preview) > 60 {
		preview = preview[:57] + "..."
	}

	body := strings.Join([]string{
		titleStyle.Render("¿Eliminar este item?"),
		"",
		preview,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel),
		"",
		helpStyle.Render("tab: foco   enter: confirmar   esc: cancelar"),
	}, "\n")
	return modalStyle.Render(body)
}

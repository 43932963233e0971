package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/omsayari/sayari-api/internal/application/dto"
	"github.com/omsayari/sayari-api/internal/domain/entity"
)

// mode en qué superficie está el foco del teclado.
type mode int

const (
	modeBrowse  mode = iota // lista: navegación y atajos
	modeSearch              // input de búsqueda enfocado
	modeForm                // modal de alta/edición
	modeConfirm             // modal de confirmación de borrado
)

// Mensajes de resultado de las llamadas a la API.
type itemsMsg struct {
	items []dto.ItemResponse
	err   error
}

type mutationMsg struct {
	err error
}

type exportMsg struct {
	path string
	err  error
}

// Model modelo Bubble Tea del cliente. Las transiciones de datos delegan en
// las funciones puras de State; acá solo vive el cableado de teclado y red.
type Model struct {
	client *Client
	state  State

	mode   mode
	cursor int // índice dentro de Displayed

	searchInput textinput.Model
	formInput   textinput.Model
	editingID   string // vacío => alta
	deleteID    string
	deleteText  string
	confirmDel  bool // foco en el botón Eliminar

	loading bool
	status  string
}

// NewModel construye el modelo inicial sobre una categoría.
func NewModel(client *Client, category entity.Category) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "buscar..."
	search.CharLimit = 100

	form := textinput.New()
	form.Prompt = "> "
	form.Placeholder = "Contenido del item..."
	form.CharLimit = 500

	return Model{
		client:      client,
		state:       NewState(category),
		searchInput: search,
		formInput:   form,
		loading:     true,
	}
}

// Init dispara la carga inicial de la categoría activa.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadItems())
}

// loadItems trae la lista fresca de la categoría activa.
func (m Model) loadItems() tea.Cmd {
	client, cat := m.client, m.state.Category
	return func() tea.Msg {
		items, err := client.ListByCategory(context.Background(), cat)
		return itemsMsg{items: items, err: err}
	}
}

func (m Model) createItem(content string) tea.Cmd {
	client, cat := m.client, m.state.Category
	return func() tea.Msg {
		_, err := client.Create(context.Background(), content, cat)
		return mutationMsg{err: err}
	}
}

func (m Model) updateItem(id, content string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.Update(context.Background(), id, content)
		return mutationMsg{err: err}
	}
}

func (m Model) deleteItem(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return mutationMsg{err: client.Delete(context.Background(), id)}
	}
}

// exportCategory descarga el reporte de texto y lo guarda en el directorio actual.
func (m Model) exportCategory() tea.Cmd {
	client, cat := m.client, m.state.Category
	return func() tea.Msg {
		text, err := client.ExportText(context.Background(), cat)
		if err != nil {
			return exportMsg{err: err}
		}
		path := fmt.Sprintf("%s-%d.txt", cat, time.Now().UnixMilli())
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return exportMsg{err: err}
		}
		return exportMsg{path: path}
	}
}

// Update procesa mensajes de teclado y de red.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = dangerStyle.Render("Error cargando items: " + msg.err.Error())
			return m, nil
		}
		m.state = m.state.WithItems(msg.items)
		m.clampCursor()
		return m, nil

	case mutationMsg:
		m.loading = false
		if msg.err != nil {
			// El modal queda abierto y el estado local intacto.
			m.status = dangerStyle.Render("Error guardando: " + msg.err.Error())
			return m, nil
		}
		m.mode = modeBrowse
		m.editingID = ""
		m.deleteID = ""
		m.status = ""
		m.loading = true
		return m, m.loadItems()

	case exportMsg:
		if msg.err != nil {
			m.status = dangerStyle.Render("Error exportando: " + msg.err.Error())
		} else {
			m.status = okStyle.Render("Exportado a " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "2", "3":
		cats := entity.Categories()
		return m.switchCategory(cats[int(msg.String()[0]-'1')])

	case "tab":
		cats := entity.Categories()
		for i, cat := range cats {
			if cat == m.state.Category {
				return m.switchCategory(cats[(i+1)%len(cats)])
			}
		}
		return m, nil

	case "/":
		m.mode = modeSearch
		m.searchInput.SetValue(m.state.SearchQuery)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "a":
		m.mode = modeForm
		m.editingID = ""
		m.formInput.SetValue("")
		m.formInput.Focus()
		return m, textinput.Blink

	case "e":
		displayed := m.state.Displayed()
		if m.cursor >= len(displayed) {
			return m, nil
		}
		// Prellenar desde la lista ya cargada; id viejo se descarta en silencio.
		item, ok := m.state.FindItem(displayed[m.cursor].ID)
		if !ok {
			return m, nil
		}
		m.mode = modeForm
		m.editingID = item.ID
		m.formInput.SetValue(item.Content)
		m.formInput.Focus()
		return m, textinput.Blink

	case "d":
		displayed := m.state.Displayed()
		if m.cursor >= len(displayed) {
			return m, nil
		}
		m.mode = modeConfirm
		m.deleteID = displayed[m.cursor].ID
		m.deleteText = displayed[m.cursor].Content
		m.confirmDel = false
		return m, nil

	case "m":
		m.state = m.state.LoadMore()
		return m, nil

	case "x":
		m.status = mutedStyle.Render("Exportando...")
		return m, m.exportCategory()

	case "r":
		m.loading = true
		return m, m.loadItems()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.state.Displayed())-1 {
			m.cursor++
		}
		return m, nil

	case "esc":
		if m.state.SearchQuery != "" {
			m.state = m.state.WithSearch("")
			m.searchInput.SetValue("")
			m.clampCursor()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Esc limpia la búsqueda, como el botón de clear del original.
		m.mode = modeBrowse
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.state = m.state.WithSearch("")
		m.clampCursor()
		return m, nil
	case "enter":
		m.mode = modeBrowse
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.state = m.state.WithSearch(m.searchInput.Value())
	m.clampCursor()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.editingID = ""
		m.formInput.Blur()
		return m, nil
	case "enter":
		content := strings.TrimSpace(m.formInput.Value())
		if content == "" {
			// Contenido vacío no se envía; el modal sigue abierto.
			return m, nil
		}
		m.loading = true
		if m.editingID != "" {
			return m, m.updateItem(m.editingID, content)
		}
		return m, m.createItem(content)
	}
	var cmd tea.Cmd
	m.formInput, cmd = m.formInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.mode = modeBrowse
		m.deleteID = ""
		return m, nil
	case "tab", "left", "right":
		m.confirmDel = !m.confirmDel
		return m, nil
	case "y":
		m.loading = true
		return m, m.deleteItem(m.deleteID)
	case "enter":
		if !m.confirmDel {
			m.mode = modeBrowse
			m.deleteID = ""
			return m, nil
		}
		m.loading = true
		return m, m.deleteItem(m.deleteID)
	}
	return m, nil
}

// switchCategory aplica la transición pura y dispara el fetch de la nueva lista.
func (m Model) switchCategory(cat entity.Category) (tea.Model, tea.Cmd) {
	if cat == m.state.Category {
		return m, nil
	}
	m.state = m.state.SwitchCategory(cat)
	m.searchInput.SetValue("")
	m.cursor = 0
	m.loading = true
	return m, m.loadItems()
}

func (m *Model) clampCursor() {
	if max := len(m.state.Displayed()) - 1; m.cursor > max {
		m.cursor = 0
	}
}

// View renderiza encabezado, lista y modales a partir del estado.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Om The Flirter"))
	b.WriteString("\n")
	b.WriteString(renderTabs(m.state.Category))
	b.WriteString("\n\n")

	if m.mode == modeSearch || m.state.SearchQuery != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	switch m.mode {
	case modeForm:
		title := "Agregar item"
		if m.editingID != "" {
			title = "Editar item"
		}
		b.WriteString(renderFormModal(title, m.formInput.View()))
	case modeConfirm:
		b.WriteString(renderConfirmModal(m.deleteText, m.confirmDel))
	default:
		if m.loading {
			b.WriteString(mutedStyle.Render("Cargando..."))
		} else {
			b.WriteString(renderList(m.state, m.cursor))
		}
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("1-3/tab: categoría   /: buscar   a: agregar   e: editar   d: eliminar   m: más   x: exportar   q: salir"))
	return b.String()
}

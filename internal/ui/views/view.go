package views

import (
	"fmt"
	"strings"

	"pantrypick/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Input         string // rendered input control
	Lifecycle     domain.Lifecycle
	Rows          []domain.Item // visible suggestions, API order
	Cursor        int
	PantryFocused bool
	Dragging      string // id of the row being dragged
	Hovering      bool   // drop zone marked as acceptable
	Pantry        []domain.Item
	PantryCursor  int
	Spinner       string
	StatusMessage string
	HelpView      string
}

// Layout maps screen lines back to what was drawn on them so mouse events
// can be hit-tested. Lines are counted from the top of the terminal.
type Layout struct {
	rows       map[int]string
	pantryRows map[int]int
	dropTop    int
	dropBottom int
	offset     int // view lines scrolled off the top when the view is taller than the terminal
}

// RowAt returns the suggestion id drawn on screen line y
func (l Layout) RowAt(y int) (string, bool) {
	id, ok := l.rows[y+l.offset]
	return id, ok
}

// PantryAt returns the pantry item index drawn on screen line y
func (l Layout) PantryAt(y int) (int, bool) {
	i, ok := l.pantryRows[y+l.offset]
	return i, ok
}

// InDropZone reports whether screen line y is inside the pantry box
func (l Layout) InDropZone(y int) bool {
	y += l.offset
	return y >= l.dropTop && y < l.dropBottom
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	listRender   *ListRenderer
	pantryRender *PantryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		listRender:   NewListRenderer(styles),
		pantryRender: NewPantryRenderer(styles),
	}
}

// Render produces the complete view and its layout. Exactly one of the
// loading indicator, the error message or the suggestion list is drawn.
// With a known Height the suggestion list is windowed around the cursor so
// the view fits the terminal.
func (r *Renderer) Render(state ViewState) (string, Layout) {
	layout := Layout{
		rows:       make(map[int]string),
		pantryRows: make(map[int]int),
	}
	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(r.styles.Title.Render("pantrypick"))
	add("")
	add(r.styles.Prompt.Render("› ") + state.Input)
	add("")

	// the footer is built first so the list knows how much room is left
	var footer []string
	addFooter := func(block string) {
		footer = append(footer, strings.Split(block, "\n")...)
	}
	addFooter("")
	box, offsets := r.pantryRender.Render(state)
	addFooter(box)
	boxLines := len(footer) - 1
	addFooter("")
	if state.StatusMessage != "" {
		addFooter(r.styles.Status.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		addFooter(r.styles.Help.Render(state.HelpView))
	}

	switch state.Lifecycle.Phase {
	case domain.PhaseLoading:
		add(r.styles.Loading.Render(fmt.Sprintf("%s Loading...", state.Spinner)))
	case domain.PhaseError:
		add(r.styles.Error.Render("Error: " + state.Lifecycle.Message))
	default:
		if len(state.Rows) == 0 {
			add(r.styles.Dim.Render(r.emptyListText(state)))
		}
		first, last := listWindow(len(state.Rows), state.Cursor, state.Height-len(lines)-len(footer), state.Height > 0)
		for i := first; i < last; i++ {
			row := state.Rows[i]
			layout.rows[len(lines)] = row.ID
			add(r.listRender.RenderRow(row, !state.PantryFocused && i == state.Cursor, row.ID == state.Dragging))
		}
	}

	top := len(lines) + 1
	for i, off := range offsets {
		layout.pantryRows[top+off] = i
	}
	layout.dropTop, layout.dropBottom = top, top+boxLines
	lines = append(lines, footer...)

	// bubbletea keeps the last Height lines of a taller view
	if state.Height > 0 && len(lines) > state.Height {
		layout.offset = len(lines) - state.Height
	}

	return strings.Join(lines, "\n"), layout
}

// listWindow returns the half-open range of rows to draw. At least one row is
// drawn, and the cursor row is always inside the range.
func listWindow(total, cursor, room int, bounded bool) (int, int) {
	if !bounded || total <= room || total == 0 {
		return 0, total
	}
	if room < 1 {
		room = 1
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	first := 0
	if cursor >= room {
		first = cursor - room + 1
	}
	return first, first + room
}

func (r *Renderer) emptyListText(state ViewState) string {
	if state.Lifecycle.Phase == domain.PhaseIdle {
		return "Type an ingredient to search"
	}
	if len(state.Lifecycle.Results) > 0 {
		return "Every suggestion is in the pantry"
	}
	return fmt.Sprintf("No ingredients match %q", state.Lifecycle.Query)
}

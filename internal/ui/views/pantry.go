package views

import (
	"fmt"
	"strings"
)

// PantryRenderer draws the drop zone
type PantryRenderer struct {
	styles *Styles
}

// NewPantryRenderer creates a new pantry renderer
func NewPantryRenderer(styles *Styles) *PantryRenderer {
	return &PantryRenderer{styles: styles}
}

// Render returns the boxed drop zone and, for each pantry item, its line
// offset from the top of the box
func (r *PantryRenderer) Render(state ViewState) (string, []int) {
	var body strings.Builder

	title := fmt.Sprintf("Pantry (%d)", len(state.Pantry))
	if state.Hovering {
		title += " - release to add"
	}
	body.WriteString(r.styles.DropZoneTitle.Render(title))

	offsets := make([]int, len(state.Pantry))
	if len(state.Pantry) == 0 {
		body.WriteString("\n")
		body.WriteString(r.styles.Dim.Render("Drop ingredients here"))
	}
	for i, item := range state.Pantry {
		body.WriteString("\n")
		prefix := "  "
		style := r.styles.PantryItem
		if state.PantryFocused && i == state.PantryCursor {
			prefix = "> "
			style = style.Inherit(r.styles.Cursor)
		}
		body.WriteString(style.Render(prefix + item.Suggestion.Name))
		// border line + title line
		offsets[i] = 2 + i
	}

	box := r.styles.DropZone
	if state.Hovering {
		box = r.styles.DropZoneActive
	}
	width := state.Width - 4
	if width < 24 {
		width = 24
	}
	if width > 60 {
		width = 60
	}
	return box.Width(width).Render(body.String()), offsets
}

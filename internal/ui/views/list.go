package views

import (
	"pantrypick/internal/domain"
)

// ListRenderer handles rendering of suggestion rows
type ListRenderer struct {
	styles *Styles
}

// NewListRenderer creates a new list renderer
func NewListRenderer(styles *Styles) *ListRenderer {
	return &ListRenderer{styles: styles}
}

// RenderRow renders one suggestion. A dragged row keeps its place in the
// list but is marked until it is dropped or the drag is cancelled.
func (r *ListRenderer) RenderRow(row domain.Item, isCursor, isDragging bool) string {
	prefix := "  "
	if isCursor {
		prefix = "> "
	}

	name := row.Suggestion.Name
	style := r.styles.Item
	if isDragging {
		prefix = "⠿ "
		style = r.styles.Dragging
	}
	if isCursor {
		style = style.Inherit(r.styles.Cursor)
	}
	return style.Render(prefix + name)
}

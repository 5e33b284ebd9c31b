package state

// Focus is the area keyboard navigation acts on
type Focus int

const (
	FocusList Focus = iota
	FocusPantry
)

// AppState contains the UI state that is not owned by a service
type AppState struct {
	Width  int
	Height int

	// Selection state
	Cursor       int   // index into the visible suggestion rows
	PantryCursor int   // index into the pantry rows
	Focus        Focus // which list up/down moves through

	StatusMessage string // status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Width:  80,
		Height: 24,
	}
}

// MoveCursor moves the cursor of the focused list by delta, clamped to total
func (s *AppState) MoveCursor(delta, total int) {
	if s.Focus == FocusPantry {
		s.PantryCursor = clamp(s.PantryCursor+delta, total)
		return
	}
	s.Cursor = clamp(s.Cursor+delta, total)
}

// ClampCursors keeps both cursors inside their lists after the lists change
func (s *AppState) ClampCursors(rows, pantry int) {
	s.Cursor = clamp(s.Cursor, rows)
	s.PantryCursor = clamp(s.PantryCursor, pantry)
}

// ToggleFocus switches between the suggestion list and the pantry
func (s *AppState) ToggleFocus() {
	if s.Focus == FocusList {
		s.Focus = FocusPantry
	} else {
		s.Focus = FocusList
	}
}

func clamp(i, total int) int {
	if total <= 0 || i < 0 {
		return 0
	}
	if i >= total {
		return total - 1
	}
	return i
}

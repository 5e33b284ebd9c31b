package ui

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"pantrypick/internal/config"
	"pantrypick/internal/domain"
	"pantrypick/internal/eventbus"
	"pantrypick/internal/ui/services/dragdrop"
	"pantrypick/internal/ui/services/search"
	"pantrypick/internal/ui/state"
	"pantrypick/internal/ui/views"
)

// Options wires the model to its collaborators
type Options struct {
	Config *config.Config
	Client search.Searcher
	Bus    eventbus.EventBus
	Logger *log.Logger
	Clock  clockwork.Clock
	// Notify receives messages produced off the UI goroutine. It defaults to
	// sending them to the program set with SetProgram.
	Notify func(tea.Msg)
}

// Model represents the UI state
type Model struct {
	cfg   *config.Config
	log   *log.Logger
	state *state.AppState

	controller *search.Controller
	board      *dragdrop.Board

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	renderer   *views.Renderer
	helpRender *HelpRenderer
	layout     views.Layout // from the last View, for mouse hit-testing

	notify  func(tea.Msg)
	program atomic.Pointer[tea.Program]
}

// NewModel creates a new UI model
func NewModel(opts Options) (*Model, error) {
	if opts.Config == nil {
		return nil, errors.New("ui: missing config")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		cfg:        opts.Config,
		log:        logger,
		state:      state.NewAppState(),
		board:      dragdrop.NewBoard(opts.Bus),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		keys:       defaultKeyMap(),
		renderer:   views.NewRenderer(),
		helpRender: NewHelpRenderer(),
		notify:     opts.Notify,
	}

	controller, err := search.NewController(opts.Config, opts.Client, opts.Clock, m.send, opts.Bus)
	if err != nil {
		return nil, fmt.Errorf("failed to create search controller: %w", err)
	}
	m.controller = controller

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Focus()
	m.input = ti

	return m, nil
}

// SetProgram sets the program that receives debounced input
func (m *Model) SetProgram(p *tea.Program) {
	m.program.Store(p)
}

// send delivers a message from a timer goroutine. Program.Send blocks until
// the update loop reads it, so it runs on its own goroutine.
func (m *Model) send(msg tea.Msg) {
	if m.notify != nil {
		m.notify(msg)
		return
	}
	if p := m.program.Load(); p != nil {
		go p.Send(msg)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case search.DebouncedMsg:
		cmd := m.controller.Debounced(msg.Query)
		if cmd == nil {
			return m, nil
		}
		m.board.DragEnd()
		m.state.StatusMessage = ""
		return m, tea.Batch(cmd, m.spinner.Tick)

	case search.ResultMsg:
		if m.controller.Apply(msg) {
			m.state.Cursor = 0
			m.clampCursors()
		}
		return m, nil

	case spinner.TickMsg:
		// let the tick chain die when nothing is loading
		if m.controller.State().Phase != domain.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Error("help pager failed", "err", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Help unavailable: %v", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.controller.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, m.showHelpCmd()

	case key.Matches(msg, m.keys.Up):
		m.state.MoveCursor(-1, m.focusedLen())
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.state.MoveCursor(1, m.focusedLen())
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.state.ToggleFocus()
		m.clampCursors()
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		m.grab()
		return m, nil

	case key.Matches(msg, m.keys.Drop):
		m.drop()
		return m, nil

	case key.Matches(msg, m.keys.Return):
		m.returnToList()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.board.Dragging() != "" {
			m.board.DragEnd()
			m.state.StatusMessage = "Drag cancelled"
			return m, nil
		}
		m.input.SetValue("")
		m.setQuery("")
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.setQuery(after)
	}
	return m, cmd
}

// setQuery forwards an edit of the input. An empty value clears the results
// right away, without waiting for the debounce.
func (m *Model) setQuery(q string) {
	m.controller.SetQuery(q)
	m.state.Cursor = 0
	m.state.StatusMessage = ""
	if q == "" {
		m.board.DragEnd()
	}
}

// grab starts a keyboard drag, or toggles hovering over the pantry while
// one is in progress
func (m *Model) grab() {
	if m.board.Dragging() != "" {
		if m.board.Hovering() {
			m.board.DragLeave()
		} else {
			m.board.DragOver()
		}
		return
	}

	row, ok := m.currentRow()
	if !ok {
		return
	}
	if m.board.DragStart(row) {
		m.state.StatusMessage = fmt.Sprintf("Dragging %s: tab to move over the pantry, enter to drop", row.Suggestion.Name)
	}
}

// drop finishes the drag. Without a drag in progress the highlighted row is
// carried over in one step.
func (m *Model) drop() {
	if m.board.Dragging() == "" {
		row, ok := m.currentRow()
		if !ok {
			return
		}
		m.board.DragStart(row)
		m.board.DragOver()
	}
	m.finishDrop()
}

func (m *Model) finishDrop() {
	item, ok := m.board.Drop()
	if !ok {
		m.state.StatusMessage = "Dropped outside the pantry"
		return
	}
	m.state.StatusMessage = fmt.Sprintf("Added %s to the pantry", item.Suggestion.Name)
	m.clampCursors()
}

func (m *Model) returnToList() {
	pantry := m.board.Pantry()
	if len(pantry) == 0 {
		return
	}
	m.clampCursors()
	item, ok := m.board.Remove(pantry[m.state.PantryCursor].ID)
	if !ok {
		return
	}
	m.state.StatusMessage = fmt.Sprintf("Removed %s from the pantry", item.Suggestion.Name)
	m.clampCursors()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if i, ok := m.layout.PantryAt(msg.Y); ok {
			m.state.Focus = state.FocusPantry
			m.state.PantryCursor = i
			m.clampCursors()
			return
		}
		id, ok := m.layout.RowAt(msg.Y)
		if !ok {
			return
		}
		for i, row := range m.rows() {
			if row.ID == id {
				m.state.Focus = state.FocusList
				m.state.Cursor = i
				m.board.DragStart(row)
				return
			}
		}

	case tea.MouseActionMotion:
		if m.board.Dragging() == "" {
			return
		}
		if m.layout.InDropZone(msg.Y) {
			m.board.DragOver()
		} else {
			m.board.DragLeave()
		}

	case tea.MouseActionRelease:
		if m.board.Dragging() == "" {
			return
		}
		if m.layout.InDropZone(msg.Y) {
			m.board.DragOver()
			m.finishDrop()
			return
		}
		m.board.DragEnd()
	}
}

// rows returns the suggestion rows currently drawn; only a ready state has any
func (m *Model) rows() []domain.Item {
	st := m.controller.State()
	if st.Phase != domain.PhaseReady {
		return nil
	}
	return m.board.Visible(st.Results)
}

func (m *Model) currentRow() (domain.Item, bool) {
	if m.state.Focus != state.FocusList {
		return domain.Item{}, false
	}
	rows := m.rows()
	if len(rows) == 0 {
		return domain.Item{}, false
	}
	m.state.ClampCursors(len(rows), len(m.board.Pantry()))
	return rows[m.state.Cursor], true
}

func (m *Model) focusedLen() int {
	if m.state.Focus == state.FocusPantry {
		return len(m.board.Pantry())
	}
	return len(m.rows())
}

func (m *Model) clampCursors() {
	m.state.ClampCursors(len(m.rows()), len(m.board.Pantry()))
}

// View renders the model and remembers the layout for mouse events
func (m *Model) View() string {
	out, layout := m.renderer.Render(views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		Input:         m.input.View(),
		Lifecycle:     m.controller.State(),
		Rows:          m.rows(),
		Cursor:        m.state.Cursor,
		PantryFocused: m.state.Focus == state.FocusPantry,
		Dragging:      m.board.Dragging(),
		Hovering:      m.board.Hovering(),
		Pantry:        m.board.Pantry(),
		PantryCursor:  m.state.PantryCursor,
		Spinner:       m.spinner.View(),
		StatusMessage: m.state.StatusMessage,
		HelpView:      m.help.View(m.keys),
	})
	m.layout = layout
	return out
}

// Pantry returns the ingredients dropped so far
func (m *Model) Pantry() []domain.Item {
	return m.board.Pantry()
}

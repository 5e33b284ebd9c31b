package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the help text shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %-14s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("pantrypick help"))
	help.WriteString("\n\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(line("type", "Search ingredients (results appear once you pause)"))
	help.WriteString(line("esc", "Clear the search"))
	help.WriteString(line("↑/↓", "Move through suggestions"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Drag and drop"))
	help.WriteString("\n")
	help.WriteString(line("tab", "Pick up the highlighted suggestion, then move over the pantry"))
	help.WriteString(line("enter", "Drop into the pantry (without a drag: add directly)"))
	help.WriteString(line("esc", "Cancel the drag"))
	help.WriteString(line("mouse", "Press on a suggestion, drag onto the pantry, release"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Pantry"))
	help.WriteString("\n")
	help.WriteString(line("shift+tab", "Switch between suggestions and pantry"))
	help.WriteString(line("ctrl+r", "Put the highlighted pantry item back"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("f1", "Show this help"))
	help.WriteString(line("ctrl+c", "Quit"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errors.New("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelpCmd runs the pager outside the update loop
func (m *Model) showHelpCmd() tea.Cmd {
	content := m.helpRender.RenderHelpContent()
	ops := NewHelpOps(m.program.Load())
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"shopgrip/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("shopgrip Help"))
	help.WriteString("\n")

	writeSection := func(title string, bindings []key.Binding) {
		help.WriteString(sectionStyle.Render(title))
		help.WriteString("\n")
		for _, b := range bindings {
			h := b.Help()
			if h.Key == "" {
				continue
			}
			fmt.Fprintf(&help, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc))
		}
		help.WriteString("\n")
	}

	writeSection("Main Screen", types.NormalKeys.ShortHelp())
	writeSection("Search Popup", types.SearchKeys.ShortHelp())

	hint := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(hint.Render("  Typing in the popup searches products, collections, articles and pages."))
	help.WriteString("\n")
	help.WriteString(hint.Render("  Enter with nothing selected opens the full results page."))
	help.WriteString("\n")
	fmt.Fprintf(&help, "\n  %s  %s", keyStyle.Render(fmt.Sprintf("%-8s", "ctrl+c")), descStyle.Render("Quit from anywhere"))

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

// SetProgram sets the program whose terminal the pager borrows
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

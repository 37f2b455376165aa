// Package app wires the loaded bank, the shared session state, and the
// screen router into the root Bubble Tea model.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kc3lf/hamdrill/internal/bank"
	"github.com/kc3lf/hamdrill/internal/router"
	"github.com/kc3lf/hamdrill/internal/screens/home"
	"github.com/kc3lf/hamdrill/internal/session"
	"github.com/kc3lf/hamdrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	bank   *bank.Bank
	router *router.Router
	width  int
	height int
}

func newAppModel(b *bank.Bank) AppModel {
	state := session.NewState(b.Questions)
	return AppModel{
		bank:   b,
		router: router.New(home.New(b, state)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Esc is the screens' business: they clean up their session
		// state before emitting PopScreenMsg themselves.
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, filepath.Base(m.bank.Path), len(m.bank.Questions), m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(interface{ KeyHints() []layout.KeyHint }); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program over a loaded bank.
func Run(b *bank.Bank) error {
	p := tea.NewProgram(newAppModel(b))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

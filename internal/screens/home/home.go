package home

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kc3lf/hamdrill/internal/bank"
	"github.com/kc3lf/hamdrill/internal/router"
	"github.com/kc3lf/hamdrill/internal/screen"
	"github.com/kc3lf/hamdrill/internal/screens/browse"
	"github.com/kc3lf/hamdrill/internal/screens/exam"
	"github.com/kc3lf/hamdrill/internal/screens/search"
	"github.com/kc3lf/hamdrill/internal/session"
	"github.com/kc3lf/hamdrill/internal/ui/components"
	"github.com/kc3lf/hamdrill/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	bank  *bank.Bank
	state *session.State
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over a loaded bank and the shared
// session state.
func New(b *bank.Bank, state *session.State) *HomeScreen {
	s := &HomeScreen{bank: b, state: state}

	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Sequential drill", Action: s.startDrill},
		{Label: "Mock exam", Action: s.startExam},
		{Label: "Search questions", Action: s.startSearch},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})

	return s
}

func (s *HomeScreen) startDrill() tea.Cmd {
	s.state.Reset(s.bank.Questions, session.ModeDrill)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: browse.New(s.state, "Drill")}
	}
}

func (s *HomeScreen) startExam() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: exam.New(s.bank)}
	}
}

func (s *HomeScreen) startSearch() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: search.New(s.bank, s.state)}
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("hamdrill"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("amateur radio exam trainer"))
	b.WriteString("\n\n")

	info := fmt.Sprintf("%s — %d questions", filepath.Base(s.bank.Path), len(s.bank.Questions))
	b.WriteString(theme.Subtitle.Width(width).Render(info))
	if n := len(s.bank.Diagnostics); n > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Width(width).Align(lipgloss.Center).Render(
			fmt.Sprintf("%d record(s) skipped or missing figures, see `hamdrill check`", n)))
	}
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	return b.String()
}

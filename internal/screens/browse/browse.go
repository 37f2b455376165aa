// Package browse is the question walker used by both sequential drill
// and search results. Drill mode reveals the correct options as it goes;
// search mode keeps them hidden until asked.
package browse

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/kc3lf/hamdrill/internal/router"
	"github.com/kc3lf/hamdrill/internal/screen"
	"github.com/kc3lf/hamdrill/internal/session"
	"github.com/kc3lf/hamdrill/internal/ui/components"
	"github.com/kc3lf/hamdrill/internal/ui/layout"
	"github.com/kc3lf/hamdrill/internal/ui/theme"
)

// BrowseScreen walks the session's active question list.
type BrowseScreen struct {
	state      *session.State
	title      string
	showAnswer bool
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates a browse screen over the shared session state.
func New(state *session.State, title string) *BrowseScreen {
	return &BrowseScreen{state: state, title: title}
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Title() string {
	return s.title
}

func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Question"},
		{Key: "A", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "p":
		if s.state.Prev() {
			s.showAnswer = false
		}
	case "right", "l", "n":
		if s.state.Next() {
			s.showAnswer = false
		}
	case "a":
		s.showAnswer = !s.showAnswer
	case "esc":
		if s.state.Mode == session.ModeSearch {
			s.state.LeaveSearch()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *BrowseScreen) View(width, height int) string {
	q := s.state.Current()
	if q == nil {
		return theme.Subtitle.Width(width).Render("\n\nnothing to show")
	}

	reveal := s.showAnswer || s.state.Mode == session.ModeDrill

	var b strings.Builder
	pos, total := s.state.Position()
	b.WriteString(components.RenderPosition(pos, total, width))
	b.WriteString("\n")
	b.WriteString(components.RenderQuestionMeta(*q))
	b.WriteString("\n\n")
	b.WriteString(components.RenderQuestionBody(*q, width))
	b.WriteString("\n\n")

	if note := components.RenderFigureNote(*q); note != "" {
		b.WriteString(note)
		b.WriteString("\n\n")
	}

	options := components.NewOptionList(*q)
	options.Locked = true
	options.Revealed = reveal
	b.WriteString(options.View())

	if reveal && q.Answer != "" {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render("  Answer: " + q.Answer))
	}

	return b.String()
}

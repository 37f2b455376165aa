// Package search is the query form: pick one of the three search modes,
// type a query, browse the hits. Results replace this screen, so Esc
// from them restores the pre-search list and returns to the menu.
package search

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/kc3lf/hamdrill/internal/bank"
	"github.com/kc3lf/hamdrill/internal/router"
	"github.com/kc3lf/hamdrill/internal/screen"
	"github.com/kc3lf/hamdrill/internal/screens/browse"
	"github.com/kc3lf/hamdrill/internal/session"
	"github.com/kc3lf/hamdrill/internal/ui/components"
	"github.com/kc3lf/hamdrill/internal/ui/layout"
	"github.com/kc3lf/hamdrill/internal/ui/theme"
)

// searchMode is one of the three query modes of the engine.
type searchMode int

const (
	modeKeyword searchMode = iota
	modeChapter
	modeID
)

var modeLabels = []string{
	"Keyword — question text, number, chapter, options",
	"Chapter — e.g. 1.2 finds every 1.2.x question",
	"Internal id — e.g. MC finds all MC-coded questions",
}

// SearchScreen is the query form.
type SearchScreen struct {
	bank    *bank.Bank
	state   *session.State
	mode    searchMode
	input   components.TextInput
	message string
}

var _ screen.Screen = (*SearchScreen)(nil)
var _ screen.KeyHintProvider = (*SearchScreen)(nil)

// New creates the search form.
func New(b *bank.Bank, state *session.State) *SearchScreen {
	return &SearchScreen{
		bank:  b,
		state: state,
		input: components.NewTextInput("type a query...", false, 64),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Title() string {
	return "Search"
}

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Mode"},
		{Key: "Enter", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			s.mode = (s.mode + 1) % searchMode(len(modeLabels))
			return s, nil
		case "shift+tab", "up":
			s.mode = (s.mode + searchMode(len(modeLabels)) - 1) % searchMode(len(modeLabels))
			return s, nil
		case "enter":
			return s, s.runSearch()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// runSearch executes the selected mode and swaps in a result browser.
// An empty result list keeps the form open with a notice, leaving the
// session state untouched.
func (s *SearchScreen) runSearch() tea.Cmd {
	query := strings.TrimSpace(s.input.Value())
	if query == "" {
		s.message = "type something to search for"
		return nil
	}

	var results []bank.Question
	switch s.mode {
	case modeKeyword:
		results = s.bank.SearchKeyword(query)
	case modeChapter:
		results = s.bank.SearchChapter(query)
	case modeID:
		results = s.bank.SearchID(query)
	}

	if len(results) == 0 {
		s.message = fmt.Sprintf("no questions match %q", query)
		return nil
	}

	s.state.EnterSearch(results)
	title := fmt.Sprintf("Search · %d hits", len(results))
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: browse.New(s.state, title)}
	}
}

func (s *SearchScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Search the bank"))
	b.WriteString("\n\n")

	for i, label := range modeLabels {
		if searchMode(i) == s.mode {
			b.WriteString(theme.Selected.Render("  (•) " + label))
		} else {
			b.WriteString(theme.Unselected.Render("  ( ) " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(s.input.View())
	b.WriteString("\n")

	if s.message != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render("  " + s.message))
	}

	return b.String()
}

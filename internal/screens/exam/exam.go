// Package exam runs a mock exam: draw N random questions, record
// answers with the correct options hidden, grade on submit, review the
// misses.
package exam

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kc3lf/hamdrill/internal/bank"
	"github.com/kc3lf/hamdrill/internal/router"
	"github.com/kc3lf/hamdrill/internal/screen"
	"github.com/kc3lf/hamdrill/internal/session"
	"github.com/kc3lf/hamdrill/internal/ui/components"
	"github.com/kc3lf/hamdrill/internal/ui/layout"
	"github.com/kc3lf/hamdrill/internal/ui/theme"
)

const defaultExamSize = 100

type phase int

const (
	phaseSetup phase = iota
	phaseQuestion
	phaseConfirm
	phaseSummary
	phaseReview
)

// ExamScreen drives one mock exam attempt.
type ExamScreen struct {
	bank    *bank.Bank
	phase   phase
	sizeIn  components.TextInput
	exam    *session.Exam
	index   int
	options components.OptionList
	summary *session.Summary
	review  int
	errMsg  string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates the exam screen in its size-prompt phase.
func New(b *bank.Bank) *ExamScreen {
	size := defaultExamSize
	if size > len(b.Questions) {
		size = len(b.Questions)
	}
	input := components.NewTextInput("number of questions", true, 5)
	input.SetValue(fmt.Sprintf("%d", size))

	return &ExamScreen{bank: b, sizeIn: input}
}

func (s *ExamScreen) Init() tea.Cmd {
	return s.sizeIn.Init()
}

func (s *ExamScreen) Title() string {
	return "Mock exam"
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSetup:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "Space", Description: "Mark"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case phaseConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep answering"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "W", Description: "Review misses"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←/→", Description: "Miss"},
			{Key: "Esc", Description: "Summary"},
		}
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseSetup:
		return s.updateSetup(msg)
	case phaseQuestion:
		return s.updateQuestion(msg)
	case phaseConfirm:
		return s.updateConfirm(msg)
	case phaseSummary:
		return s.updateSummary(msg)
	default:
		return s.updateReview(msg)
	}
}

func (s *ExamScreen) updateSetup(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, popCmd()
		case "enter":
			n, err := s.sizeIn.NumericValue()
			if err != nil {
				s.errMsg = "enter a number"
				return s, nil
			}
			exam, err := session.NewExam(s.bank.Questions, n)
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.exam = exam
			s.errMsg = ""
			s.phase = phaseQuestion
			s.showQuestion(0)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.sizeIn, cmd = s.sizeIn.Update(msg)
	return s, cmd
}

// showQuestion points the option list at question i, restoring any
// letters picked earlier.
func (s *ExamScreen) showQuestion(i int) {
	s.index = i
	s.options = components.NewOptionList(s.exam.Questions[i])
	s.options.MarkChosen(s.exam.Answer(i))
}

func (s *ExamScreen) updateQuestion(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, popCmd()
	case "left", "p":
		if s.index > 0 {
			s.showQuestion(s.index - 1)
		}
		return s, nil
	case "right", "n":
		if s.index < len(s.exam.Questions)-1 {
			s.showQuestion(s.index + 1)
		} else {
			// Last question: offer to submit, like hitting S.
			s.phase = phaseConfirm
		}
		return s, nil
	case "s":
		s.phase = phaseConfirm
		return s, nil
	case "x":
		s.exam.Clear(s.index)
		s.options.MarkChosen(nil)
		return s, nil
	}

	var picked string
	s.options, picked = s.options.Update(msg)
	if picked != "" {
		if s.options.Multi {
			s.exam.Toggle(s.index, picked)
		} else {
			s.exam.Select(s.index, picked)
		}
	}
	return s, nil
}

func (s *ExamScreen) updateConfirm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "y", "enter":
		summary := s.exam.Grade()
		s.summary = &summary
		s.phase = phaseSummary
	case "n", "esc":
		s.phase = phaseQuestion
	}
	return s, nil
}

func (s *ExamScreen) updateSummary(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc", "enter":
		return s, popCmd()
	case "w":
		if len(s.summary.Wrongs) > 0 {
			s.review = 0
			s.phase = phaseReview
		}
	}
	return s, nil
}

func (s *ExamScreen) updateReview(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		s.phase = phaseSummary
	case "left", "p":
		if s.review > 0 {
			s.review--
		}
	case "right", "n":
		if s.review < len(s.summary.Wrongs)-1 {
			s.review++
		}
	}
	return s, nil
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *ExamScreen) View(width, height int) string {
	switch s.phase {
	case phaseSetup:
		return s.viewSetup(width)
	case phaseQuestion:
		return s.viewQuestion(width)
	case phaseConfirm:
		return s.viewConfirm(width)
	case phaseSummary:
		return s.viewSummary(width)
	default:
		return s.viewReview(width)
	}
}

func (s *ExamScreen) viewSetup(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Mock exam"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("  How many questions? (1-%d)", len(s.bank.Questions))))
	b.WriteString("\n\n  ")
	b.WriteString(s.sizeIn.View())
	b.WriteString("\n")
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
	}
	return b.String()
}

func (s *ExamScreen) viewQuestion(width int) string {
	q := s.exam.Questions[s.index]

	var b strings.Builder
	b.WriteString(components.RenderPosition(s.index+1, len(s.exam.Questions), width))
	b.WriteString("\n")
	b.WriteString(components.RenderQuestionMeta(q))
	if q.MultipleChoice() {
		b.WriteString(theme.Hint.Render("   multiple answers"))
	}
	b.WriteString("\n\n")
	b.WriteString(components.RenderQuestionBody(q, width))
	b.WriteString("\n\n")

	if note := components.RenderFigureNote(q); note != "" {
		b.WriteString(note)
		b.WriteString("\n\n")
	}

	b.WriteString(s.options.View())
	b.WriteString("\n")
	b.WriteString(theme.Dimmed.Render(fmt.Sprintf("  answered %d of %d", s.exam.AnsweredCount(), len(s.exam.Questions))))

	return b.String()
}

func (s *ExamScreen) viewConfirm(width int) string {
	unanswered := len(s.exam.Questions) - s.exam.AnsweredCount()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Submit exam?"))
	b.WriteString("\n\n")
	if unanswered > 0 {
		b.WriteString(theme.Warning.Width(width).Align(lipgloss.Center).Render(
			fmt.Sprintf("%d question(s) still unanswered", unanswered)))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Subtitle.Width(width).Render("Y to grade, N to keep answering"))
	return b.String()
}

func (s *ExamScreen) viewSummary(width int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Exam result"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Questions", fmt.Sprintf("%d", sum.Total)},
		{"Correct", fmt.Sprintf("%d", sum.Correct)},
		{"Wrong", fmt.Sprintf("%d", sum.Wrong)},
		{"Unanswered", fmt.Sprintf("%d", sum.Unanswered)},
		{"Score", fmt.Sprintf("%.1f%%", sum.Score)},
		{"Time", fmt.Sprintf("%dm%02ds", int(sum.Elapsed.Minutes()), int(sum.Elapsed.Seconds())%60)},
	}
	for _, row := range rows {
		b.WriteString(theme.Body.Render(fmt.Sprintf("    %-12s %s", row.label, row.value)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(sum.Wrongs) == 0 {
		b.WriteString(theme.Correct.Render("    Clean sheet — every answer correct."))
	} else {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("    W to walk through the %d missed question(s)", len(sum.Wrongs))))
	}

	return b.String()
}

func (s *ExamScreen) viewReview(width int) string {
	w := s.summary.Wrongs[s.review]
	q := w.Question

	var b strings.Builder
	b.WriteString(components.RenderPosition(s.review+1, len(s.summary.Wrongs), width))
	b.WriteString("\n")
	b.WriteString(components.RenderQuestionMeta(q))
	b.WriteString("\n\n")
	b.WriteString(components.RenderQuestionBody(q, width))
	b.WriteString("\n\n")

	options := components.NewOptionList(q)
	options.Locked = true
	options.Revealed = true
	options.MarkChosen(strings.Split(w.Given, ""))
	b.WriteString(options.View())

	b.WriteString("\n")
	given := w.Given
	if given == "" {
		given = "(unanswered)"
	}
	b.WriteString(theme.Incorrect.Render("  Your answer:    " + given))
	b.WriteString("\n")
	b.WriteString(theme.Correct.Render("  Correct answer: " + w.Want))

	return b.String()
}

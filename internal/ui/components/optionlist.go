package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/kc3lf/hamdrill/internal/bank"
	"github.com/kc3lf/hamdrill/internal/ui/theme"
)

// OptionList presents a question's lettered options. Single-answer
// questions behave like a radio group (picking replaces), multi-answer
// questions like checkboxes (space toggles). Revealed mode colors the
// correct letters and any wrong picks.
type OptionList struct {
	Letters  []string          // present letters in A-D order
	Texts    map[string]string // letter → option text
	Multi    bool
	Cursor   int
	Chosen   map[string]bool
	Correct  map[string]bool
	Revealed bool
	Locked   bool // navigation/marking disabled (e.g. after submit)
}

// NewOptionList builds the selector for one question.
func NewOptionList(q bank.Question) OptionList {
	correct := make(map[string]bool)
	for _, r := range q.Answer {
		correct[string(r)] = true
	}
	return OptionList{
		Letters: q.PresentOptions(),
		Texts:   q.Options,
		Multi:   q.MultipleChoice(),
		Chosen:  make(map[string]bool),
		Correct: correct,
	}
}

// MarkChosen presets the chosen set, e.g. when returning to an already
// answered exam question.
func (o *OptionList) MarkChosen(letters []string) {
	o.Chosen = make(map[string]bool)
	for _, l := range letters {
		o.Chosen[l] = true
	}
}

// ChosenLetters returns the chosen letters in display order.
func (o OptionList) ChosenLetters() []string {
	var out []string
	for _, l := range o.Letters {
		if o.Chosen[l] {
			out = append(out, l)
		}
	}
	return out
}

// Update handles cursor movement and marking. It reports the letter
// that was picked or toggled, or "" when nothing changed.
func (o OptionList) Update(msg tea.Msg) (OptionList, string) {
	if o.Locked {
		return o, ""
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, ""
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Letters)-1 {
			o.Cursor++
		}
	case " ", "space", "enter":
		if o.Cursor < 0 || o.Cursor >= len(o.Letters) {
			return o, ""
		}
		letter := o.Letters[o.Cursor]
		if o.Multi {
			o.Chosen[letter] = !o.Chosen[letter]
		} else {
			o.Chosen = map[string]bool{letter: true}
		}
		return o, letter
	case "a", "b", "c", "d":
		letter := string(kmsg.String()[0] - 'a' + 'A')
		for i, l := range o.Letters {
			if l != letter {
				continue
			}
			o.Cursor = i
			if o.Multi {
				o.Chosen[letter] = !o.Chosen[letter]
			} else {
				o.Chosen = map[string]bool{letter: true}
			}
			return o, letter
		}
	}

	return o, ""
}

// View renders the option rows.
func (o OptionList) View() string {
	var s string
	for i, letter := range o.Letters {
		mark := "( )"
		if o.Multi {
			mark = "[ ]"
		}
		if o.Chosen[letter] {
			if o.Multi {
				mark = "[x]"
			} else {
				mark = "(x)"
			}
		}

		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s. %s", prefix, mark, letter, o.Texts[letter])

		switch {
		case o.Revealed && o.Correct[letter]:
			s += theme.Correct.Render(line) + "\n"
		case o.Revealed && o.Chosen[letter]:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Revealed:
			s += theme.Dimmed.Render(line) + "\n"
		case i == o.Cursor && !o.Locked:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

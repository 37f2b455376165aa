// Package session holds the caller-owned state around a loaded question
// bank: the active question list, the cursor, the mode flags, and mock
// exam bookkeeping. The bank itself stays read-only; session code only
// points into it.
package session

import "github.com/kc3lf/hamdrill/internal/bank"

// Mode tells which kind of list the session is currently walking.
type Mode int

const (
	// ModeDrill walks the full bank in file order with answers revealed.
	ModeDrill Mode = iota

	// ModeExam walks a random draw with answers hidden until submit.
	ModeExam

	// ModeSearch walks a search result list; leaving it restores the
	// state saved when the search was entered.
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeDrill:
		return "drill"
	case ModeExam:
		return "exam"
	case ModeSearch:
		return "search"
	default:
		return "unknown"
	}
}

// State is the active question list plus cursor. One State is shared by
// all screens; searches stack a saved copy underneath themselves so the
// previous list survives.
type State struct {
	Mode      Mode
	Questions []bank.Question
	Index     int

	saved *State
}

// NewState starts a drill session over the given questions.
func NewState(questions []bank.Question) *State {
	return &State{Mode: ModeDrill, Questions: questions}
}

// Reset points the state at a new question list and rewinds the cursor.
// Any saved pre-search state is discarded.
func (s *State) Reset(questions []bank.Question, mode Mode) {
	s.Mode = mode
	s.Questions = questions
	s.Index = 0
	s.saved = nil
}

// Current returns the question under the cursor, or nil when the list
// is empty.
func (s *State) Current() *bank.Question {
	if len(s.Questions) == 0 || s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Next advances the cursor. Returns false at the end of the list.
func (s *State) Next() bool {
	if s.Index >= len(s.Questions)-1 {
		return false
	}
	s.Index++
	return true
}

// Prev moves the cursor back. Returns false at the start of the list.
func (s *State) Prev() bool {
	if s.Index <= 0 {
		return false
	}
	s.Index--
	return true
}

// Position returns the 1-based cursor position and the list length.
func (s *State) Position() (int, int) {
	if len(s.Questions) == 0 {
		return 0, 0
	}
	return s.Index + 1, len(s.Questions)
}

// EnterSearch swaps the search results in as the active list, saving
// the current list and cursor. A search issued from inside search
// results keeps the original save point, so one LeaveSearch returns all
// the way to the pre-search state.
func (s *State) EnterSearch(results []bank.Question) {
	if s.Mode != ModeSearch {
		s.saved = &State{Mode: s.Mode, Questions: s.Questions, Index: s.Index}
	}
	s.Mode = ModeSearch
	s.Questions = results
	s.Index = 0
}

// LeaveSearch restores the list and cursor saved by EnterSearch.
// Returns false when there is nothing to restore.
func (s *State) LeaveSearch() bool {
	if s.Mode != ModeSearch || s.saved == nil {
		s.Mode = ModeDrill
		return false
	}
	s.Mode = s.saved.Mode
	s.Questions = s.saved.Questions
	s.Index = s.saved.Index
	s.saved = nil
	return true
}

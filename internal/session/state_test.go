package session

import (
	"testing"

	"github.com/kc3lf/hamdrill/internal/bank"
)

func makeQuestions(ids ...string) []bank.Question {
	qs := make([]bank.Question, 0, len(ids))
	for _, id := range ids {
		qs = append(qs, bank.Question{DisplayID: id, Text: "body " + id})
	}
	return qs
}

func TestStateNavigationBounds(t *testing.T) {
	s := NewState(makeQuestions("Q1", "Q2", "Q3"))

	if s.Mode != ModeDrill {
		t.Fatalf("Mode = %v, want drill", s.Mode)
	}
	if cur := s.Current(); cur == nil || cur.DisplayID != "Q1" {
		t.Fatalf("Current = %v, want Q1", cur)
	}
	if s.Prev() {
		t.Error("Prev at start should return false")
	}

	if !s.Next() || !s.Next() {
		t.Fatal("Next should succeed twice")
	}
	if s.Next() {
		t.Error("Next at end should return false")
	}
	if cur := s.Current(); cur.DisplayID != "Q3" {
		t.Errorf("Current = %s, want Q3", cur.DisplayID)
	}

	pos, total := s.Position()
	if pos != 3 || total != 3 {
		t.Errorf("Position = %d/%d, want 3/3", pos, total)
	}
}

func TestStateEmptyList(t *testing.T) {
	s := NewState(nil)

	if s.Current() != nil {
		t.Error("Current on empty list should be nil")
	}
	if s.Next() || s.Prev() {
		t.Error("navigation on empty list should return false")
	}
	pos, total := s.Position()
	if pos != 0 || total != 0 {
		t.Errorf("Position = %d/%d, want 0/0", pos, total)
	}
}

func TestEnterAndLeaveSearch(t *testing.T) {
	s := NewState(makeQuestions("Q1", "Q2", "Q3"))
	s.Next() // cursor on Q2

	s.EnterSearch(makeQuestions("Q9"))
	if s.Mode != ModeSearch {
		t.Fatalf("Mode = %v, want search", s.Mode)
	}
	if cur := s.Current(); cur.DisplayID != "Q9" {
		t.Fatalf("Current = %s, want Q9", cur.DisplayID)
	}

	if !s.LeaveSearch() {
		t.Fatal("LeaveSearch should restore saved state")
	}
	if s.Mode != ModeDrill {
		t.Errorf("Mode = %v, want drill", s.Mode)
	}
	if cur := s.Current(); cur.DisplayID != "Q2" {
		t.Errorf("Current = %s, want Q2 (cursor restored)", cur.DisplayID)
	}
}

func TestNestedSearchKeepsOriginalSavePoint(t *testing.T) {
	s := NewState(makeQuestions("Q1", "Q2"))
	s.Next()

	s.EnterSearch(makeQuestions("R1", "R2"))
	s.Next()
	s.EnterSearch(makeQuestions("R9")) // refine from within results

	if !s.LeaveSearch() {
		t.Fatal("LeaveSearch should succeed")
	}
	if cur := s.Current(); cur.DisplayID != "Q2" {
		t.Errorf("Current = %s, want Q2 (original state, not intermediate results)", cur.DisplayID)
	}
}

func TestLeaveSearchWithoutEnter(t *testing.T) {
	s := NewState(makeQuestions("Q1"))
	if s.LeaveSearch() {
		t.Error("LeaveSearch without a saved state should return false")
	}
	if s.Mode != ModeDrill {
		t.Errorf("Mode = %v, want drill fallback", s.Mode)
	}
}

func TestResetDiscardsSavedState(t *testing.T) {
	s := NewState(makeQuestions("Q1", "Q2"))
	s.EnterSearch(makeQuestions("R1"))

	s.Reset(makeQuestions("N1"), ModeDrill)
	if s.LeaveSearch() {
		t.Error("Reset should discard the pre-search save point")
	}
	if cur := s.Current(); cur.DisplayID != "N1" {
		t.Errorf("Current = %s, want N1", cur.DisplayID)
	}
}

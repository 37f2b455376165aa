package session

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kc3lf/hamdrill/internal/bank"
)

// Exam is one mock exam attempt: a random draw from the bank plus the
// letters the user has picked per question. Answers are compared
// order-insensitively against the bank's correct letters on Grade.
type Exam struct {
	// ID identifies the attempt, mainly for display and logs.
	ID string

	// Questions is the drawn subset, in draw order.
	Questions []bank.Question

	// StartedAt is when the attempt was created.
	StartedAt time.Time

	answers map[int][]string
}

// WrongAnswer is one graded question the user missed, for the review
// list shown after submit.
type WrongAnswer struct {
	Index    int // position within the exam, 0-based
	Question bank.Question
	Given    string // canonical user letters, "" when unanswered
	Want     string // canonical correct letters
}

// Summary is the graded result of one exam attempt.
type Summary struct {
	Total      int
	Correct    int
	Wrong      int
	Unanswered int
	Score      float64 // percentage, 0-100
	Elapsed    time.Duration
	Wrongs     []WrongAnswer
}

// NewExam draws n questions from the bank without replacement, in
// random order, and starts the clock.
func NewExam(questions []bank.Question, n int) (*Exam, error) {
	if n < 1 || n > len(questions) {
		return nil, fmt.Errorf("exam size must be between 1 and %d, got %d", len(questions), n)
	}

	perm := rand.Perm(len(questions))
	drawn := make([]bank.Question, n)
	for i := 0; i < n; i++ {
		drawn[i] = questions[perm[i]]
	}

	return &Exam{
		ID:        uuid.NewString(),
		Questions: drawn,
		StartedAt: time.Now(),
		answers:   make(map[int][]string),
	}, nil
}

// Select records a single-choice answer, replacing any earlier pick.
func (e *Exam) Select(i int, letter string) {
	if i < 0 || i >= len(e.Questions) {
		return
	}
	e.answers[i] = []string{letter}
}

// Toggle flips one letter of a multiple-choice answer.
func (e *Exam) Toggle(i int, letter string) {
	if i < 0 || i >= len(e.Questions) {
		return
	}
	current := e.answers[i]
	for j, l := range current {
		if l == letter {
			e.answers[i] = append(current[:j], current[j+1:]...)
			return
		}
	}
	e.answers[i] = append(current, letter)
}

// Clear drops the recorded answer for one question.
func (e *Exam) Clear(i int) {
	delete(e.answers, i)
}

// Answer returns the recorded letters for one question, in pick order.
func (e *Exam) Answer(i int) []string {
	return e.answers[i]
}

// Answered reports whether the user picked at least one letter.
func (e *Exam) Answered(i int) bool {
	return len(e.answers[i]) > 0
}

// AnsweredCount returns how many questions have at least one pick.
func (e *Exam) AnsweredCount() int {
	n := 0
	for i := range e.Questions {
		if e.Answered(i) {
			n++
		}
	}
	return n
}

// Grade scores the attempt. A question counts as correct when the
// sorted user letters equal the sorted correct letters; everything else
// with a pick is wrong, the rest unanswered.
func (e *Exam) Grade() Summary {
	s := Summary{
		Total:   len(e.Questions),
		Elapsed: time.Since(e.StartedAt),
	}

	for i, q := range e.Questions {
		given := canonicalLetters(e.answers[i])
		want := canonicalAnswer(q.Answer)

		switch {
		case given == "":
			s.Unanswered++
		case given == want:
			s.Correct++
			continue
		default:
			s.Wrong++
		}

		s.Wrongs = append(s.Wrongs, WrongAnswer{
			Index:    i,
			Question: q,
			Given:    given,
			Want:     want,
		})
	}

	if s.Total > 0 {
		s.Score = float64(s.Correct) / float64(s.Total) * 100
	}
	return s
}

// canonicalLetters sorts and joins picked letters so "CA" and "AC"
// compare equal.
func canonicalLetters(letters []string) string {
	sorted := make([]string, len(letters))
	copy(sorted, letters)
	sort.Strings(sorted)
	return strings.Join(sorted, "")
}

// canonicalAnswer sorts the characters of a [T] value. The bank keeps
// the value verbatim, so grading has to normalize here.
func canonicalAnswer(answer string) string {
	chars := strings.Split(answer, "")
	sort.Strings(chars)
	return strings.Join(chars, "")
}

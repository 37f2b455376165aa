// Package bank parses tag-delimited question-bank files and answers
// search queries against the parsed records. It holds no state beyond
// the snapshot produced by one Load call.
package bank

// OptionLetters is the fixed display order for answer options.
var OptionLetters = []string{"A", "B", "C", "D"}

// Question is a single record from a bank file. Questions are immutable
// once parsed; search and session code only ever copies them.
type Question struct {
	// DisplayID is the public question number, tag [J].
	DisplayID string `json:"display_id"`

	// ChapterID is the dot-delimited chapter code, tag [P] (e.g. "1.2.3").
	ChapterID string `json:"chapter_id"`

	// InternalID is the internal classification code, tag [I].
	InternalID string `json:"internal_id"`

	// Text is the question body, tag [Q]. Never empty for a parsed record.
	Text string `json:"text"`

	// Answer holds the correct letters, tag [T], e.g. "A" or "AC".
	// Letters are kept exactly as found in the file.
	Answer string `json:"answer"`

	// Options maps a letter in A-D to its option text. Any subset of the
	// four letters may be present.
	Options map[string]string `json:"options"`

	// ImagePath is the resolved absolute path of the question's figure,
	// or empty when the record has no [F] tag or the file was not found.
	ImagePath string `json:"image_path,omitempty"`
}

// MultipleChoice reports whether the question expects more than one
// answer letter.
func (q Question) MultipleChoice() bool {
	return len(q.Answer) > 1
}

// PresentOptions returns the letters that actually have option text,
// in A-D order.
func (q Question) PresentOptions() []string {
	letters := make([]string, 0, len(q.Options))
	for _, l := range OptionLetters {
		if _, ok := q.Options[l]; ok {
			letters = append(letters, l)
		}
	}
	return letters
}

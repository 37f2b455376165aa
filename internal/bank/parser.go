package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// recordTag starts a new record: every line beginning with [J] opens a
// fresh chunk. Content before the first [J] line is discarded.
const recordTag = "[J]"

// scalarTags are the single-value field tags within a record.
var scalarTags = map[byte]bool{
	'J': true, 'P': true, 'I': true, 'Q': true, 'T': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'F': true,
}

// imageExtensions are tried in order when the raw [F] value does not
// name an existing file.
var imageExtensions = []string{".jpg", ".png", ".jpeg", ".JPG", ".PNG", ".JPEG"}

// Diagnostic describes a non-fatal problem found while parsing one
// record chunk. Diagnostics never abort a Load.
type Diagnostic struct {
	Chunk int    // zero-based chunk index in file order
	Ref   string // display id of the record, when known
	Msg   string
}

func (d Diagnostic) String() string {
	if d.Ref != "" {
		return fmt.Sprintf("chunk %d [%s]: %s", d.Chunk, d.Ref, d.Msg)
	}
	return fmt.Sprintf("chunk %d: %s", d.Chunk, d.Msg)
}

// Bank is the in-memory snapshot produced by one Load call. It is
// replaced wholesale by the next Load; nothing mutates it in place.
type Bank struct {
	Path        string
	MediaDir    string
	Questions   []Question
	Diagnostics []Diagnostic
}

// Load reads and parses a bank file. It fails only when the file is
// unreadable or when zero valid questions were produced; skipped chunks
// and unresolved figures are reported through Bank.Diagnostics instead.
func Load(path string, opts LoadOptions) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	mediaDir := resolveMediaDir(path, opts)
	questions, diags := Parse(string(data), mediaDir)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoQuestions)
	}

	return &Bank{
		Path:        path,
		MediaDir:    mediaDir,
		Questions:   questions,
		Diagnostics: diags,
	}, nil
}

// Parse splits raw bank text into [J]-headed chunks and parses each one
// independently. Chunks that fail to yield a question are skipped with a
// diagnostic; the remaining file is still parsed. Output order matches
// chunk order in the source.
func Parse(content, mediaDir string) ([]Question, []Diagnostic) {
	var (
		questions []Question
		diags     []Diagnostic
	)

	chunks := splitChunks(content)
	for i, chunk := range chunks {
		q, chunkDiags, ok := parseChunk(chunk, mediaDir)
		for _, d := range chunkDiags {
			d.Chunk = i
			diags = append(diags, d)
		}
		if ok {
			questions = append(questions, q)
		}
	}

	return questions, diags
}

// splitChunks groups lines into record chunks, one per [J] header.
func splitChunks(content string) [][]string {
	var (
		chunks  [][]string
		current []string
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), recordTag) {
			if current != nil {
				chunks = append(chunks, current)
			}
			current = []string{line}
			continue
		}
		if current != nil {
			current = append(current, line)
		}
		// Lines before the first [J] header are ignorable preamble.
	}
	if current != nil {
		chunks = append(chunks, current)
	}

	return chunks
}

// parseChunk extracts the tagged fields of one record. The first
// occurrence of a tag wins; later duplicates are ignored. A chunk
// without a [Q] value yields no question.
func parseChunk(lines []string, mediaDir string) (Question, []Diagnostic, bool) {
	fields := make(map[byte]string)
	for _, line := range lines {
		tag, value, ok := splitTagLine(line)
		if !ok {
			continue
		}
		if _, seen := fields[tag]; seen {
			continue
		}
		fields[tag] = value
	}

	q := Question{
		DisplayID:  fields['J'],
		ChapterID:  fields['P'],
		InternalID: fields['I'],
		Text:       fields['Q'],
		Answer:     fields['T'],
		Options:    make(map[string]string),
	}

	for _, letter := range OptionLetters {
		if text, ok := fields[letter[0]]; ok {
			q.Options[letter] = text
		}
	}

	var diags []Diagnostic

	if q.Text == "" {
		diags = append(diags, Diagnostic{Ref: q.DisplayID, Msg: "missing [Q] field, record skipped"})
		return Question{}, diags, false
	}

	if name, ok := fields['F']; ok && name != "" {
		switch {
		case mediaDir == "":
			diags = append(diags, Diagnostic{Ref: q.DisplayID, Msg: fmt.Sprintf("no media directory for figure %q", name)})
		default:
			path, found := resolveImage(mediaDir, name)
			if found {
				q.ImagePath = path
			} else {
				diags = append(diags, Diagnostic{Ref: q.DisplayID, Msg: fmt.Sprintf("figure %q not found in %s", name, mediaDir)})
			}
		}
	}

	return q, diags, true
}

// splitTagLine matches a whitespace-trimmed "[X]value" line and returns
// the tag byte and the trimmed value.
func splitTagLine(line string) (byte, string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 || trimmed[0] != '[' || trimmed[2] != ']' {
		return 0, "", false
	}
	tag := trimmed[1]
	if !scalarTags[tag] {
		return 0, "", false
	}
	return tag, strings.TrimSpace(trimmed[3:]), true
}

// resolveImage locates a figure file under mediaDir. The raw name is
// tried first; when absent, the extension is stripped and the known
// image extensions are tried in fixed order.
func resolveImage(mediaDir, name string) (string, bool) {
	candidate := filepath.Join(mediaDir, name)
	if fileExists(candidate) {
		return absOrSelf(candidate), true
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	for _, ext := range imageExtensions {
		alt := filepath.Join(mediaDir, base+ext)
		if fileExists(alt) {
			return absOrSelf(alt), true
		}
	}

	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

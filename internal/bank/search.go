package bank

import "strings"

// The three search modes are pure functions of (query, records): they
// never mutate their input and always preserve record order. A blank
// query returns the full list unchanged.

// SearchKeyword returns the questions whose body, display id, chapter
// id, or any option text fuzzy-matches the query.
func SearchKeyword(query string, questions []Question) []Question {
	query = strings.TrimSpace(query)
	if query == "" {
		return questions
	}

	var results []Question
	for _, q := range questions {
		if matchesKeyword(query, q) {
			results = append(results, q)
		}
	}
	return results
}

func matchesKeyword(query string, q Question) bool {
	if fuzzyMatch(query, q.Text) ||
		fuzzyMatch(query, q.DisplayID) ||
		fuzzyMatch(query, q.ChapterID) {
		return true
	}
	for _, text := range q.Options {
		if fuzzyMatch(query, text) {
			return true
		}
	}
	return false
}

// SearchChapter returns the questions whose chapter code fuzzy-matches
// the query. The match is substring-based, not prefix-based: "1.2"
// finds "1.2.3" but also "21.2". Callers depend on the loose behavior.
func SearchChapter(query string, questions []Question) []Question {
	query = strings.TrimSpace(query)
	if query == "" {
		return questions
	}

	var results []Question
	for _, q := range questions {
		if fuzzyMatch(query, q.ChapterID) {
			results = append(results, q)
		}
	}
	return results
}

// SearchID returns the questions whose internal classification code
// fuzzy-matches the query. Only the [I] field is consulted; display ids
// are the domain of SearchKeyword.
func SearchID(query string, questions []Question) []Question {
	query = strings.TrimSpace(query)
	if query == "" {
		return questions
	}

	var results []Question
	for _, q := range questions {
		if fuzzyMatch(query, q.InternalID) {
			results = append(results, q)
		}
	}
	return results
}

// SearchKeyword runs a keyword search over the bank's questions.
func (b *Bank) SearchKeyword(query string) []Question {
	return SearchKeyword(query, b.Questions)
}

// SearchChapter runs a chapter search over the bank's questions.
func (b *Bank) SearchChapter(query string) []Question {
	return SearchChapter(query, b.Questions)
}

// SearchID runs an internal-id search over the bank's questions.
func (b *Bank) SearchID(query string) []Question {
	return SearchID(query, b.Questions)
}

package bank

import (
	"reflect"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{
			DisplayID:  "Q001",
			ChapterID:  "1.2.1",
			InternalID: "MC",
			Text:       "What is X?",
			Answer:     "A",
			Options:    map[string]string{"A": "OptA", "B": "OptB"},
		},
		{
			DisplayID:  "Q002",
			ChapterID:  "1.2.3",
			InternalID: "LK0987",
			Text:       "Which band is 70cm?",
			Answer:     "B",
			Options:    map[string]string{"A": "2m", "B": "430MHz", "C": "10m"},
		},
		{
			DisplayID:  "Q003",
			ChapterID:  "21.2",
			InternalID: "MC2",
			Text:       "Pick the repeater offset",
			Answer:     "AC",
			Options:    map[string]string{"A": "+600kHz", "C": "-600kHz"},
		},
		{
			DisplayID:  "Q004",
			ChapterID:  "3.4.2",
			InternalID: "HV",
			Text:       "Antenna gain units",
			Answer:     "D",
			Options:    map[string]string{"D": "dBi"},
		},
	}
}

func ids(qs []Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.DisplayID)
	}
	return out
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	qs := testQuestions()

	for name, fn := range map[string]func(string, []Question) []Question{
		"keyword": SearchKeyword,
		"chapter": SearchChapter,
		"id":      SearchID,
	} {
		for _, query := range []string{"", "   ", "\t"} {
			got := fn(query, qs)
			if !reflect.DeepEqual(ids(got), ids(qs)) {
				t.Errorf("%s(%q) = %v, want all questions", name, query, ids(got))
			}
		}
	}
}

func TestSearchKeywordUnionOverFields(t *testing.T) {
	qs := testQuestions()

	tests := []struct {
		query string
		want  []string
	}{
		{"antenna", []string{"Q004"}},  // body
		{"q003", []string{"Q003"}},     // display id
		{"3.4", []string{"Q004"}},      // chapter id
		{"430mhz", []string{"Q002"}},   // option text
		{"600khz", []string{"Q003"}},   // any option, first match wins once
		{"zebra", []string{}},
	}

	for _, tt := range tests {
		got := SearchKeyword(tt.query, qs)
		if !reflect.DeepEqual(ids(got), tt.want) {
			t.Errorf("SearchKeyword(%q) = %v, want %v", tt.query, ids(got), tt.want)
		}
	}
}

func TestSearchKeywordNeverMatchesInternalID(t *testing.T) {
	got := SearchKeyword("HV", testQuestions())
	if len(got) != 0 {
		t.Errorf("SearchKeyword matched internal id: %v", ids(got))
	}
}

func TestSearchChapterSubstringSemantics(t *testing.T) {
	// "1.2" matches 1.2.1, 1.2.3 and 21.2: the match is substring-based,
	// not prefix-based.
	got := SearchChapter("1.2", testQuestions())
	want := []string{"Q001", "Q002", "Q003"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("SearchChapter(\"1.2\") = %v, want %v", ids(got), want)
	}
}

func TestSearchIDOnlyConsultsInternalID(t *testing.T) {
	qs := testQuestions()

	got := SearchID("mc", qs)
	want := []string{"Q001", "Q003"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("SearchID(\"mc\") = %v, want %v", ids(got), want)
	}

	if got := SearchID("XY", qs); len(got) != 0 {
		t.Errorf("SearchID(\"XY\") = %v, want empty", ids(got))
	}

	// Display ids are not consulted in id mode.
	if got := SearchID("Q001", qs); len(got) != 0 {
		t.Errorf("SearchID(\"Q001\") = %v, want empty", ids(got))
	}
}

func TestSearchIDConfusableDigits(t *testing.T) {
	// LK0987 typed with letter O instead of digit 0.
	got := SearchID("lkO987", testQuestions())
	if !reflect.DeepEqual(ids(got), []string{"Q002"}) {
		t.Errorf("SearchID(\"lkO987\") = %v, want [Q002]", ids(got))
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	qs := testQuestions()
	snapshot := ids(qs)

	SearchKeyword("antenna", qs)
	SearchChapter("1.2", qs)
	SearchID("mc", qs)

	if !reflect.DeepEqual(ids(qs), snapshot) {
		t.Errorf("input slice changed: %v", ids(qs))
	}
}

func TestBankSearchMethods(t *testing.T) {
	b := &Bank{Questions: testQuestions()}

	if got := b.SearchKeyword("antenna"); len(got) != 1 {
		t.Errorf("Bank.SearchKeyword = %v", ids(got))
	}
	if got := b.SearchChapter("21.2"); len(got) != 1 {
		t.Errorf("Bank.SearchChapter = %v", ids(got))
	}
	if got := b.SearchID("hv"); len(got) != 1 {
		t.Errorf("Bank.SearchID = %v", ids(got))
	}
}

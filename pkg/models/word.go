package models

import (
	"strings"
	"time"
)

// WordRecord represents a word saved by the user while reading
type WordRecord struct {
	ID              string     `json:"id"`
	Word            string     `json:"word"`
	BaseForm        string     `json:"baseForm,omitempty"` // empty on legacy records
	Context         string     `json:"context"`
	SourceURL       string     `json:"sourceUrl"`
	CreatedAt       time.Time  `json:"createdAt"`
	PracticeCount   int        `json:"practiceCount"`
	LastPracticed   *time.Time `json:"lastPracticed"`
	ExampleSentence string     `json:"exampleSentence,omitempty"`
}

// SameWord reports whether w has the same surface text as word, ignoring case
func (w *WordRecord) SameWord(word string) bool {
	return strings.EqualFold(w.Word, word)
}

// SameBaseForm reports whether w shares the given base form. Records without a
// base form never match.
func (w *WordRecord) SameBaseForm(baseForm string) bool {
	if w.BaseForm == "" || baseForm == "" {
		return false
	}
	return strings.EqualFold(w.BaseForm, baseForm)
}

// File path: internal/knowledge/types.go
package knowledge

import (
	"context"
	"strings"

	"hansebot/internal/textnorm"
)

// DefaultCategory is the sentinel used when a source does not declare one.
const DefaultCategory = "Allgemein"

// Source formats understood by the parser registry.
const (
	FormatDelimited      = "delimited"
	FormatStructuredJSON = "structured-json"
	FormatStructuredYAML = "structured-yaml"
)

// Entry is the unit of knowledge: one question with its authored answer,
// matching keywords and category. Entries are immutable after construction;
// updates happen by reloading the whole store.
type Entry struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	SourceID string   `json:"source_id,omitempty"`
}

// Record is one raw document handed over by a knowledge source.
type Record struct {
	ID     string
	Format string
	Raw    []byte
}

// Source enumerates the raw records of one knowledge location.
type Source interface {
	Name() string
	List(ctx context.Context) ([]Record, error)
}

// Parser converts one raw record into entries. Implementations degrade
// per-line and per-record; a returned error means the record as a whole was
// unusable and contributed nothing.
type Parser interface {
	Name() string
	Match(format string) bool
	Parse(ctx context.Context, rec Record) ([]Entry, error)
}

func defaultParsers() []Parser {
	return []Parser{DelimitedParser{}, StructuredParser{}}
}

// NewEntry builds a validated Entry. Keywords are lowercased and trimmed; an
// empty keyword list is derived from question and answer content tokens.
// Returns false when question or answer is empty.
func NewEntry(question, answer string, keywords []string, category, sourceID string) (Entry, bool) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return Entry{}, false
	}
	cleaned := normalizeKeywords(keywords)
	if len(cleaned) == 0 {
		cleaned = textnorm.ContentTokens(question + " " + answer)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	return Entry{
		Question: question,
		Answer:   answer,
		Keywords: cleaned,
		Category: category,
		SourceID: sourceID,
	}, true
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		trimmed := strings.ToLower(strings.TrimSpace(kw))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

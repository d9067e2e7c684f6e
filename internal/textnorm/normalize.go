// File path: internal/textnorm/normalize.go
package textnorm

import (
	"strings"
	"unicode"
)

// Result carries the cleaned form of an utterance together with its tokens.
type Result struct {
	Normalized string
	Tokens     []string
}

// Normalize lowercases the input, strips every character that is not a
// letter, digit, whitespace or hyphen, collapses repeated whitespace and
// splits the remainder on whitespace and hyphen boundaries. Accented letters
// (ä, ö, ü, ß, é, ...) survive because unicode.IsLetter covers them.
func Normalize(text string) Result {
	lowered := strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	tokens := strings.FieldsFunc(cleaned, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	normalized := strings.Join(strings.Fields(cleaned), " ")
	return Result{Normalized: normalized, Tokens: tokens}
}

// QueryTokens returns the recall-oriented token set used for word-overlap
// scoring: every token longer than two characters, stopwords included.
func QueryTokens(text string) []string {
	res := Normalize(text)
	out := make([]string, 0, len(res.Tokens))
	for _, token := range res.Tokens {
		if len([]rune(token)) > 2 {
			out = append(out, token)
		}
	}
	return out
}

// ContentTokens returns the precision-oriented token set used when deriving
// keywords from raw text: tokens longer than three characters with stopwords
// removed. Duplicates are dropped while input order is preserved.
func ContentTokens(text string) []string {
	res := Normalize(text)
	seen := make(map[string]struct{}, len(res.Tokens))
	var out []string
	for _, token := range res.Tokens {
		if len([]rune(token)) <= 3 {
			continue
		}
		if IsStopword(token) {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// File path: internal/textnorm/stopwords.go
package textnorm

// Stopword sets for the two supported locales. The lists are intentionally
// short: keyword derivation only needs the highest-frequency function words
// out of the way, not a linguistically complete inventory.
var germanStopwords = []string{
	"aber", "alle", "also", "auch", "beim", "bitte", "dann", "dass", "dein",
	"deine", "denn", "diese", "dieser", "dieses", "doch", "durch", "eine",
	"einem", "einen", "einer", "eines", "gibt", "haben", "habe", "hatte",
	"ihre", "ihrem", "ihren", "ihrer", "kann", "können", "machen", "mein",
	"meine", "meinem", "meinen", "meiner", "mich", "möchte", "muss", "nach",
	"nicht", "noch", "nur", "oder", "schon", "sehr", "sein", "sind", "soll",
	"sollte", "über", "und", "unter", "viel", "vom", "von", "wann", "war",
	"waren", "warum", "welche", "welcher", "wenn", "werden", "wieder", "wird",
	"wurde", "zum", "zur",
}

var englishStopwords = []string{
	"about", "after", "also", "been", "being", "can", "could", "does", "down",
	"from", "have", "having", "into", "just", "more", "much", "must", "only",
	"over", "should", "some", "than", "that", "their", "them", "then", "there",
	"these", "they", "this", "very", "want", "well", "were", "what", "when",
	"where", "which", "will", "with", "would", "your",
}

var stopwords = buildStopwordSet()

func buildStopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(germanStopwords)+len(englishStopwords))
	for _, w := range germanStopwords {
		set[w] = struct{}{}
	}
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether the lowercased token belongs to the combined
// German and English stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// File path: internal/match/terms.go
package match

import "strings"

// Product names get the highest keyword weight: a single product mention is
// usually the strongest signal an utterance carries.
var productNames = []string{
	"genialcard",
	"goldcard",
	"visa",
	"mastercard",
	"app",
	"apple pay",
	"google pay",
}

// Important domain terms gate the short-query guard and feed the
// co-occurrence bonuses. Product names are implicitly important.
var importantTerms = []string{
	"abrechnung",
	"bargeld",
	"dispo",
	"gebühren",
	"geheimzahl",
	"girokonto",
	"karte",
	"kartennummer",
	"konto",
	"kredit",
	"kreditkarte",
	"kundenservice",
	"limit",
	"pin",
	"ratenzahlung",
	"rechnung",
	"referenzkonto",
	"sperren",
	"tan",
	"überweisung",
	"verfügungsrahmen",
	"zinsen",
}

// Category labels recognized inside utterances for the category bonus.
var knownCategories = []string{
	"allgemein",
	"app",
	"gebühren",
	"karte",
	"konto",
	"sicherheit",
}

func allImportantTerms() []string {
	out := make([]string, 0, len(importantTerms)+len(productNames))
	out = append(out, importantTerms...)
	out = append(out, productNames...)
	return out
}

// IsProductName reports whether the lowercased term names a product.
func IsProductName(term string) bool {
	for _, name := range productNames {
		if term == name {
			return true
		}
	}
	return false
}

// hasDomainSignal reports whether any token overlaps the important-term list,
// by equality or substring containment in either direction.
func hasDomainSignal(tokens []string) bool {
	for _, token := range tokens {
		for _, term := range allImportantTerms() {
			if token == term || strings.Contains(token, term) || strings.Contains(term, token) {
				return true
			}
		}
	}
	return false
}

// categoriesIn extracts the known category labels present in the normalized
// utterance.
func categoriesIn(normalized string) []string {
	var out []string
	for _, label := range knownCategories {
		if strings.Contains(normalized, label) {
			out = append(out, label)
		}
	}
	return out
}

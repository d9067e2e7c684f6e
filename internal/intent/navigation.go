// File path: internal/intent/navigation.go
package intent

import (
	"strings"

	"hansebot/internal/textnorm"
)

// NavigationIntent identifies one fixed UI action. The set is closed; it is
// not extensible at runtime.
type NavigationIntent string

const (
	IntentPIN              NavigationIntent = "pin"
	IntentReferenceAccount NavigationIntent = "reference-account"
	IntentEmail            NavigationIntent = "email"
	IntentTransfer         NavigationIntent = "transfer"
	IntentBenefits         NavigationIntent = "benefits"
	IntentSupport          NavigationIntent = "support"
	IntentFAQ              NavigationIntent = "faq"
	IntentChangeNumber     NavigationIntent = "change-number"
)

// Verb stems meaning change/update/reset/set, German and English, matched as
// token prefixes. Stems keep the match independent of conjugation ("ändern",
// "ändere"); participle forms carry their own stem ("geändert") because the
// ge- prefix cannot be matched structurally without also catching unrelated
// words like "Gesetz".
var changeVerbs = []string{
	"änder", "geänder", "aktualisier", "zurücksetz", "zurückgesetz",
	"setz", "gesetzt", "wechsel", "gewechsel",
	"change", "updat", "reset",
}

type navigationRule struct {
	intent  NavigationIntent
	nouns   []string
	aliases []string
	ack     string
}

// Rules are evaluated in order; the first hit wins. The vocabularies are
// mutually distinguishing, so order only settles which rule gets to claim an
// utterance that names several targets at once.
var navigationRules = []navigationRule{
	{
		intent: IntentPIN,
		nouns:  []string{"pin", "geheimzahl"},
		ack:    "Gern! Ich öffne für Sie die PIN-Verwaltung, dort können Sie Ihre PIN direkt ändern.",
	},
	{
		intent: IntentReferenceAccount,
		nouns:  []string{"referenzkonto"},
		ack:    "Alles klar, ich bringe Sie zur Verwaltung Ihres Referenzkontos.",
	},
	{
		intent: IntentEmail,
		nouns:  []string{"email", "e-mail", "mailadresse"},
		ack:    "Gern! Ich öffne die Einstellungen, dort können Sie Ihre E-Mail-Adresse ändern.",
	},
	{
		intent: IntentTransfer,
		nouns:  []string{"überweisung", "geld"},
		ack:    "Einen Moment, ich öffne für Sie den Überweisungsbereich.",
	},
	{
		intent: IntentChangeNumber,
		nouns:  []string{"kartennummer", "handynummer", "mobilnummer", "rufnummer"},
		ack:    "Verstanden, ich öffne die Einstellungen zum Ändern Ihrer Nummer.",
	},
	{
		intent:  IntentBenefits,
		nouns:   []string{"vorteile"},
		aliases: []string{"vorteile", "benefits", "meine vorteile"},
		ack:     "Gern! Hier sind Ihre Kartenvorteile.",
	},
	{
		intent:  IntentSupport,
		nouns:   []string{"kundenservice"},
		aliases: []string{"support", "kundenservice", "kontakt", "hilfe kontakt"},
		ack:     "Ich verbinde Sie mit unserem Kundenservice.",
	},
	{
		intent:  IntentFAQ,
		aliases: []string{"faq", "faqs", "häufige fragen"},
		ack:     "Gern! Ich öffne die häufig gestellten Fragen.",
	},
}

// Navigation maps an utterance to a fixed UI action. It runs before every
// other resolution stage: a recognized navigation request pre-empts both
// conversational replies and knowledge lookup. First pattern match wins, in
// this order per rule: change-verb co-occurring with a target noun, the bare
// target noun, the target noun followed by a question mark, exact aliases.
func Navigation(utterance string) (NavigationIntent, string, bool) {
	raw := strings.ToLower(strings.TrimSpace(utterance))
	if raw == "" {
		return "", "", false
	}
	res := textnorm.Normalize(raw)
	hasVerb := hasChangeVerb(res.Tokens)
	for _, rule := range navigationRules {
		for _, noun := range rule.nouns {
			if hasVerb && hasNoun(res.Tokens, res.Normalized, noun) {
				return rule.intent, rule.ack, true
			}
			if res.Normalized == noun || raw == noun+"?" {
				return rule.intent, rule.ack, true
			}
		}
		for _, alias := range rule.aliases {
			if res.Normalized == alias {
				return rule.intent, rule.ack, true
			}
		}
	}
	return "", "", false
}

func hasChangeVerb(tokens []string) bool {
	for _, token := range tokens {
		for _, stem := range changeVerbs {
			if strings.HasPrefix(token, stem) {
				return true
			}
		}
	}
	return false
}

// hasNoun matches a target noun as a whole word. Nouns written with hyphen or
// space are located in the normalized string at word boundaries; plain nouns
// must equal a token exactly, so compounds like "bargeldlimit" cannot trigger
// "geld".
func hasNoun(tokens []string, normalized, noun string) bool {
	if strings.ContainsAny(noun, " -") {
		return strings.Contains(" "+normalized+" ", " "+noun+" ")
	}
	for _, token := range tokens {
		if token == noun {
			return true
		}
	}
	return false
}

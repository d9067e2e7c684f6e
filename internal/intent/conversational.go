// File path: internal/intent/conversational.go
package intent

import (
	"regexp"
	"strings"
)

// Conversational patterns run against the trimmed, lowercased raw utterance,
// not the keyword-stripped form: punctuation and word order matter here.
// The chain is evaluated top to bottom, first match wins; the interjection
// pattern at the end acts as the catch-all for utterances that are clearly
// chat but fit no specific category.
var conversationalChain = []struct {
	name     string
	pattern  *regexp.Regexp
	response string
}{
	{
		name:     "greeting",
		pattern:  regexp.MustCompile(`^(hallo|hi|hey|moin|servus|hello|guten\s+(morgen|tag|abend))[\s!.,]*$`),
		response: "Hallo! Ich bin Ihr digitaler Assistent der Hanseatic Bank. Wie kann ich Ihnen helfen?",
	},
	{
		name:     "how-are-you",
		pattern:  regexp.MustCompile(`wie\s+geht\s*('?s\b|es\s+(dir|ihnen)\b)|how\s+are\s+you`),
		response: "Mir geht es gut, danke der Nachfrage! Womit kann ich Ihnen rund um Karte und Konto helfen?",
	},
	{
		name:     "capabilities",
		pattern:  regexp.MustCompile(`was\s+kannst\s+du|wobei\s+(kannst|können)\s+(du|sie)\s+.*helfen|what\s+can\s+you\s+do`),
		response: "Ich beantworte Fragen zu Karte, Konto und App, zum Beispiel zu PIN, Überweisungen, Limits oder Gebühren. Fragen Sie einfach los!",
	},
	{
		name:     "identity",
		pattern:  regexp.MustCompile(`wer\s+bist\s+du|was\s+bist\s+du|who\s+are\s+you`),
		response: "Ich bin der digitale Assistent der Hanseatic Bank und helfe Ihnen bei Fragen rund um Karte, Konto und App.",
	},
	{
		name:     "thanks",
		pattern:  regexp.MustCompile(`^(danke|vielen\s+dank|dankeschön|thanks|thank\s+you)[\s!.,]*$`),
		response: "Sehr gern! Wenn Sie noch eine Frage haben, bin ich für Sie da.",
	},
	{
		name:     "help",
		pattern:  regexp.MustCompile(`^(hilfe|help)[\s!.,?]*$|ich\s+brauche\s+hilfe`),
		response: "Gern! Stellen Sie mir einfach Ihre Frage, zum Beispiel 'Wie sperre ich meine Karte?' oder 'Was kostet die GenialCard?'.",
	},
	{
		name:     "chat",
		pattern:  regexp.MustCompile(`^(ok|okay|cool|super|prima|alles\s+klar|gut)[\s!.,]*$`),
		response: "Alles klar! Sagen Sie einfach Bescheid, wenn Sie eine Frage haben.",
	},
}

// Conversational reports whether the utterance is small talk and returns the
// canned reply for its category.
func Conversational(utterance string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(utterance))
	if trimmed == "" {
		return "", false
	}
	for _, step := range conversationalChain {
		if step.pattern.MatchString(trimmed) {
			return step.response, true
		}
	}
	return "", false
}

// File path: internal/resolver/prompt.go
package resolver

import (
	"fmt"
	"strings"

	"hansebot/internal/knowledge"
)

// maxPromptEntries caps the knowledge excerpt embedded in the system prompt
// so the context stays well inside small local model windows.
const maxPromptEntries = 12

const systemInstruction = `Du bist der digitale Assistent der Hanseatic Bank. ` +
	`Beantworte Kundenfragen freundlich, knapp und ausschliesslich auf Deutsch. ` +
	`Nutze vorrangig das folgende Bankwissen. Wenn die Antwort dort nicht enthalten ist, ` +
	`sage ehrlich, dass du es nicht weisst, und verweise auf den Kundenservice. ` +
	`Erfinde keine Gebuehren, Fristen oder Vertragsdetails.`

// buildSystemPrompt grounds the completion backend with the most relevant
// knowledge entries. Entries scored by the matching engine come first; the
// remainder fills up to the cap in store order.
func buildSystemPrompt(ranked []knowledge.Entry, all []knowledge.Entry) string {
	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\nBankwissen:\n")
	seen := make(map[string]struct{}, maxPromptEntries)
	count := 0
	appendEntry := func(entry knowledge.Entry) {
		if count >= maxPromptEntries {
			return
		}
		if _, ok := seen[entry.Question]; ok {
			return
		}
		seen[entry.Question] = struct{}{}
		count++
		fmt.Fprintf(&b, "%d. Frage: %s\n   Antwort: %s\n", count, entry.Question, entry.Answer)
	}
	for _, entry := range ranked {
		appendEntry(entry)
	}
	for _, entry := range all {
		appendEntry(entry)
	}
	return b.String()
}

// File path: internal/knowledge/parser_test.go
package knowledge

import (
	"context"
	"testing"
)

func TestDelimitedParserBasics(t *testing.T) {
	raw := []byte(`# Kommentar
Wie hoch ist das Limit?|limit,karte|Das Limit beträgt 1.000 Euro pro Tag.
kaputt ohne antwort

Was kostet die Karte?|karte,gebühren|Die Karte ist kostenlos.
`)
	entries, err := (DelimitedParser{}).Parse(context.Background(), Record{ID: "faq.txt", Format: FormatDelimited, Raw: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Question != "Wie hoch ist das Limit?" {
		t.Fatalf("expected first question kept verbatim, got %q", entries[0].Question)
	}
	if len(entries[0].Keywords) != 2 || entries[0].Keywords[0] != "limit" {
		t.Fatalf("expected keywords split on commas, got %v", entries[0].Keywords)
	}
	if entries[0].SourceID != "faq.txt" {
		t.Fatalf("expected source id propagated, got %q", entries[0].SourceID)
	}
}

func TestDelimitedParserKeepsPipesInAnswer(t *testing.T) {
	raw := []byte("Frage?|schlüssel|Antwort mit | Sonderzeichen\n")
	entries, err := (DelimitedParser{}).Parse(context.Background(), Record{ID: "x", Format: FormatDelimited, Raw: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Answer != "Antwort mit | Sonderzeichen" {
		t.Fatalf("expected pipes after the second delimiter kept, got %q", entries[0].Answer)
	}
}

func TestStructuredParserFlatJSON(t *testing.T) {
	raw := []byte(`[
		{"question": "Was ist die GenialCard?", "answer": "Eine Visa Kreditkarte.", "keywords": ["genialcard", "visa"], "category_id": "cat_karte"}
	]`)
	entries, err := (StructuredParser{}).Parse(context.Background(), Record{ID: "flat.json", Format: FormatStructuredJSON, Raw: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Category != "karte" {
		t.Fatalf("expected category id prefix stripped, got %q", entries[0].Category)
	}
}

func TestStructuredParserEnvelopeJSON(t *testing.T) {
	raw := []byte(`{
		"meta": {"version": 2},
		"categories": [{"id": "c1", "name": "Sicherheit"}],
		"faqs": [
			{"question": "Wie sperre ich meine Karte?", "answer": "Rufen Sie die Hotline an.", "keywords": ["sperren"], "category_id": "c1"},
			{"question": "", "answer": "unvollständig"}
		]
	}`)
	entries, err := (StructuredParser{}).Parse(context.Background(), Record{ID: "env.json", Format: FormatStructuredJSON, Raw: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected incomplete faq skipped, got %d entries", len(entries))
	}
	if entries[0].Category != "Sicherheit" {
		t.Fatalf("expected category resolved by id, got %q", entries[0].Category)
	}
}

func TestStructuredParserEnvelopeWithMalformedFaqs(t *testing.T) {
	// A present faqs key commits the document to the envelope shape; the
	// sibling subtrees must not be reinterpreted as a nested tree.
	raw := []byte(`{
		"meta": {"version": "2"},
		"categories": [{"id": "c1", "name": "Sicherheit"}],
		"faqs": "kaputt"
	}`)
	entries, err := (StructuredParser{}).Parse(context.Background(), Record{ID: "env.json", Format: FormatStructuredJSON, Raw: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected zero entries for a malformed envelope, got %d", len(entries))
	}
}

func TestStructuredParserNestedYAML(t *testing.T) {
	raw := []byte(`App:
  Wie aktiviere ich Push?: In den Einstellungen der App.
Konto:
  Unterkonto:
    Wie eröffne ich ein Unterkonto?: Direkt in der App unter Konten.
`)
	entries, err := (StructuredParser{}).Parse(context.Background(), Record{ID: "nested.yaml", Format: FormatStructuredYAML, Raw: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Category != "App" {
		t.Fatalf("expected nearest map key as category, got %q", entries[0].Category)
	}
	if entries[1].Category != "Unterkonto" {
		t.Fatalf("expected deepest key as category, got %q", entries[1].Category)
	}
}

func TestStructuredParserRejectsMalformed(t *testing.T) {
	if _, err := (StructuredParser{}).Parse(context.Background(), Record{ID: "bad", Format: FormatStructuredJSON, Raw: []byte("{not json")}); err == nil {
		t.Fatalf("expected decode error")
	}
	entries, err := (StructuredParser{}).Parse(context.Background(), Record{ID: "scalar", Format: FormatStructuredJSON, Raw: []byte(`"nur ein string"`)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected unrecognized shape to yield zero entries, got %d", len(entries))
	}
}

func TestNewEntryDerivesKeywords(t *testing.T) {
	entry, ok := NewEntry("Wie funktioniert die Überweisung?", "Überweisungen dauern einen Werktag.", nil, "", "src")
	if !ok {
		t.Fatalf("expected entry accepted")
	}
	if entry.Category != DefaultCategory {
		t.Fatalf("expected default category, got %q", entry.Category)
	}
	if len(entry.Keywords) == 0 {
		t.Fatalf("expected keywords derived from content tokens")
	}
	for _, kw := range entry.Keywords {
		if kw == "die" || kw == "einen" {
			t.Fatalf("expected stopwords excluded from derived keywords, got %v", entry.Keywords)
		}
	}
}

func TestNewEntryRejectsBlankFields(t *testing.T) {
	if _, ok := NewEntry("  ", "antwort", nil, "", "src"); ok {
		t.Fatalf("expected blank question rejected")
	}
	if _, ok := NewEntry("frage", "", nil, "", "src"); ok {
		t.Fatalf("expected blank answer rejected")
	}
}

// File path: internal/intent/intent_test.go
package intent

import "testing"

func TestNavigationVerbNounCombinations(t *testing.T) {
	cases := []struct {
		utterance string
		want      NavigationIntent
	}{
		{"Wie ändere ich meine PIN?", IntentPIN},
		{"pin ändern", IntentPIN},
		{"Ich möchte meine Geheimzahl zurücksetzen", IntentPIN},
		{"Referenzkonto ändern bitte", IntentReferenceAccount},
		{"E-Mail aktualisieren", IntentEmail},
		{"Geld überweisen, also Überweisung ändern", IntentTransfer},
		{"Handynummer ändern", IntentChangeNumber},
	}
	for _, tc := range cases {
		got, ack, ok := Navigation(tc.utterance)
		if !ok {
			t.Fatalf("expected %q to resolve, got no intent", tc.utterance)
		}
		if got != tc.want {
			t.Fatalf("expected %q for %q, got %q", tc.want, tc.utterance, got)
		}
		if ack == "" {
			t.Fatalf("expected acknowledgement for %q", tc.utterance)
		}
	}
}

func TestNavigationBareNounAndAliases(t *testing.T) {
	cases := []struct {
		utterance string
		want      NavigationIntent
	}{
		{"pin", IntentPIN},
		{"pin?", IntentPIN},
		{"referenzkonto", IntentReferenceAccount},
		{"vorteile", IntentBenefits},
		{"support", IntentSupport},
		{"FAQ", IntentFAQ},
		{"häufige Fragen", IntentFAQ},
	}
	for _, tc := range cases {
		got, _, ok := Navigation(tc.utterance)
		if !ok {
			t.Fatalf("expected %q to resolve, got no intent", tc.utterance)
		}
		if got != tc.want {
			t.Fatalf("expected %q for %q, got %q", tc.want, tc.utterance, got)
		}
	}
}

func TestNavigationRejectsKnowledgeQuestions(t *testing.T) {
	for _, utterance := range []string{
		"Was kostet die GenialCard?",
		"Wie hoch ist mein Limit?",
		"hallo",
		"",
	} {
		if got, _, ok := Navigation(utterance); ok {
			t.Fatalf("expected no intent for %q, got %q", utterance, got)
		}
	}
}

func TestNavigationIgnoresCompoundWords(t *testing.T) {
	// Compounds embedding a target noun or verb stem are knowledge
	// questions; only whole-word hits may navigate.
	for _, utterance := range []string{
		"Wie ändere ich mein Bargeldlimit?",
		"Wie ist der Wechselkurs für Überweisungen?",
		"Gibt es ein Gesetz zum Referenzkonto?",
	} {
		if got, _, ok := Navigation(utterance); ok {
			t.Fatalf("expected no intent for %q, got %q", utterance, got)
		}
	}
}

func TestNavigationNounWithoutVerbNeedsExactMatch(t *testing.T) {
	// A noun buried in a longer sentence without a change verb is a
	// knowledge question, not a navigation command.
	if got, _, ok := Navigation("Was ist ein Referenzkonto?"); ok {
		t.Fatalf("expected no intent, got %q", got)
	}
}

func TestConversationalCategories(t *testing.T) {
	cases := []string{
		"Hallo!",
		"guten morgen",
		"wie geht's?",
		"Wie geht es Ihnen?",
		"was kannst du eigentlich?",
		"wer bist du?",
		"Vielen Dank!",
		"hilfe",
		"okay",
	}
	for _, utterance := range cases {
		if _, ok := Conversational(utterance); !ok {
			t.Fatalf("expected %q to be conversational", utterance)
		}
	}
}

func TestConversationalRejectsDomainQuestions(t *testing.T) {
	cases := []string{
		"Wie geht das mit der Überweisung?",
		"hallo wie sperre ich meine karte",
		"Was kostet die GenialCard?",
		"",
	}
	for _, utterance := range cases {
		if reply, ok := Conversational(utterance); ok {
			t.Fatalf("expected %q not conversational, got reply %q", utterance, reply)
		}
	}
}

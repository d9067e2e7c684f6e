// File path: internal/knowledge/defaults.go
package knowledge

import "context"

const defaultSeedName = "allgemein-faqs.txt"

// Format: Frage | Stichwörter | Antwort. Same file layout operators use for
// their own knowledge files.
const defaultSeedText = `# Hanseatic Bank - Allgemeine FAQs
# Format: Frage | Stichwörter | Antwort

Wie ändere ich meine PIN? | pin, geheimzahl, ändern, neu | Ihre PIN ändern Sie in der App unter 'Karte' und dann 'PIN-Verwaltung'. Nach der Bestätigung per TAN ist die neue PIN sofort gültig.

Was ist die Hanseatic Bank Mobile App? | app, mobile, funktionen | Die Hanseatic Bank Mobile App ist Ihr Zugang zu Karte und Konto: Umsätze einsehen, Limits anpassen, Karte sperren und Überweisungen tätigen, alles direkt auf dem Smartphone.

Wie überweise ich Geld? | überweisung, geld, senden, zahlung | Öffnen Sie in der App den Bereich 'Überweisung', wählen Sie das Absenderkonto, geben Sie Empfänger und Betrag ein und bestätigen Sie die Zahlung per TAN.

Wie ändere ich mein Referenzkonto? | referenzkonto, ändern, girokonto | Ihr Referenzkonto ändern Sie unter 'Profil' und 'Referenzkonto'. Die Änderung wird nach einer Sicherheitsprüfung innerhalb von zwei Bankarbeitstagen wirksam.

Was kostet die GenialCard? | genialcard, kosten, gebühren, jahresgebühr | Die GenialCard ist dauerhaft ohne Jahresgebühr. Kosten entstehen nur bei Teilzahlung oder Bargeldabhebung; die Konditionen finden Sie im Preis- und Leistungsverzeichnis.

Wie erhöhe ich mein Kartenlimit? | limit, kartenlimit, erhöhen, verfügungsrahmen | Ihr Wunschlimit beantragen Sie in der App unter 'Karte' und 'Limit anpassen'. Die Prüfung dauert in der Regel einen Bankarbeitstag.

Wie sperre ich meine Karte? | karte, sperren, verloren, gestohlen | Sperren Sie Ihre Karte sofort in der App unter 'Karte' und 'Karte sperren' oder rufen Sie rund um die Uhr den Sperr-Notruf 116 116 an.

Wie hebe ich Bargeld ab? | bargeld, abheben, geldautomat | Mit Ihrer Karte heben Sie an allen Geldautomaten mit Visa-Zeichen Bargeld ab. Beachten Sie die Gebühren laut Preisverzeichnis bei Abhebungen.

Wie erreiche ich den Kundenservice? | kundenservice, support, hilfe, kontakt | Unseren Kundenservice erreichen Sie über den Hilfe-Bereich der App, per Nachricht im Postfach oder telefonisch von Montag bis Freitag zwischen 8 und 18 Uhr.

Wie funktioniert die Ratenzahlung? | ratenzahlung, raten, teilzahlung | Unter 'Konto' und 'Ratenzahlung' wählen Sie, ob Sie Ihren Saldo vollständig oder in flexiblen Raten zurückzahlen. Die Umstellung gilt ab der nächsten Abrechnung.
`

// DefaultEntries synthesizes the built-in entry set. It is used when no
// knowledge source contributes anything, so resolution works out of the box.
func DefaultEntries(ctx context.Context) []Entry {
	entries, err := DelimitedParser{}.Parse(ctx, Record{
		ID:     "builtin",
		Format: FormatDelimited,
		Raw:    []byte(defaultSeedText),
	})
	if err != nil {
		return nil
	}
	return entries
}

// File path: internal/textnorm/normalize_test.go
package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalizeLowercasesAndStripsPunctuation(t *testing.T) {
	res := Normalize("Wie ändere ich meine PIN?!")
	if res.Normalized != "wie ändere ich meine pin" {
		t.Fatalf("expected normalized text, got %q", res.Normalized)
	}
	want := []string{"wie", "ändere", "ich", "meine", "pin"}
	if !reflect.DeepEqual(res.Tokens, want) {
		t.Fatalf("expected tokens %v, got %v", want, res.Tokens)
	}
}

func TestNormalizeKeepsUmlautsAndDigits(t *testing.T) {
	res := Normalize("Überweisung über 500 Euro")
	if res.Normalized != "überweisung über 500 euro" {
		t.Fatalf("expected umlauts preserved, got %q", res.Normalized)
	}
}

func TestNormalizeSplitsHyphenatedWords(t *testing.T) {
	res := Normalize("Apple-Pay einrichten")
	want := []string{"apple", "pay", "einrichten"}
	if !reflect.DeepEqual(res.Tokens, want) {
		t.Fatalf("expected tokens %v, got %v", want, res.Tokens)
	}
}

func TestQueryTokensDropsShortTokens(t *testing.T) {
	tokens := QueryTokens("Was ist die App?")
	want := []string{"was", "ist", "die", "app"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("expected tokens %v, got %v", want, tokens)
	}
	if len(QueryTokens("an zu ob")) != 0 {
		t.Fatalf("expected two-letter tokens dropped")
	}
}

func TestContentTokensFiltersStopwordsAndDuplicates(t *testing.T) {
	tokens := ContentTokens("Die Überweisung einer Überweisung dauert einen Werktag")
	want := []string{"überweisung", "dauert", "werktag"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("expected tokens %v, got %v", want, tokens)
	}
}

func TestIsStopwordCoversBothLocales(t *testing.T) {
	for _, word := range []string{"und", "nicht", "that", "with"} {
		if !IsStopword(word) {
			t.Fatalf("expected %q to be a stopword", word)
		}
	}
	if IsStopword("überweisung") {
		t.Fatalf("expected domain term not to be a stopword")
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	res := Normalize("   ")
	if res.Normalized != "" || len(res.Tokens) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

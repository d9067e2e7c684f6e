// File path: internal/llm/providers/local_test.go
package providers

import (
	"context"
	"strings"
	"testing"
)

func TestLocalProviderEchoesLastMessage(t *testing.T) {
	provider := NewLocalProvider()
	answer, err := provider.Chat(context.Background(), []Message{
		{Role: RoleSystem, Content: "Anweisung"},
		{Role: RoleUser, Content: "  Wie geht das?  "},
	}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(answer, "Wie geht das?") {
		t.Fatalf("expected echoed user message, got %q", answer)
	}
	if provider.Name() != "local" {
		t.Fatalf("expected provider name local, got %q", provider.Name())
	}
}

func TestLocalProviderRejectsEmptyInput(t *testing.T) {
	if _, err := NewLocalProvider().Chat(context.Background(), nil, ""); err == nil {
		t.Fatalf("expected error for empty message list")
	}
}

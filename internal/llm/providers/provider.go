// File path: internal/llm/providers/provider.go
package providers

import "context"

type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Provider is a chat completion backend. Implementations must honor the
// context deadline; the resolver bounds every call with a timeout. An empty
// model selects the provider's configured default.
type Provider interface {
	Chat(ctx context.Context, messages []Message, model string) (string, error)
	Name() string
}

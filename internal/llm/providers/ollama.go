// File path: internal/llm/providers/ollama.go
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"

	"hansebot/internal/common"
)

type OllamaProvider struct {
	client *ollama.LLM
	model  string
}

// NewOllamaProvider connects to a local Ollama server. Construction does not
// probe the server; use Ping for a reachability check at startup.
func NewOllamaProvider(serverURL, model string) (*OllamaProvider, error) {
	client, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("ollama client: %w", err)
	}
	logger := common.Logger()
	logger.Info("llm: ollama provider configured", "server", serverURL, "model", model)
	return &OllamaProvider{client: client, model: model}, nil
}

func (o *OllamaProvider) Chat(ctx context.Context, messages []Message, model string) (string, error) {
	if o.client == nil {
		return "", fmt.Errorf("nil ollama client")
	}
	if strings.TrimSpace(model) == "" {
		model = o.model
	}
	logger := common.Logger()
	logger.Debug("llm: sending chat request", "model", model, "messages", len(messages))
	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		role := schema.ChatMessageTypeHuman
		if strings.EqualFold(msg.Role, RoleSystem) {
			role = schema.ChatMessageTypeSystem
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}
	resp, err := o.client.GenerateContent(ctx, content, llms.WithModel(model))
	if err != nil {
		logger.Error("llm: chat request failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: chat request succeeded")
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// Ping issues a minimal generation to verify the server and model respond.
func (o *OllamaProvider) Ping(ctx context.Context) error {
	_, err := o.client.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, "ping")},
		llms.WithModel(o.model))
	return err
}

func (o *OllamaProvider) Name() string {
	return "ollama"
}

// File path: internal/llm/providers/openai_client.go
package providers

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v2"

	"hansebot/internal/common"
)

type OpenAIProvider struct {
	client openai.Client
	model  string
}

func NewOpenAIProvider(client openai.Client, model string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	logger := common.Logger()
	logger.Info("llm: openai provider configured", "chat_model", model)
	return &OpenAIProvider{client: client, model: model}
}

func (o *OpenAIProvider) Chat(ctx context.Context, messages []Message, model string) (string, error) {
	if strings.TrimSpace(model) == "" {
		model = o.model
	}
	logger := common.Logger()
	logger.Debug("llm: sending chat completion request", "model", model, "messages", len(messages))
	params := openai.ChatCompletionNewParams{Model: openai.ChatModel(model)}
	for _, msg := range messages {
		if strings.EqualFold(msg.Role, RoleSystem) {
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		} else {
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}
	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: chat completion succeeded")
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAIProvider) Name() string {
	return "openai"
}

// File path: internal/llm/llm.go
package llm

import (
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"hansebot/internal/common"
	"hansebot/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

const (
	defaultOllamaURL   = "http://localhost:11434"
	defaultOllamaModel = "llama3.2"
)

// NewProvider selects the completion backend from the environment. An
// OPENAI_API_KEY switches to the hosted OpenAI API; otherwise a local Ollama
// server is used. When the Ollama client cannot be constructed the local
// echo stub keeps the pipeline functional.
func NewProvider() Provider {
	logger := common.Logger()
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey != "" {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
			logger.Info("llm: configuring openai client with custom endpoint", "endpoint", endpoint)
			opts = append(opts, option.WithBaseURL(endpoint))
		}
		client := openai.NewClient(opts...)
		logger.Info("llm: openai provider selected")
		return providers.NewOpenAIProvider(client, strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL")))
	}
	serverURL := strings.TrimSpace(os.Getenv("OLLAMA_URL"))
	if serverURL == "" {
		serverURL = defaultOllamaURL
	}
	model := strings.TrimSpace(os.Getenv("OLLAMA_MODEL"))
	if model == "" {
		model = defaultOllamaModel
	}
	provider, err := providers.NewOllamaProvider(serverURL, model)
	if err != nil {
		logger.Warn("llm: ollama client unavailable; falling back to local provider", "error", err)
		return providers.NewLocalProvider()
	}
	logger.Info("llm: ollama provider selected", "server", serverURL)
	return provider
}

// File path: cmd/hansebot/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hansebot/internal/api"
	"hansebot/internal/common"
	"hansebot/internal/knowledge"
	"hansebot/internal/llm"
	"hansebot/internal/llm/providers"
	"hansebot/internal/resolver"
)

func main() {
	logger := common.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logger.Warn("hansebot: .env file not loaded", "error", err)
	} else {
		logger.Info("hansebot: environment loaded from .env")
	}

	addr := flag.String("addr", envOr("HANSEBOT_ADDR", ":8080"), "listen address")
	knowledgeDir := flag.String("knowledge", envOr("HANSEBOT_KNOWLEDGE_DIR", "knowledge"), "directory holding knowledge source files")
	backendTimeout := flag.String("backend-timeout", envOr("HANSEBOT_BACKEND_TIMEOUT", ""), "timeout for a completion backend call (e.g. 5s)")
	mediumPolicy := flag.String("medium-policy", envOr("HANSEBOT_MEDIUM_POLICY", ""), "handling of medium-confidence matches: verbatim or context")
	flag.Parse()

	logger.Info("hansebot: startup initiated", "addr", *addr, "knowledge", *knowledgeDir)

	source, err := knowledge.NewDirSource(*knowledgeDir)
	if err != nil {
		logger.Error("hansebot: knowledge directory unavailable", "error", err)
		fmt.Println("knowledge directory error:", err)
		os.Exit(1)
	}
	store := knowledge.NewStore(source)
	entries, err := store.Load(ctx, true)
	if err != nil {
		logger.Error("hansebot: initial knowledge load failed", "error", err)
		fmt.Println("knowledge load error:", err)
		os.Exit(1)
	}
	logger.Info("hansebot: knowledge loaded", "entries", len(entries))

	provider := llm.NewProvider()
	logger.Info("hansebot: llm provider ready", "provider", provider.Name())
	probeBackend(ctx, provider)

	cfg := resolver.Config{}
	if trimmed := strings.TrimSpace(*backendTimeout); trimmed != "" {
		dur, err := time.ParseDuration(trimmed)
		if err != nil {
			logger.Error("hansebot: invalid backend timeout", "value", trimmed, "error", err)
			fmt.Println("backend timeout error:", err)
			os.Exit(1)
		}
		cfg.BackendTimeout = dur
	}
	switch policy := strings.ToLower(strings.TrimSpace(*mediumPolicy)); policy {
	case "":
	case string(resolver.MediumVerbatim), string(resolver.MediumContext):
		cfg.MediumPolicy = resolver.MediumPolicy(policy)
	default:
		logger.Error("hansebot: invalid medium policy", "value", policy)
		fmt.Println("medium policy error: must be verbatim or context")
		os.Exit(1)
	}

	res := resolver.New(store, provider, cfg)
	server, err := api.NewServer(res)
	if err != nil {
		logger.Error("hansebot: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("hansebot: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("hansebot: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

// probeBackend checks once at startup that the local backend responds.
// Failures are logged but not fatal: the resolver answers most traffic from
// intents and the knowledge base, and falls back gracefully otherwise.
func probeBackend(ctx context.Context, provider llm.Provider) {
	logger := common.Logger()
	pinger, ok := provider.(*providers.OllamaProvider)
	if !ok {
		return
	}
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pinger.Ping(probeCtx); err != nil {
		logger.Warn("hansebot: completion backend unreachable", "error", err)
		return
	}
	logger.Info("hansebot: completion backend reachable")
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

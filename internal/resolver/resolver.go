// File path: internal/resolver/resolver.go
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hansebot/internal/common"
	"hansebot/internal/intent"
	"hansebot/internal/knowledge"
	"hansebot/internal/llm"
	"hansebot/internal/match"
	"hansebot/internal/textnorm"
)

// Kind classifies which pipeline stage produced the answer.
type Kind string

const (
	KindNavigation     Kind = "navigation"
	KindConversational Kind = "conversational"
	KindKnowledge      Kind = "knowledge"
	KindDelegated      Kind = "delegated"
	KindFallback       Kind = "fallback"
)

// MediumPolicy decides what happens with matches between the decision and
// high-confidence thresholds. "verbatim" answers directly from the entry;
// "context" delegates to the backend with the match as grounding.
type MediumPolicy string

const (
	MediumVerbatim MediumPolicy = "verbatim"
	MediumContext  MediumPolicy = "context"
)

const fallbackAnswer = "Entschuldigung, ich kann Ihre Frage gerade nicht beantworten. " +
	"Bitte versuchen Sie es spaeter erneut oder wenden Sie sich an unseren Kundenservice."

var ErrEmptyUtterance = errors.New("empty utterance")

// Resolution is the outcome of one pipeline run.
type Resolution struct {
	TraceID         string  `json:"trace_id"`
	Answer          string  `json:"answer"`
	Kind            Kind    `json:"kind"`
	Intent          string  `json:"intent,omitempty"`
	Confidence      float64 `json:"confidence,omitempty"`
	MatchedQuestion string  `json:"matched_question,omitempty"`
	Source          string  `json:"source"`
	FromCache       bool    `json:"from_cache"`
}

type Config struct {
	HighThreshold  float64
	MediumPolicy   MediumPolicy
	BackendTimeout time.Duration
	CacheSize      int
}

func (c Config) withDefaults() Config {
	if c.HighThreshold <= 0 {
		c.HighThreshold = 0.75
	}
	if c.MediumPolicy == "" {
		c.MediumPolicy = MediumVerbatim
	}
	if c.BackendTimeout <= 0 {
		c.BackendTimeout = 5 * time.Second
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 512
	}
	return c
}

// Resolver runs an utterance through the intent and knowledge pipeline and
// falls back to the completion backend when no local stage answers.
type Resolver struct {
	store    *knowledge.Store
	provider llm.Provider
	cache    *responseCache
	cfg      Config
}

func New(store *knowledge.Store, provider llm.Provider, cfg Config) *Resolver {
	cfg = cfg.withDefaults()
	return &Resolver{
		store:    store,
		provider: provider,
		cache:    newResponseCache(cfg.CacheSize),
		cfg:      cfg,
	}
}

// Resolve answers a single utterance. Stages run in fixed priority order:
// navigation intent, conversational intent, cached response, knowledge
// match, backend delegation. An empty model selects the provider's default.
// Backend failures yield a fixed German fallback rather than an error, so
// the caller always gets an answer.
func (r *Resolver) Resolve(ctx context.Context, utterance, model string) (Resolution, error) {
	logger := common.Logger()
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return Resolution{}, ErrEmptyUtterance
	}
	traceID := uuid.NewString()

	if navIntent, ack, ok := intent.Navigation(trimmed); ok {
		logger.Info("resolver: navigation intent", "trace_id", traceID, "intent", string(navIntent))
		return Resolution{
			TraceID: traceID,
			Answer:  ack,
			Kind:    KindNavigation,
			Intent:  string(navIntent),
			Source:  "intent",
		}, nil
	}
	if reply, ok := intent.Conversational(trimmed); ok {
		logger.Info("resolver: conversational intent", "trace_id", traceID)
		return Resolution{
			TraceID: traceID,
			Answer:  reply,
			Kind:    KindConversational,
			Source:  "intent",
		}, nil
	}

	cacheKey := textnorm.Normalize(trimmed).Normalized
	if cached, ok := r.cache.Get(cacheKey); ok {
		cached.TraceID = traceID
		cached.FromCache = true
		logger.Debug("resolver: cache hit", "trace_id", traceID, "utterance", cacheKey)
		return cached, nil
	}

	resolution := r.answer(ctx, traceID, trimmed, model)
	if resolution.Kind != KindFallback && cacheKey != "" {
		r.cache.Set(cacheKey, resolution)
	}
	return resolution, nil
}

func (r *Resolver) answer(ctx context.Context, traceID, utterance, model string) Resolution {
	logger := common.Logger()
	entries, err := r.store.Entries(ctx)
	if err != nil {
		logger.Error("resolver: knowledge load failed", "trace_id", traceID, "error", err)
		entries = nil
	}
	if result, ok := match.FindBestMatch(utterance, entries); ok {
		if result.Confidence >= r.cfg.HighThreshold || r.cfg.MediumPolicy == MediumVerbatim {
			logger.Info("resolver: knowledge match",
				"trace_id", traceID,
				"question", result.Entry.Question,
				"confidence", result.Confidence,
			)
			return Resolution{
				TraceID:         traceID,
				Answer:          result.Entry.Answer,
				Kind:            KindKnowledge,
				Confidence:      result.Confidence,
				MatchedQuestion: result.Entry.Question,
				Source:          "knowledge",
			}
		}
		logger.Info("resolver: medium-confidence match, delegating with context",
			"trace_id", traceID,
			"question", result.Entry.Question,
			"confidence", result.Confidence,
		)
	}

	return r.delegate(ctx, traceID, utterance, model, entries)
}

// delegate hands the utterance to the completion backend with a grounded
// system prompt. Every call is bounded by the configured timeout.
func (r *Resolver) delegate(ctx context.Context, traceID, utterance, model string, entries []knowledge.Entry) Resolution {
	logger := common.Logger()
	if r.provider == nil {
		logger.Warn("resolver: no completion backend configured", "trace_id", traceID)
		return r.fallback(traceID)
	}
	ranked := match.Rank(utterance, entries, maxPromptEntries)
	prompt := buildSystemPrompt(ranked, entries)

	callCtx, cancel := context.WithTimeout(ctx, r.cfg.BackendTimeout)
	defer cancel()
	answer, err := r.provider.Chat(callCtx, []llm.Message{
		{Role: "system", Content: prompt},
		{Role: "user", Content: utterance},
	}, model)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("resolver: backend timed out",
				"trace_id", traceID,
				"provider", r.provider.Name(),
				"timeout", r.cfg.BackendTimeout,
			)
		} else {
			logger.Error("resolver: backend call failed",
				"trace_id", traceID,
				"provider", r.provider.Name(),
				"error", err,
			)
		}
		return r.fallback(traceID)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		logger.Warn("resolver: backend returned empty answer", "trace_id", traceID)
		return r.fallback(traceID)
	}
	logger.Info("resolver: delegated answer", "trace_id", traceID, "provider", r.provider.Name())
	return Resolution{
		TraceID: traceID,
		Answer:  answer,
		Kind:    KindDelegated,
		Source:  r.provider.Name(),
	}
}

func (r *Resolver) fallback(traceID string) Resolution {
	return Resolution{
		TraceID: traceID,
		Answer:  fallbackAnswer,
		Kind:    KindFallback,
		Source:  "fallback",
	}
}

// RefreshKnowledge reloads the knowledge sources and drops all cached
// responses so answers never outlive the knowledge they were built from.
// With force false only an initial load is performed when nothing has been
// loaded yet.
func (r *Resolver) RefreshKnowledge(ctx context.Context, force bool) (int, error) {
	entries, err := r.store.Load(ctx, force)
	if err != nil {
		return 0, fmt.Errorf("refresh knowledge: %w", err)
	}
	r.cache.Purge()
	common.Logger().Info("resolver: knowledge refreshed", "entries", len(entries), "forced", force)
	return len(entries), nil
}

// ClearResponseCache drops cached responses without touching the store.
func (r *Resolver) ClearResponseCache() int {
	n := r.cache.Len()
	r.cache.Purge()
	common.Logger().Info("resolver: response cache cleared", "dropped", n)
	return n
}

// Entries exposes the current knowledge snapshot for the read endpoint.
func (r *Resolver) Entries(ctx context.Context) ([]knowledge.Entry, error) {
	return r.store.Entries(ctx)
}

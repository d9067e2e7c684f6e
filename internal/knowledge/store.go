// File path: internal/knowledge/store.go
package knowledge

import (
	"context"
	"sync"
	"time"

	"hansebot/internal/common"
)

// Store owns the unified entry set. The set is replaced wholesale under a
// single lock on every (re)load; readers see either the old or the new
// sequence, never a partial one. Invalidation is explicit: a loaded set stays
// current until someone calls Load with force=true, there is no TTL.
type Store struct {
	mu      sync.RWMutex
	sources []Source
	parsers []Parser

	entries    []Entry
	lastLoaded time.Time
	loaded     bool
}

func NewStore(sources ...Source) *Store {
	return &Store{sources: sources, parsers: defaultParsers()}
}

// Entries returns the current entry set, loading lazily on first use.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	return s.Load(ctx, false)
}

// Load returns the entry set, re-reading all sources when force is true or
// nothing has been loaded yet. A source that fails entirely is skipped with a
// warning; resolution keeps working on the partial set. When every source
// contributes zero entries the built-in defaults are synthesized.
func (s *Store) Load(ctx context.Context, force bool) ([]Entry, error) {
	s.mu.RLock()
	if s.loaded && !force {
		entries := s.entries
		s.mu.RUnlock()
		return entries, nil
	}
	s.mu.RUnlock()

	logger := common.Logger()
	var collected []Entry
	for _, source := range s.sources {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		records, err := source.List(ctx)
		if err != nil {
			logger.Warn("knowledge: source unavailable, skipped", "source", source.Name(), "error", err)
			continue
		}
		for _, rec := range records {
			entries := s.parseRecord(ctx, rec)
			collected = append(collected, entries...)
		}
	}
	if len(collected) == 0 {
		collected = DefaultEntries(ctx)
		logger.Warn("knowledge: no source contributed entries, using built-in defaults", "entries", len(collected))
	}

	s.mu.Lock()
	s.entries = collected
	s.lastLoaded = time.Now()
	s.loaded = true
	s.mu.Unlock()

	logger.Info("knowledge: store loaded", "entries", len(collected), "sources", len(s.sources), "forced", force)
	return collected, nil
}

// parseRecord converts any parse failure into zero contributed entries plus
// a warning; a malformed file must never take resolution down.
func (s *Store) parseRecord(ctx context.Context, rec Record) []Entry {
	logger := common.Logger()
	for _, parser := range s.parsers {
		if !parser.Match(rec.Format) {
			continue
		}
		entries, err := parser.Parse(ctx, rec)
		if err != nil {
			logger.Warn("knowledge: record unparseable, skipped", "source", rec.ID, "parser", parser.Name(), "error", err)
			return nil
		}
		logger.Debug("knowledge: record parsed", "source", rec.ID, "parser", parser.Name(), "entries", len(entries))
		return entries
	}
	logger.Warn("knowledge: no parser for record format", "source", rec.ID, "format", rec.Format)
	return nil
}

// LastLoaded reports when the current set was read. Zero when nothing has
// been loaded yet.
func (s *Store) LastLoaded() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastLoaded
}

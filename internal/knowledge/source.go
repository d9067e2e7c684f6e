// File path: internal/knowledge/source.go
package knowledge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hansebot/internal/common"
)

// DirSource serves every knowledge file found in one directory. The file
// extension declares the format: .txt is delimited, .json and .yaml/.yml are
// structured. Files are listed in name order so the entry sequence is stable
// across reloads.
type DirSource struct {
	root string
}

// NewDirSource creates the directory if it does not exist yet.
func NewDirSource(root string) (*DirSource, error) {
	trimmed := strings.TrimSpace(root)
	if trimmed == "" {
		return nil, fmt.Errorf("knowledge dir required")
	}
	if err := os.MkdirAll(trimmed, 0o755); err != nil {
		return nil, fmt.Errorf("create knowledge dir: %w", err)
	}
	return &DirSource{root: trimmed}, nil
}

func (s *DirSource) Name() string { return "dir:" + s.root }

// Root returns the backing directory.
func (s *DirSource) Root() string { return s.root }

func (s *DirSource) List(ctx context.Context) ([]Record, error) {
	logger := common.Logger()
	names, err := s.knowledgeFiles()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		// First start on an empty directory: persist the built-in set so the
		// system is queryable and operators have a template to edit.
		if err := s.seedDefaults(); err != nil {
			logger.Warn("knowledge: seeding default file failed", "dir", s.root, "error", err)
		} else {
			logger.Info("knowledge: default knowledge file created", "dir", s.root, "file", defaultSeedName)
		}
		if names, err = s.knowledgeFiles(); err != nil {
			return nil, err
		}
	}
	records := make([]Record, 0, len(names))
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		raw, err := os.ReadFile(filepath.Join(s.root, name))
		if err != nil {
			logger.Warn("knowledge: file unreadable, skipped", "file", name, "error", err)
			continue
		}
		records = append(records, Record{ID: name, Format: formatForFile(name), Raw: raw})
	}
	return records, nil
}

func (s *DirSource) knowledgeFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read knowledge dir: %w", err)
	}
	var names []string
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		if formatForFile(dirEntry.Name()) == "" {
			continue
		}
		names = append(names, dirEntry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (s *DirSource) seedDefaults() error {
	return os.WriteFile(filepath.Join(s.root, defaultSeedName), []byte(defaultSeedText), 0o644)
}

func formatForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return FormatDelimited
	case ".json":
		return FormatStructuredJSON
	case ".yaml", ".yml":
		return FormatStructuredYAML
	default:
		return ""
	}
}

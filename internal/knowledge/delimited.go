// File path: internal/knowledge/delimited.go
package knowledge

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"hansebot/internal/common"
)

// DelimitedParser reads the pipe-delimited FAQ format:
//
//	question | comma-separated keywords | answer
//
// Lines starting with # and blank lines are comments. A line with fewer
// than three fields is dropped without aborting the file.
type DelimitedParser struct{}

func (DelimitedParser) Name() string { return "delimited" }

func (DelimitedParser) Match(format string) bool { return format == FormatDelimited }

func (DelimitedParser) Parse(ctx context.Context, rec Record) ([]Entry, error) {
	logger := common.Logger()
	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(rec.Raw))
	scanner.Buffer(make([]byte, 64<<10), 1<<20)
	line := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return entries, ctx.Err()
		default:
		}
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, "|")
		if len(parts) < 3 {
			logger.Debug("knowledge: delimited line skipped", "source", rec.ID, "line", line, "fields", len(parts))
			continue
		}
		question := strings.TrimSpace(parts[0])
		keywords := splitKeywords(parts[1])
		// Answers may legitimately contain pipes; everything after the
		// second delimiter belongs to the answer.
		answer := strings.TrimSpace(strings.Join(parts[2:], "|"))
		entry, ok := NewEntry(question, answer, keywords, "", rec.ID)
		if !ok {
			logger.Debug("knowledge: delimited line incomplete", "source", rec.ID, "line", line)
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func splitKeywords(field string) []string {
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

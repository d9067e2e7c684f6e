// File path: internal/knowledge/structured.go
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"hansebot/internal/common"
)

// StructuredParser reads JSON and YAML knowledge documents. Three shapes are
// accepted, tried in this order:
//
//  1. an envelope {meta, categories: [{id, name}], faqs: [...]} where each
//     faq names its category by id;
//  2. a flat list of records carrying at least question and answer;
//  3. an arbitrarily nested mapping where a string leaf under a string key is
//     a question/answer pair and every object key labels the category of its
//     subtree.
//
// A document matching none of the shapes fails closed: zero entries.
type StructuredParser struct{}

func (StructuredParser) Name() string { return "structured" }

func (StructuredParser) Match(format string) bool {
	return format == FormatStructuredJSON || format == FormatStructuredYAML
}

func (StructuredParser) Parse(ctx context.Context, rec Record) ([]Entry, error) {
	var doc interface{}
	switch rec.Format {
	case FormatStructuredJSON:
		if err := json.Unmarshal(rec.Raw, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatStructuredYAML:
		if err := yaml.Unmarshal(rec.Raw, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", rec.Format)
	}
	switch shaped := doc.(type) {
	case []interface{}:
		return parseFlat(shaped, rec.ID), nil
	case map[string]interface{}:
		if rawFaqs, present := shaped["faqs"]; present {
			faqs, ok := rawFaqs.([]interface{})
			if !ok {
				// A faqs key marks the document as an envelope; a
				// non-list value there is malformed, not a nested tree.
				common.Logger().Warn("knowledge: envelope faqs is not a list", "source", rec.ID)
				return nil, nil
			}
			return parseEnvelope(shaped, faqs, rec.ID), nil
		}
		return parseNested(shaped, rec.ID), nil
	default:
		common.Logger().Warn("knowledge: structured document has no recognizable shape", "source", rec.ID)
		return nil, nil
	}
}

func parseEnvelope(doc map[string]interface{}, faqs []interface{}, sourceID string) []Entry {
	logger := common.Logger()
	categories := make(map[string]string)
	if rawCategories, ok := doc["categories"].([]interface{}); ok {
		for _, raw := range rawCategories {
			category, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			id := asString(category["id"])
			name := strings.TrimSpace(asString(category["name"]))
			if id != "" && name != "" {
				categories[id] = name
			}
		}
	}
	var entries []Entry
	for _, raw := range faqs {
		record, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		categoryName := categories[asString(record["category_id"])]
		entry, ok := NewEntry(
			asString(record["question"]),
			asString(record["answer"]),
			asStringSlice(record["keywords"]),
			categoryName,
			sourceID,
		)
		if !ok {
			logger.Debug("knowledge: envelope faq incomplete", "source", sourceID)
			continue
		}
		entry.Tags = asStringSlice(record["tags"])
		entries = append(entries, entry)
	}
	return entries
}

func parseFlat(records []interface{}, sourceID string) []Entry {
	logger := common.Logger()
	var entries []Entry
	for _, raw := range records {
		record, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		category := strings.TrimSpace(strings.TrimPrefix(asString(record["category_id"]), "cat_"))
		entry, ok := NewEntry(
			asString(record["question"]),
			asString(record["answer"]),
			asStringSlice(record["keywords"]),
			category,
			sourceID,
		)
		if !ok {
			logger.Debug("knowledge: flat record incomplete", "source", sourceID)
			continue
		}
		entry.Tags = asStringSlice(record["tags"])
		entries = append(entries, entry)
	}
	return entries
}

func parseNested(tree map[string]interface{}, sourceID string) []Entry {
	var entries []Entry
	walkNested(tree, DefaultCategory, sourceID, &entries)
	return entries
}

// walkNested visits keys in sorted order so repeated loads of the same
// document yield the same entry sequence.
func walkNested(node map[string]interface{}, category, sourceID string, entries *[]Entry) {
	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch value := node[key].(type) {
		case string:
			if entry, ok := NewEntry(key, value, nil, category, sourceID); ok {
				*entries = append(*entries, entry)
			}
		case map[string]interface{}:
			walkNested(value, key, sourceID, entries)
		}
	}
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
	case int:
		return fmt.Sprintf("%d", v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func asStringSlice(value interface{}) []string {
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := strings.TrimSpace(asString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

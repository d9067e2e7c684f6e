// File path: internal/match/engine.go
package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"hansebot/internal/common"
	"hansebot/internal/knowledge"
	"hansebot/internal/textnorm"
)

// Result is one ranked knowledge match. Confidence is an unbounded heuristic
// score; Reasons lists every rule that contributed to it, for diagnostics.
type Result struct {
	Entry      knowledge.Entry
	Confidence float64
	Reasons    []string
}

// Decision thresholds. Short queries need a cleaner signal because they are
// more prone to coincidental matches.
const (
	exactScore       = 3.0
	shortThreshold   = 0.4
	defaultThreshold = 0.3
)

// queryContext holds everything precomputed once per utterance.
type queryContext struct {
	raw        string
	normalized string
	tokens     []string
	short      bool
	products   []string
	categories []string
}

// matchContext holds the per-entry state the scoring rules operate on.
// Rules run in table order; specialHits is written by the keyword rule and
// read by the special-bonus rule.
type matchContext struct {
	query         *queryContext
	entry         knowledge.Entry
	questionNorm  string
	questionWords map[string]struct{}
	answerNorm    string
	specialHits   int
}

type scoringRule struct {
	name  string
	score func(*matchContext) float64
}

// The engine is a pure fold over this table: each rule is independently
// testable and the total confidence is the sum of all contributions.
var scoringRules = []scoringRule{
	{name: "containment", score: containmentScore},
	{name: "keywords", score: keywordScore},
	{name: "special-keywords", score: specialKeywordBonus},
	{name: "token-overlap", score: tokenOverlapScore},
	{name: "product-in-title", score: productTitleBonus},
	{name: "domain-term", score: domainTermBonus},
	{name: "category", score: categoryBonus},
	{name: "answer-term", score: answerTermBonus},
	{name: "missing-keywords", score: missingKeywordPenalty},
}

// FindBestMatch scores every entry against the utterance and returns the
// best one above the confidence threshold. Short utterances without any
// domain-term signal abort immediately: they are assumed conversational, not
// knowledge queries.
func FindBestMatch(utterance string, entries []knowledge.Entry) (*Result, bool) {
	logger := common.Logger()
	query := buildQueryContext(utterance)
	if query.normalized == "" || len(entries) == 0 {
		return nil, false
	}
	if query.short && !hasDomainSignal(query.tokens) {
		logger.Debug("match: short query without domain signal, aborting", "utterance", query.normalized)
		return nil, false
	}
	threshold := defaultThreshold
	if query.short {
		threshold = shortThreshold
	}
	var candidates []Result
	for _, entry := range entries {
		result := scoreEntry(query, entry)
		if result.Confidence > threshold {
			candidates = append(candidates, result)
		}
	}
	if len(candidates) == 0 {
		logger.Debug("match: no entry cleared threshold", "utterance", query.normalized, "threshold", threshold)
		return nil, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	best := candidates[0]
	logger.Debug("match: best candidate",
		"question", best.Entry.Question,
		"confidence", best.Confidence,
		"reasons", strings.Join(best.Reasons, " "),
	)
	return &best, true
}

// Rank returns up to limit entries ordered by descending score, ignoring
// thresholds. Used for prompt grounding, where weak matches are still more
// useful than arbitrary entries.
func Rank(utterance string, entries []knowledge.Entry, limit int) []knowledge.Entry {
	query := buildQueryContext(utterance)
	if query.normalized == "" || len(entries) == 0 || limit <= 0 {
		return nil
	}
	var scored []Result
	for _, entry := range entries {
		result := scoreEntry(query, entry)
		if result.Confidence > 0 {
			scored = append(scored, result)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	ranked := make([]knowledge.Entry, 0, len(scored))
	for _, result := range scored {
		ranked = append(ranked, result.Entry)
	}
	return ranked
}

func buildQueryContext(utterance string) *queryContext {
	raw := strings.ToLower(strings.TrimSpace(utterance))
	res := textnorm.Normalize(raw)
	tokens := make([]string, 0, len(res.Tokens))
	for _, token := range res.Tokens {
		if len([]rune(token)) > 2 {
			tokens = append(tokens, token)
		}
	}
	var products []string
	for _, name := range productNames {
		if strings.Contains(res.Normalized, name) {
			products = append(products, name)
		}
	}
	return &queryContext{
		raw:        raw,
		normalized: res.Normalized,
		tokens:     tokens,
		short:      len(res.Tokens) <= 2,
		products:   products,
		categories: categoriesIn(res.Normalized),
	}
}

func scoreEntry(query *queryContext, entry knowledge.Entry) Result {
	questionNorm := textnorm.Normalize(entry.Question).Normalized
	words := make(map[string]struct{})
	for _, token := range textnorm.QueryTokens(entry.Question) {
		words[token] = struct{}{}
	}
	mc := &matchContext{
		query:         query,
		entry:         entry,
		questionNorm:  questionNorm,
		questionWords: words,
		answerNorm:    textnorm.Normalize(entry.Answer).Normalized,
	}
	result := Result{Entry: entry}
	for _, rule := range scoringRules {
		contribution := rule.score(mc)
		if contribution == 0 {
			continue
		}
		result.Confidence += contribution
		result.Reasons = append(result.Reasons, fmt.Sprintf("%s=%.2f", rule.name, contribution))
	}
	return result
}

// containmentScore measures how much of the entry question's text the
// utterance accounts for. Exact equality, or an utterance carrying the whole
// question plus extra words, earns the fixed top score. Otherwise the rune
// length of the question tokens found in the utterance is set against the
// question's full length; extra utterance words can only add coverage, never
// erode what is already covered.
func containmentScore(mc *matchContext) float64 {
	u, q := mc.query.normalized, mc.questionNorm
	if q == "" {
		return 0
	}
	if u == q || strings.Contains(u, q) {
		return exactScore
	}
	var covered float64
	seen := make(map[string]struct{}, len(mc.query.tokens))
	for _, token := range mc.query.tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, ok := mc.questionWords[token]; ok {
			covered += float64(len([]rune(token)))
		}
	}
	if covered == 0 {
		return 0
	}
	return 1.2 * covered / float64(len([]rune(q)))
}

// keywordScore awards a boost per matching keyword, weighted higher for
// product-name keywords. A keyword found in the utterance earns its full
// weight; a keyword merely covering one of the utterance tokens earns the
// weight scaled by the longest such token. Both checks survive any extension
// of the utterance, so a keyword never loses its boost when more words are
// typed. The sum is dampened by the square root of the keyword count so
// entries with very many keywords cannot dominate on volume alone.
func keywordScore(mc *matchContext) float64 {
	if len(mc.entry.Keywords) == 0 {
		return 0
	}
	u := mc.query.normalized
	var sum float64
	for _, kw := range mc.entry.Keywords {
		special := IsProductName(kw)
		weight := 0.5
		if special {
			weight = 0.9
		}
		var matched float64
		if strings.Contains(u, kw) {
			matched = 1
		} else {
			kwLen := float64(len([]rune(kw)))
			for _, token := range mc.query.tokens {
				if !strings.Contains(kw, token) {
					continue
				}
				if ratio := float64(len([]rune(token))) / kwLen; ratio > matched {
					matched = ratio
				}
			}
		}
		if matched == 0 {
			continue
		}
		sum += weight * matched
		if special {
			mc.specialHits++
		}
	}
	if sum == 0 {
		return 0
	}
	score := sum / math.Sqrt(float64(len(mc.entry.Keywords)))
	if mc.query.short {
		score *= 0.7
	}
	return score
}

func specialKeywordBonus(mc *matchContext) float64 {
	return 0.25 * float64(mc.specialHits)
}

// tokenOverlapScore counts distinct utterance tokens present in the entry
// question's own token set, normalized over the question's token count.
// Anchoring the denominator on the entry keeps the ratio from shrinking as
// the utterance grows. Word overlap is a noisier signal than containment or
// keyword match, so it carries a smaller multiplier for short queries.
func tokenOverlapScore(mc *matchContext) float64 {
	if len(mc.query.tokens) == 0 || len(mc.questionWords) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(mc.query.tokens))
	var sum float64
	for _, token := range mc.query.tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, ok := mc.questionWords[token]; !ok {
			continue
		}
		if IsProductName(token) {
			sum += 0.5
		} else {
			sum += 0.3
		}
	}
	if sum == 0 {
		return 0
	}
	score := sum / float64(len(mc.questionWords))
	if mc.query.short {
		score *= 0.5
	}
	return score
}

// productTitleBonus fires when the utterance names a product and the entry's
// raw question contains the full utterance.
func productTitleBonus(mc *matchContext) float64 {
	if len(mc.query.products) == 0 || mc.query.raw == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(mc.entry.Question), mc.query.raw) {
		return 0.5
	}
	return 0
}

// domainTermBonus rewards the first important term shared by the utterance
// and the entry's question or keywords. First match only, to avoid
// double-counting correlated terms.
func domainTermBonus(mc *matchContext) float64 {
	for _, term := range allImportantTerms() {
		if !strings.Contains(mc.query.normalized, term) {
			continue
		}
		if strings.Contains(mc.questionNorm, term) || keywordContains(mc.entry.Keywords, term) {
			if IsProductName(term) {
				return 0.4
			}
			return 0.25
		}
	}
	return 0
}

// categoryBonus rewards containment between the entry category and the
// utterance, plus a smaller bonus when a recognized category label in the
// utterance equals the entry's category exactly.
func categoryBonus(mc *matchContext) float64 {
	category := textnorm.Normalize(mc.entry.Category).Normalized
	if category == "" {
		return 0
	}
	var score float64
	if strings.Contains(mc.query.normalized, category) || strings.Contains(category, mc.query.normalized) {
		score += 0.3
	}
	for _, label := range mc.query.categories {
		if label == category {
			score += 0.15
			break
		}
	}
	return score
}

// answerTermBonus mirrors domainTermBonus against the answer text, with a
// smaller weight. First match only.
func answerTermBonus(mc *matchContext) float64 {
	for _, term := range allImportantTerms() {
		if strings.Contains(mc.query.normalized, term) && strings.Contains(mc.answerNorm, term) {
			return 0.15
		}
	}
	return 0
}

// missingKeywordPenalty discourages entries whose keyword set is mostly
// irrelevant to the query, even when one keyword matched strongly.
func missingKeywordPenalty(mc *matchContext) float64 {
	var missing int
	for _, kw := range mc.entry.Keywords {
		if !strings.Contains(mc.query.normalized, kw) {
			missing++
		}
	}
	return -0.05 * float64(missing)
}

func keywordContains(keywords []string, term string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, term) {
			return true
		}
	}
	return false
}

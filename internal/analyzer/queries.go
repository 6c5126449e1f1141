package analyzer

import (
	"strings"

	"github.com/dijital/ragnostics/internal/domain"
)

// MaxQueryDisplayLen caps the query text carried in records and reports.
const MaxQueryDisplayLen = 100

// LongQueryThreshold is the length above which a query gets a length issue
// and a low tier is upgraded to medium.
const LongQueryThreshold = 500

// Phrase lists for the complexity rules. Matching is case-insensitive
// substring matching.
var (
	aggregationPhrases = []string{"sum of all", "total across", "average across", "aggregate", "combine all"}
	executionPhrases   = []string{"calculate", "compute", "solve for"}
	lookupPhrases      = []string{"what is", "find", "show me", "retrieve", "get", "list"}
	reasoningPhrases   = []string{"why", "because", "reason", "cause", "analyze", "compare", "evaluate", "versus", " vs "}
	temporalPhrases    = []string{"latest", "current", "today", "real-time", "most recent", "now", "up to date"}
	multiStepPhrases   = []string{" and then ", " after that ", "step by step", "followed by"}

	// correlationPhrases mark cross-document analysis attempts. They are
	// checked in a separate pass, additive to the tier classification.
	correlationPhrases = []string{"across all", "correlation between", "common themes", "compare all", "patterns across", "relationship between"}
)

// complexityRule is one (predicate, tier, issue) entry of the classifier.
// Rules are evaluated in priority order and the first match wins.
type complexityRule struct {
	matches func(lower string) bool
	tier    domain.Complexity
	issue   string
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// complexityRules in strict precedence order: aggregation > execution >
// simple-lookup exception > reasoning > temporal > multi-step. Once a rule
// fires, lower-priority rules are not evaluated for that query.
var complexityRules = []complexityRule{
	{
		matches: func(q string) bool { return containsAny(q, aggregationPhrases) },
		tier:    domain.ComplexityHigh,
		issue:   "Aggregation query - RAG cannot combine information across sources",
	},
	{
		matches: func(q string) bool { return containsAny(q, executionPhrases) },
		tier:    domain.ComplexityHigh,
		issue:   "Requires computation - RAG cannot execute calculations",
	},
	{
		matches: func(q string) bool { return containsAny(q, lookupPhrases) && strings.Contains(q, "table") },
		tier:    domain.ComplexityLow,
		issue:   "Table lookup - may work if the table is small",
	},
	{
		matches: func(q string) bool { return containsAny(q, reasoningPhrases) },
		tier:    domain.ComplexityMedium,
		issue:   "Requires reasoning, not just retrieval",
	},
	{
		matches: func(q string) bool { return containsAny(q, temporalPhrases) },
		tier:    domain.ComplexityMedium,
		issue:   "Requires live data - a RAG corpus is static",
	},
	{
		matches: func(q string) bool { return containsAny(q, multiStepPhrases) },
		tier:    domain.ComplexityMedium,
		issue:   "Multi-step query - needs decomposition into sub-queries",
	},
}

// ClassifyQuery assigns exactly one complexity tier to a query using the
// ordered rules, then applies the independent length check, which only ever
// upgrades a low tier to medium.
func ClassifyQuery(query string) (domain.Complexity, []string) {
	lower := strings.ToLower(query)

	tier := domain.ComplexityLow
	var issues []string

	matched := false
	for _, rule := range complexityRules {
		if rule.matches(lower) {
			tier = rule.tier
			issues = append(issues, rule.issue)
			matched = true
			break
		}
	}
	if !matched {
		issues = append(issues, "Appears suitable for RAG retrieval")
	}

	if len(query) > LongQueryThreshold {
		issues = append(issues, "Very long query - consider splitting it up")
		if tier == domain.ComplexityLow {
			tier = domain.ComplexityMedium
		}
	}

	return tier, issues
}

// IsCorrelationAttempt reports whether a query implies cross-document
// analysis that retrieval-only systems cannot perform.
func IsCorrelationAttempt(query string) bool {
	return containsAny(strings.ToLower(query), correlationPhrases)
}

// AnalyzeQueries classifies a batch of queries and scores the batch.
// Empty and whitespace-only queries are skipped entirely: not counted,
// not scored.
func AnalyzeQueries(queries []string) *domain.QueryAnalysis {
	analysis := &domain.QueryAnalysis{}

	for _, raw := range queries {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		tier, issues := ClassifyQuery(raw)
		rec := domain.QueryRecord{
			Index:      len(analysis.Queries) + 1,
			Text:       truncate(raw, MaxQueryDisplayLen),
			Complexity: tier,
			Issues:     issues,
		}
		analysis.Queries = append(analysis.Queries, rec)

		switch tier {
		case domain.ComplexityHigh:
			analysis.ImpossibleQueries = append(analysis.ImpossibleQueries, rec.Text)
		case domain.ComplexityMedium:
			analysis.ProblematicPatterns = append(analysis.ProblematicPatterns, rec.Text)
		}

		if IsCorrelationAttempt(raw) {
			analysis.CorrelationAttempts = append(analysis.CorrelationAttempts, rec.Text)
		}
	}

	analysis.TotalQueries = len(analysis.Queries)
	analysis.Score = QueryScore(analysis)
	return analysis
}

// truncate shortens s to max characters, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

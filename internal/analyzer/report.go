package analyzer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dijital/ragnostics/internal/domain"
)

// topN caps detail lists in the text rendering.
const (
	topRecommendations = 5
	topQueryDetails    = 3
)

// BuildReport merges up to three analyses (any may be nil) plus an optional
// probe result into one report. The stored scores are the ones each
// analysis computed; nothing is rescored here.
func BuildReport(dir *domain.DirectoryStats, docs *domain.DocumentAnalysis, queries *domain.QueryAnalysis, probe *domain.ProbeResult) *domain.Report {
	overall := OverallScore(dir, docs, queries)

	return &domain.Report{
		Version:      domain.ReportVersion,
		GeneratedAt:  time.Now().UTC(),
		OverallScore: overall,
		Verdict:      VerdictFor(overall),
		Directory:    dir,
		Documents:    docs,
		Queries:      queries,
		Probe:        probe,
	}
}

// RenderJSON serializes the report as an indented JSON document.
func RenderJSON(r *domain.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return data, nil
}

// RenderText produces the human-readable sectioned report. It reads the
// same data the JSON rendering carries.
func RenderText(r *domain.Report) string {
	var sb strings.Builder

	sb.WriteString("RAGnostics Feasibility Report\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("OVERALL RAG FEASIBILITY: %.0f%%\n", r.OverallScore))
	sb.WriteString(verdictSentence(r.Verdict) + "\n")

	if r.Directory != nil {
		writeDirectorySection(&sb, r.Directory)
	}
	if r.Documents != nil {
		writeDocumentSection(&sb, r.Documents)
	}
	if r.Queries != nil {
		writeQuerySection(&sb, r.Queries)
	}
	if r.Probe != nil {
		writeProbeSection(&sb, r.Probe)
	}

	writeFinalRecommendations(&sb, r)

	return sb.String()
}

func verdictSentence(v domain.Verdict) string {
	switch v {
	case domain.VerdictSuitable:
		return "RAG is likely suitable for this corpus and query mix."
	case domain.VerdictWithOptimizing:
		return "RAG may work, but only with the optimizations listed below."
	default:
		return "RAG is not recommended here - consider the alternatives listed below."
	}
}

func writeDirectorySection(sb *strings.Builder, dir *domain.DirectoryStats) {
	sb.WriteString("\nDIRECTORY ANALYSIS\n")
	sb.WriteString(fmt.Sprintf("- Root: %s\n", dir.Root))
	sb.WriteString(fmt.Sprintf("- Directory score: %.0f%%\n", dir.Score))
	sb.WriteString(fmt.Sprintf("- Files: %d (%.2f MB total)\n", dir.TotalFiles, dir.TotalSizeMB))
	sb.WriteString(fmt.Sprintf("- Subdirectories: %d (max depth %d)\n", dir.SubdirCount, dir.MaxDepth))
	sb.WriteString(fmt.Sprintf("- Noise level: %s\n", dir.NoiseLevel))
	sb.WriteString(fmt.Sprintf("- File buckets: %s\n", formatCounts(dir.CategoryCounts)))

	if len(dir.OversizedFiles) > 0 {
		sb.WriteString(fmt.Sprintf("- Oversized files (>10 MB): %d\n", len(dir.OversizedFiles)))
	}

	if dir.CorrelationWarning {
		sb.WriteString("\nCORRELATION WARNING\n")
		sb.WriteString("The folder structure is deep and wide, which usually means users will\n")
		sb.WriteString("ask questions that span silos. Retrieval returns passages from single\n")
		sb.WriteString("documents; it cannot correlate across them.\n")
	}

	if len(dir.Problems) > 0 {
		sb.WriteString("\nProblems:\n")
		for _, p := range dir.Problems {
			sb.WriteString(fmt.Sprintf("- %s\n", p))
		}
	}

	if len(dir.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range firstN(dir.Recommendations, topRecommendations) {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
	}
}

func writeDocumentSection(sb *strings.Builder, docs *domain.DocumentAnalysis) {
	sb.WriteString("\nDOCUMENT ANALYSIS\n")
	sb.WriteString(fmt.Sprintf("- Total files: %d\n", docs.TotalFiles))
	sb.WriteString(fmt.Sprintf("- Document score: %.0f%%\n", docs.Score))

	if len(docs.CategoryCounts) > 0 {
		counts := make(map[string]int, len(docs.CategoryCounts))
		for cat, n := range docs.CategoryCounts {
			counts[string(cat)] = n
		}
		sb.WriteString(fmt.Sprintf("- File types: %s\n", formatCounts(counts)))
	}

	if n := docs.CategoryCounts[domain.CategoryStructured]; n > 0 {
		sb.WriteString(fmt.Sprintf("- Warning: %d structured file(s) - these belong in a database, not a vector index\n", n))
	}
	if n := docs.CategoryCounts[domain.CategoryImage]; n > 0 {
		sb.WriteString(fmt.Sprintf("- Warning: %d image file(s) - text retrieval cannot read them\n", n))
	}

	for _, w := range docs.Warnings {
		sb.WriteString(fmt.Sprintf("- Warning: %s\n", w))
	}
}

func writeQuerySection(sb *strings.Builder, queries *domain.QueryAnalysis) {
	sb.WriteString("\nQUERY ANALYSIS\n")
	sb.WriteString(fmt.Sprintf("- Total queries: %d\n", queries.TotalQueries))
	sb.WriteString(fmt.Sprintf("- Query score: %.0f%%\n", queries.Score))

	writeQueryDetail(sb, "Correlation attempts", queries.CorrelationAttempts)
	writeQueryDetail(sb, "Impossible queries", queries.ImpossibleQueries)
	writeQueryDetail(sb, "Problematic patterns", queries.ProblematicPatterns)
}

func writeQueryDetail(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("- %s: %d\n", label, len(items)))
	for _, item := range firstN(items, topQueryDetails) {
		sb.WriteString(fmt.Sprintf("  * %s\n", item))
	}
}

func writeProbeSection(sb *strings.Builder, probe *domain.ProbeResult) {
	sb.WriteString("\nRETRIEVAL PROBE (lexical)\n")
	sb.WriteString(fmt.Sprintf("- Indexed files: %d\n", probe.IndexedFiles))
	sb.WriteString(fmt.Sprintf("- Query coverage: %.0f%%\n", probe.Coverage*100))
	for _, hit := range probe.Hits {
		if hit.Hits == 0 {
			sb.WriteString(fmt.Sprintf("  * no hits: %s\n", hit.Query))
			continue
		}
		sb.WriteString(fmt.Sprintf("  * %d hit(s): %s (top: %s)\n", hit.Hits, hit.Query, hit.TopFile))
	}
}

// writeFinalRecommendations branches on the verdict tier. For the lowest
// tier the suggestions are keyed off whichever risk factors are actually
// present in the analyses.
func writeFinalRecommendations(sb *strings.Builder, r *domain.Report) {
	sb.WriteString("\nRECOMMENDATION\n")

	switch r.Verdict {
	case domain.VerdictSuitable:
		sb.WriteString("- Proceed with a standard RAG pipeline\n")
		sb.WriteString("- Start with a small pilot corpus and measure answer quality before scaling\n")
		sb.WriteString("- Chunk documents by structure (headings, sections) rather than fixed size\n")

	case domain.VerdictWithOptimizing:
		sb.WriteString("- RAG can work here with preprocessing\n")
		sb.WriteString("- Separate structured data from prose before indexing\n")
		sb.WriteString("- Curate the corpus: drop binary, duplicate, and low-value files\n")
		sb.WriteString("- Rephrase analytical queries into lookup-style questions where possible\n")

	default:
		sb.WriteString("- RAG alone will not serve this workload. Alternatives:\n")
		for _, alt := range alternativesFor(r) {
			sb.WriteString(fmt.Sprintf("- %s\n", alt))
		}
	}
}

// alternativesFor selects alternative architectures based on which risk
// factors are present.
func alternativesFor(r *domain.Report) []string {
	var alts []string

	structuredHeavy := false
	if r.Documents != nil && r.Documents.CategoryCounts[domain.CategoryStructured] > 0 {
		structuredHeavy = true
	}
	if r.Directory != nil && r.Directory.CategoryCounts[bucketStructured] > 0 {
		structuredHeavy = true
	}
	if structuredHeavy {
		alts = append(alts, "Structured data: use text-to-SQL over a real database instead of retrieval")
	}

	if r.Queries != nil {
		if len(r.Queries.ImpossibleQueries) > 0 {
			alts = append(alts, "Calculations/aggregations: route these queries to a code-execution or analytics tool")
		}
		if len(r.Queries.CorrelationAttempts) > 0 {
			alts = append(alts, "Cross-document correlation: build a summarization or knowledge-graph layer above retrieval")
		}
	}

	if r.Directory != nil && (r.Directory.NoiseLevel == domain.NoiseHigh || r.Directory.NoiseLevel == domain.NoiseExtreme) {
		alts = append(alts, "Noisy corpus: invest in curation and metadata filtering before any retrieval system")
	}

	if len(alts) == 0 {
		alts = append(alts, "Re-evaluate with a representative sample of documents and real user queries")
	}

	return alts
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// formatCounts renders a count map with deterministic key order.
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		name := k
		if name == "" {
			name = "(none)"
		}
		parts = append(parts, fmt.Sprintf("%s=%d", name, counts[k]))
	}
	return strings.Join(parts, ", ")
}

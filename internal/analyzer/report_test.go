package analyzer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dijital/ragnostics/internal/domain"
)

func TestBuildReport_VersionAndVerdict(t *testing.T) {
	queries := AnalyzeQueries([]string{"describe the onboarding process"})
	report := BuildReport(nil, nil, queries, nil)

	if report.Version != domain.ReportVersion {
		t.Errorf("expected version %d, got %d", domain.ReportVersion, report.Version)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("report must carry a generation timestamp")
	}
	if report.OverallScore != 100 || report.Verdict != domain.VerdictSuitable {
		t.Errorf("one harmless query should be fully suitable, got %f/%s", report.OverallScore, report.Verdict)
	}
}

func TestBuildReport_NoInputs(t *testing.T) {
	report := BuildReport(nil, nil, nil, nil)
	if report.OverallScore != 0 {
		t.Errorf("no inputs must score 0, got %f", report.OverallScore)
	}
	if report.Verdict != domain.VerdictNotRecommended {
		t.Errorf("unexpected verdict: %s", report.Verdict)
	}
}

// The JSON document and the text rendering must carry the same scores:
// re-deriving the overall score from the unmarshaled document has to match
// the score computed directly.
func TestReport_JSONRoundTrip(t *testing.T) {
	docs := &domain.DocumentAnalysis{
		TotalFiles: 4,
		CategoryCounts: map[domain.FileCategory]int{
			domain.CategoryText:       2,
			domain.CategoryStructured: 2,
		},
	}
	docs.Score = DocumentScore(docs)

	queries := AnalyzeQueries([]string{
		"sum of all invoices",
		"describe the onboarding process",
	})

	report := BuildReport(nil, docs, queries, nil)

	data, err := RenderJSON(report)
	if err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var decoded domain.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}

	if decoded.Documents.Score != report.Documents.Score {
		t.Errorf("document score drifted: %f != %f", decoded.Documents.Score, report.Documents.Score)
	}
	if decoded.Queries.Score != report.Queries.Score {
		t.Errorf("query score drifted: %f != %f", decoded.Queries.Score, report.Queries.Score)
	}
	if decoded.OverallScore != report.OverallScore {
		t.Errorf("overall score drifted: %f != %f", decoded.OverallScore, report.OverallScore)
	}

	rederived := OverallScore(decoded.Directory, decoded.Documents, decoded.Queries)
	if rederived != report.OverallScore {
		t.Errorf("re-derived overall %f != original %f", rederived, report.OverallScore)
	}
}

func TestRenderText_Sections(t *testing.T) {
	queries := AnalyzeQueries([]string{"why did the deployment fail"})
	report := BuildReport(nil, nil, queries, nil)
	text := RenderText(report)

	if !strings.Contains(text, "OVERALL RAG FEASIBILITY") {
		t.Error("missing overall verdict line")
	}
	if !strings.Contains(text, "QUERY ANALYSIS") {
		t.Error("missing query section")
	}
	if strings.Contains(text, "DIRECTORY ANALYSIS") || strings.Contains(text, "DOCUMENT ANALYSIS") {
		t.Error("absent analyses must not render sections")
	}
	if !strings.Contains(text, "RECOMMENDATION") {
		t.Error("missing final recommendations section")
	}
}

func TestRenderText_QueryDetailCapped(t *testing.T) {
	queries := AnalyzeQueries([]string{
		"sum of all a", "sum of all b", "sum of all c", "sum of all d", "sum of all e",
	})
	report := BuildReport(nil, nil, queries, nil)
	text := RenderText(report)

	if !strings.Contains(text, "Impossible queries: 5") {
		t.Error("detail header should carry the full count")
	}
	if got := strings.Count(text, "  * "); got != 3 {
		t.Errorf("detail list should be capped at 3, got %d entries", got)
	}
}

func TestRenderText_AlternativesKeyedOffRisks(t *testing.T) {
	docs := &domain.DocumentAnalysis{
		TotalFiles:     2,
		CategoryCounts: map[domain.FileCategory]int{domain.CategoryStructured: 2},
	}
	docs.Score = DocumentScore(docs)

	queries := AnalyzeQueries([]string{
		"calculate revenue per region",
		"correlation between teams and velocity",
		"sum of all budgets across all departments",
	})

	report := BuildReport(nil, docs, queries, nil)
	if report.Verdict != domain.VerdictNotRecommended {
		t.Fatalf("fixture should land in the lowest tier, got %s (%f)", report.Verdict, report.OverallScore)
	}

	text := RenderText(report)
	if !strings.Contains(text, "text-to-SQL") {
		t.Error("structured risk should suggest text-to-SQL")
	}
	if !strings.Contains(text, "code-execution") {
		t.Error("calculation risk should suggest a code-execution tool")
	}
	if !strings.Contains(text, "knowledge-graph") {
		t.Error("correlation risk should suggest a correlation-capable layer")
	}
}

func TestVerdictSentence_NoEmoji(t *testing.T) {
	for _, v := range []domain.Verdict{domain.VerdictSuitable, domain.VerdictWithOptimizing, domain.VerdictNotRecommended} {
		for _, r := range verdictSentence(v) {
			if r > 0x7F {
				t.Errorf("verdict sentence for %s must be plain ASCII, found %q", v, r)
			}
		}
	}
}

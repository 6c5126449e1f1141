package domain

import "time"

// FileCategory classifies a document file by its format family.
type FileCategory string

// File categories recognized by the document classifier.
const (
	CategoryText       FileCategory = "text"
	CategoryPDF        FileCategory = "pdf"
	CategoryOffice     FileCategory = "office"
	CategoryStructured FileCategory = "structured"
	CategoryCode       FileCategory = "code"
	CategoryWeb        FileCategory = "web"
	CategoryImage      FileCategory = "image"
	CategoryUnknown    FileCategory = "unknown"
)

// Confidence expresses how certain a compatibility rule is about its verdict.
type Confidence string

// Confidence tiers.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Complexity is the query complexity tier assigned by the query classifier.
type Complexity string

// Complexity tiers.
const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// NoiseLevel buckets how many irrelevant files likely dilute retrieval.
type NoiseLevel string

// Noise levels derived from directory file counts.
const (
	NoiseLow     NoiseLevel = "low"
	NoiseMedium  NoiseLevel = "medium"
	NoiseHigh    NoiseLevel = "high"
	NoiseExtreme NoiseLevel = "extreme"
)

// Verdict is the overall feasibility tier derived from the combined score.
type Verdict string

// Verdict tiers. Thresholds: >=70 suitable, 40-69 optimize, <40 not recommended.
const (
	VerdictSuitable       Verdict = "suitable"
	VerdictWithOptimizing Verdict = "suitable_with_optimization"
	VerdictNotRecommended Verdict = "not_recommended"
)

// FileRecord describes a single classified document file.
type FileRecord struct {
	// Path is the file path as supplied by the caller.
	Path string `json:"path"`

	// Extension is the lowercased file extension including the dot.
	// Empty when the file has no extension.
	Extension string `json:"extension"`

	// SizeBytes is the file size from a stat call, or 0 if the stat failed.
	SizeBytes int64 `json:"size_bytes"`

	// Category is the format family derived from the extension.
	Category FileCategory `json:"category"`
}

// FileCompatibility is the per-file RAG suitability verdict.
type FileCompatibility struct {
	SuitableForRAG  bool       `json:"suitable_for_rag"`
	Confidence      Confidence `json:"confidence"`
	Issues          []string   `json:"issues"`
	Recommendations []string   `json:"recommendations,omitempty"`
	SizeMB          float64    `json:"size_mb"`
}

// QueryRecord is a single classified query within a batch.
type QueryRecord struct {
	// Index is the 1-based position within the batch.
	Index int `json:"index"`

	// Text is the raw query, truncated to 100 characters for display.
	Text string `json:"query"`

	Complexity Complexity `json:"complexity"`
	Issues     []string   `json:"issues"`
}

// OversizedFile records a file above the oversize threshold found by a scan.
type OversizedFile struct {
	Path      string  `json:"path"`
	SizeMB    float64 `json:"size_mb"`
	Extension string  `json:"extension"`
}

// DirectoryStats aggregates one scan pass over a directory tree.
type DirectoryStats struct {
	Root        string  `json:"root"`
	TotalFiles  int     `json:"total_files"`
	TotalSizeMB float64 `json:"total_size_mb"`

	// CategoryCounts tallies the scanner's structural buckets:
	// structured, compatible, problematic, unknown.
	CategoryCounts map[string]int `json:"category_counts"`

	// ExtensionCounts tallies files per lowercased extension.
	ExtensionCounts map[string]int `json:"extension_counts"`

	// MaxDepth is the deepest subdirectory's path-segment count
	// relative to the root.
	MaxDepth    int `json:"max_depth"`
	SubdirCount int `json:"subdir_count"`

	OversizedFiles []OversizedFile `json:"oversized_files,omitempty"`

	NoiseLevel         NoiseLevel `json:"noise_level"`
	CorrelationWarning bool       `json:"correlation_warning"`

	Problems        []string `json:"problems,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`

	Score float64 `json:"score"`
}

// DocumentAnalysis is the result of classifying a batch of file paths.
type DocumentAnalysis struct {
	TotalFiles     int                          `json:"total_files"`
	CategoryCounts map[FileCategory]int         `json:"file_types"`
	Files          []FileRecord                 `json:"files"`
	Compatibility  map[string]FileCompatibility `json:"rag_compatibility"`
	Warnings       []string                     `json:"warnings,omitempty"`
	Score          float64                      `json:"score"`
}

// QueryAnalysis is the result of classifying a batch of queries.
type QueryAnalysis struct {
	TotalQueries int           `json:"total_queries"`
	Queries      []QueryRecord `json:"queries"`

	// CorrelationAttempts lists queries implying cross-document analysis,
	// reported independently of the complexity tiers.
	CorrelationAttempts []string `json:"correlation_attempts,omitempty"`

	// ImpossibleQueries lists high-tier queries (aggregation/execution).
	ImpossibleQueries []string `json:"impossible_queries,omitempty"`

	// ProblematicPatterns lists medium-tier queries.
	ProblematicPatterns []string `json:"problematic_patterns,omitempty"`

	Score float64 `json:"score"`
}

// ProbeHit is one query's lexical retrieval coverage from the probe index.
type ProbeHit struct {
	Query   string  `json:"query"`
	Hits    uint64  `json:"hits"`
	TopFile string  `json:"top_file,omitempty"`
	Score   float64 `json:"top_score,omitempty"`
}

// ProbeResult summarizes the optional lexical retrieval probe.
// The probe supplements the report and never feeds any score.
type ProbeResult struct {
	IndexedFiles int        `json:"indexed_files"`
	Hits         []ProbeHit `json:"hits"`

	// Coverage is the fraction of probed queries with at least one hit.
	Coverage float64 `json:"coverage"`
}

// ReportVersion is the current schema version of the report document.
const ReportVersion = 1

// Report is the full analysis result. It is the single source for both
// the text rendering and the JSON document: the two carry identical data.
type Report struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`

	OverallScore float64 `json:"overall_score"`
	Verdict      Verdict `json:"verdict"`

	Directory *DirectoryStats   `json:"directory_analysis,omitempty"`
	Documents *DocumentAnalysis `json:"document_analysis,omitempty"`
	Queries   *QueryAnalysis    `json:"query_analysis,omitempty"`
	Probe     *ProbeResult      `json:"retrieval_probe,omitempty"`
}

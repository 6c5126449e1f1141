// Package analyzer implements the RAG feasibility scoring engine:
// file and query classification, directory scanning, score aggregation,
// and report synthesis. All heuristics are fixed rules; nothing here
// parses document content, embeds, or calls a model.
package analyzer

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dijital/ragnostics/internal/domain"
)

// Size thresholds for per-file compatibility checks.
const (
	// MaxChunkableSize is the size above which a file needs a chunking strategy.
	MaxChunkableSize = 50 * 1024 * 1024

	// MinUsefulSize is the size below which a file is likely empty or truncated.
	MinUsefulSize = 100
)

// categoryByExtension maps lowercased extensions to format families.
var categoryByExtension = map[string]domain.FileCategory{
	".txt": domain.CategoryText,
	".md":  domain.CategoryText,
	".rst": domain.CategoryText,

	".pdf": domain.CategoryPDF,

	".docx": domain.CategoryOffice,
	".doc":  domain.CategoryOffice,
	".pptx": domain.CategoryOffice,
	".ppt":  domain.CategoryOffice,

	".xlsx": domain.CategoryStructured,
	".xls":  domain.CategoryStructured,
	".csv":  domain.CategoryStructured,
	".json": domain.CategoryStructured,
	".xml":  domain.CategoryStructured,

	".py":   domain.CategoryCode,
	".js":   domain.CategoryCode,
	".java": domain.CategoryCode,
	".cpp":  domain.CategoryCode,
	".c":    domain.CategoryCode,
	".go":   domain.CategoryCode,
	".rs":   domain.CategoryCode,

	".html": domain.CategoryWeb,
	".htm":  domain.CategoryWeb,

	".png":  domain.CategoryImage,
	".jpg":  domain.CategoryImage,
	".jpeg": domain.CategoryImage,
	".gif":  domain.CategoryImage,
	".bmp":  domain.CategoryImage,
	".tiff": domain.CategoryImage,
	".webp": domain.CategoryImage,
}

// CategoryForPath returns the format family for a file path. Extensions not
// in the static table fall back to a MIME-type guess before "unknown".
func CategoryForPath(path string) domain.FileCategory {
	ext := strings.ToLower(filepath.Ext(path))

	if cat, ok := categoryByExtension[ext]; ok {
		return cat
	}

	switch mimeType := mime.TypeByExtension(ext); {
	case strings.HasPrefix(mimeType, "text/"):
		return domain.CategoryText
	case strings.HasPrefix(mimeType, "image/"):
		return domain.CategoryImage
	}

	return domain.CategoryUnknown
}

// ClassifyFile builds a FileRecord from a path and a stat call.
// A file that cannot be stat'ed is treated as size 0 rather than failing.
func ClassifyFile(path string) domain.FileRecord {
	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	return domain.FileRecord{
		Path:      path,
		Extension: strings.ToLower(filepath.Ext(path)),
		SizeBytes: size,
		Category:  CategoryForPath(path),
	}
}

// CheckCompatibility computes the per-file RAG suitability verdict.
// Size rules apply first, then category rules layer on top. The result is
// deterministic given (category, size).
func CheckCompatibility(rec domain.FileRecord) domain.FileCompatibility {
	comp := domain.FileCompatibility{
		SuitableForRAG: true,
		Confidence:     domain.ConfidenceMedium,
		Issues:         []string{},
		SizeMB:         roundMB(rec.SizeBytes),
	}

	if rec.SizeBytes > MaxChunkableSize {
		comp.Issues = append(comp.Issues, fmt.Sprintf("Large file (%.2f MB) - will need a chunking strategy", comp.SizeMB))
		comp.Confidence = domain.ConfidenceLow
	}
	if rec.SizeBytes < MinUsefulSize {
		comp.SuitableForRAG = false
		comp.Issues = append(comp.Issues, "File too small - possibly empty or truncated")
		comp.Confidence = domain.ConfidenceLow
	}

	switch rec.Category {
	case domain.CategoryStructured:
		comp.SuitableForRAG = false
		comp.Confidence = domain.ConfidenceHigh
		comp.Issues = append(comp.Issues, "Structured data - use SQL or a database query layer instead of RAG")
	case domain.CategoryImage:
		comp.SuitableForRAG = false
		comp.Confidence = domain.ConfidenceHigh
		comp.Issues = append(comp.Issues, "Image file - use OCR or a vision model, not text retrieval")
	case domain.CategoryUnknown:
		comp.SuitableForRAG = false
		comp.Confidence = domain.ConfidenceMedium
		comp.Issues = append(comp.Issues, "Unsupported file format")
	case domain.CategoryCode:
		comp.Issues = append(comp.Issues, "Code files may need specialized code embeddings")
	case domain.CategoryPDF:
		comp.Confidence = domain.ConfidenceHigh
		comp.Recommendations = append(comp.Recommendations, "PDF is a well-supported RAG input format")
	}

	return comp
}

// AnalyzeDocuments classifies a batch of file paths and scores the batch.
// Missing files are recorded as warnings and excluded from the tallies.
func AnalyzeDocuments(paths []string) *domain.DocumentAnalysis {
	analysis := &domain.DocumentAnalysis{
		CategoryCounts: make(map[domain.FileCategory]int),
		Compatibility:  make(map[string]domain.FileCompatibility),
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			analysis.Warnings = append(analysis.Warnings, fmt.Sprintf("File not found: %s", path))
			continue
		}

		rec := ClassifyFile(path)
		analysis.Files = append(analysis.Files, rec)
		analysis.CategoryCounts[rec.Category]++
		analysis.Compatibility[rec.Path] = CheckCompatibility(rec)
	}

	analysis.TotalFiles = len(analysis.Files)
	analysis.Score = DocumentScore(analysis)
	return analysis
}

// roundMB converts a byte count to megabytes rounded to two decimals.
func roundMB(bytes int64) float64 {
	mb := float64(bytes) / (1024 * 1024)
	return float64(int64(mb*100+0.5)) / 100
}

package analyzer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dijital/ragnostics/internal/domain"
)

// Scanner thresholds. These are fixed constants of the heuristics.
const (
	// OversizedFileBytes flags individual files worth calling out.
	OversizedFileBytes = 10 * 1024 * 1024

	// noise level file-count thresholds
	noiseExtremeFiles = 10000
	noiseHighFiles    = 1000
	noiseMediumFiles  = 100

	// correlation heuristic: deep, wide trees suggest cross-silo analysis intent
	correlationSubdirs  = 20
	correlationMaxDepth = 3

	// structural problem thresholds
	structuredRatioLimit    = 0.3
	totalSizeLimitMB        = 1000
	extensionDiversityLimit = 10
)

// Scanner bucket names. These extension sets are structural buckets,
// intentionally coarser than the document classifier's format families.
const (
	bucketStructured  = "structured"
	bucketCompatible  = "compatible"
	bucketProblematic = "problematic"
	bucketUnknown     = "unknown"
)

var scanBuckets = map[string]string{
	// spreadsheet/database formats
	".xlsx": bucketStructured, ".xls": bucketStructured, ".csv": bucketStructured,
	".tsv": bucketStructured, ".json": bucketStructured, ".xml": bucketStructured,
	".db": bucketStructured, ".sqlite": bucketStructured, ".sqlite3": bucketStructured,
	".parquet": bucketStructured,

	// prose/document formats
	".txt": bucketCompatible, ".md": bucketCompatible, ".rst": bucketCompatible,
	".pdf": bucketCompatible, ".doc": bucketCompatible, ".docx": bucketCompatible,
	".rtf": bucketCompatible, ".html": bucketCompatible, ".htm": bucketCompatible,

	// binary/media/archive formats
	".exe": bucketProblematic, ".dll": bucketProblematic, ".so": bucketProblematic,
	".dylib": bucketProblematic, ".bin": bucketProblematic,
	".zip": bucketProblematic, ".tar": bucketProblematic, ".gz": bucketProblematic,
	".rar": bucketProblematic, ".7z": bucketProblematic, ".jar": bucketProblematic,
	".png": bucketProblematic, ".jpg": bucketProblematic, ".jpeg": bucketProblematic,
	".gif": bucketProblematic, ".bmp": bucketProblematic,
	".mp3": bucketProblematic, ".mp4": bucketProblematic, ".wav": bucketProblematic,
	".avi": bucketProblematic, ".mov": bucketProblematic, ".mkv": bucketProblematic,
	".iso": bucketProblematic,
}

// scanBucket returns the structural bucket for a file path.
func scanBucket(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if bucket, ok := scanBuckets[ext]; ok {
		return bucket
	}
	return bucketUnknown
}

// ScanDirectory enumerates all files under root in one pass and derives the
// structural risk signals. A missing or non-directory root is an explicit
// error; individual unreadable entries are treated as size 0 and skipped
// over, never aborting the scan.
func ScanDirectory(root string, recursive bool) (*domain.DirectoryStats, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %q is not a directory", root)
	}

	stats := &domain.DirectoryStats{
		Root:            root,
		CategoryCounts:  make(map[string]int),
		ExtensionCounts: make(map[string]int),
	}

	var totalBytes int64
	addFile := func(path string, size int64) {
		stats.TotalFiles++
		totalBytes += size

		ext := strings.ToLower(filepath.Ext(path))
		stats.ExtensionCounts[ext]++
		stats.CategoryCounts[scanBucket(path)]++

		if size > OversizedFileBytes {
			stats.OversizedFiles = append(stats.OversizedFiles, domain.OversizedFile{
				Path:      path,
				SizeMB:    roundMB(size),
				Extension: ext,
			})
		}
	}

	if recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			if path == root {
				return nil
			}

			relPath, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}

			if d.IsDir() {
				stats.SubdirCount++
				depth := len(strings.Split(filepath.ToSlash(relPath), "/"))
				if depth > stats.MaxDepth {
					stats.MaxDepth = depth
				}
				return nil
			}

			var size int64
			if info, err := d.Info(); err == nil {
				size = info.Size()
			}
			addFile(path, size)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", root, err)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", root, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				stats.SubdirCount++
				if stats.MaxDepth < 1 {
					stats.MaxDepth = 1
				}
				continue
			}
			var size int64
			if info, err := entry.Info(); err == nil {
				size = info.Size()
			}
			addFile(filepath.Join(root, entry.Name()), size)
		}
	}

	stats.TotalSizeMB = roundMB(totalBytes)
	deriveSignals(stats)
	stats.Score = DirectoryScore(stats)

	return stats, nil
}

// deriveSignals fills in noise level, correlation warning, problems, and
// recommendations from the raw tallies.
func deriveSignals(stats *domain.DirectoryStats) {
	switch {
	case stats.TotalFiles > noiseExtremeFiles:
		stats.NoiseLevel = domain.NoiseExtreme
	case stats.TotalFiles > noiseHighFiles:
		stats.NoiseLevel = domain.NoiseHigh
	case stats.TotalFiles > noiseMediumFiles:
		stats.NoiseLevel = domain.NoiseMedium
	default:
		stats.NoiseLevel = domain.NoiseLow
	}

	stats.CorrelationWarning = stats.SubdirCount > correlationSubdirs && stats.MaxDepth > correlationMaxDepth

	structured := stats.CategoryCounts[bucketStructured]
	compatible := stats.CategoryCounts[bucketCompatible]
	problematic := stats.CategoryCounts[bucketProblematic]

	if stats.TotalFiles > 0 {
		if ratio := float64(structured) / float64(stats.TotalFiles); ratio > structuredRatioLimit {
			stats.Problems = append(stats.Problems,
				fmt.Sprintf("%.0f%% of files are structured data - RAG retrieves text, it does not query tables", ratio*100))
		}
	}
	if problematic > compatible {
		stats.Problems = append(stats.Problems,
			"Binary/media files outnumber document files - most of the corpus is not retrievable text")
	}
	if stats.TotalSizeMB > totalSizeLimitMB {
		stats.Problems = append(stats.Problems,
			fmt.Sprintf("Corpus is %.0f MB - embedding and index costs will be significant", stats.TotalSizeMB))
	}

	stats.Recommendations = recommendationsFor(stats)
}

// recommendationsFor generates mitigations from the derived flags, in a
// fixed order.
func recommendationsFor(stats *domain.DirectoryStats) []string {
	var recs []string

	switch stats.NoiseLevel {
	case domain.NoiseExtreme:
		recs = append(recs, "File count is extreme - curate a focused subset before indexing anything")
	case domain.NoiseHigh:
		recs = append(recs, "High file count - filter out irrelevant files to protect retrieval precision")
	case domain.NoiseMedium:
		recs = append(recs, "Moderate file count - consider per-folder collections to narrow retrieval scope")
	}

	if stats.CorrelationWarning {
		recs = append(recs, "Deep, wide folder structure suggests cross-silo questions - RAG retrieves passages, it does not join them")
	}

	structured := stats.CategoryCounts[bucketStructured]
	if stats.TotalFiles > 0 && float64(structured)/float64(stats.TotalFiles) > structuredRatioLimit {
		recs = append(recs, "Load structured files into a database and pair RAG with SQL generation")
	}

	if len(stats.ExtensionCounts) > extensionDiversityLimit {
		recs = append(recs, "Many distinct file types - normalize to a common text format during ingestion")
	}

	if stats.TotalSizeMB > totalSizeLimitMB {
		recs = append(recs, "Large corpus - budget for incremental indexing and chunk-level deduplication")
	}

	return recs
}

package analyzer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/dijital/ragnostics/internal/domain"
)

// Probe defaults, overridable through settings.
const (
	DefaultProbeMaxFileSize = 256 * 1024
	DefaultProbeMaxFiles    = 500
)

// Probe index field names.
const (
	probeFieldPath    = "path"
	probeFieldContent = "content"
)

// ProbeOptions bound the work the probe is allowed to do.
type ProbeOptions struct {
	MaxFileSize int64
	MaxFiles    int
}

// probeDocument is the unit stored in the probe's in-memory index.
type probeDocument struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// probeMapping builds the index mapping: content analyzed for full-text
// matching, path stored as a keyword for result attribution.
func probeMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	contentField := bleve.NewTextFieldMapping()
	contentField.Analyzer = standard.Name
	contentField.Store = false
	docMapping.AddFieldMappingsAt(probeFieldContent, contentField)

	pathField := bleve.NewTextFieldMapping()
	pathField.Analyzer = keyword.Name
	pathField.Store = true
	docMapping.AddFieldMappingsAt(probeFieldPath, pathField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = standard.Name
	return indexMapping
}

// isProbeCandidate reports whether a file's content can be read as plain
// text without parsing: prose, markup, and code formats qualify.
func isProbeCandidate(path string) bool {
	switch CategoryForPath(path) {
	case domain.CategoryText, domain.CategoryCode, domain.CategoryWeb:
		return true
	}
	return false
}

// isBinary checks the first 512 bytes for null bytes, the same heuristic
// git uses.
func isBinary(content []byte) bool {
	checkLen := min(len(content), 512)
	for i := range checkLen {
		if content[i] == 0 {
			return true
		}
	}
	return false
}

// CollectProbeFiles gathers plain-text candidate paths under root, capped
// at maxFiles. Unreadable entries are skipped.
func CollectProbeFiles(root string, recursive bool, maxFiles int) []string {
	var paths []string

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil
		}
		for _, entry := range entries {
			if len(paths) >= maxFiles {
				break
			}
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(root, entry.Name())
			if isProbeCandidate(path) {
				paths = append(paths, path)
			}
		}
		return paths
	}

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if len(paths) >= maxFiles {
			return filepath.SkipAll
		}
		if d.IsDir() || !isProbeCandidate(path) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})

	return paths
}

// RunProbe indexes the candidate files in memory and runs each query as a
// lexical match query, reporting per-query hit coverage. The probe is
// supplementary: its output never feeds any score.
func RunProbe(paths []string, queries []string, opts ProbeOptions) (*domain.ProbeResult, error) {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultProbeMaxFileSize
	}
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = DefaultProbeMaxFiles
	}

	index, err := bleve.NewMemOnly(probeMapping())
	if err != nil {
		return nil, fmt.Errorf("create probe index: %w", err)
	}
	defer func() { _ = index.Close() }()

	result := &domain.ProbeResult{}

	batch := index.NewBatch()
	for _, path := range paths {
		if result.IndexedFiles >= opts.MaxFiles {
			break
		}
		if !isProbeCandidate(path) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil || info.Size() > opts.MaxFileSize {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil || isBinary(content) {
			continue
		}

		doc := probeDocument{Path: path, Content: string(content)}
		if err := batch.Index(doc.Path, doc); err != nil {
			continue
		}
		result.IndexedFiles++
	}

	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("index probe batch: %w", err)
	}

	answered := 0
	for _, q := range queries {
		matchQuery := bleve.NewMatchQuery(q)
		matchQuery.SetField(probeFieldContent)

		searchReq := bleve.NewSearchRequest(matchQuery)
		searchReq.Size = 1
		searchReq.Fields = []string{probeFieldPath}

		hit := domain.ProbeHit{Query: truncate(q, MaxQueryDisplayLen)}
		if res, err := index.Search(searchReq); err == nil {
			hit.Hits = res.Total
			if len(res.Hits) > 0 {
				hit.Score = res.Hits[0].Score
				if path, ok := res.Hits[0].Fields[probeFieldPath].(string); ok {
					hit.TopFile = path
				}
			}
		}
		if hit.Hits > 0 {
			answered++
		}
		result.Hits = append(result.Hits, hit)
	}

	if len(result.Hits) > 0 {
		result.Coverage = float64(answered) / float64(len(result.Hits))
	}

	return result, nil
}

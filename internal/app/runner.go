package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dijital/ragnostics/internal/analyzer"
	"github.com/dijital/ragnostics/internal/config"
	"github.com/dijital/ragnostics/internal/domain"
)

// ErrNoInput is returned when an analysis run names nothing to analyze.
var ErrNoInput = errors.New("nothing to analyze: provide --docs, --dir, --queries, or --queries-file")

// RunAnalysis executes one full analysis pass: classify the inputs, score
// them, synthesize the report, and write it to the requested sink.
func RunAnalysis(req AnalyzeRequest, settings *config.Settings, out io.Writer) error {
	if !req.HasInput() {
		return ErrNoInput
	}

	queries, err := resolveQueries(req)
	if err != nil {
		return err
	}

	var dirStats *domain.DirectoryStats
	if req.Dir != "" {
		dirStats, err = analyzer.ScanDirectory(req.Dir, req.Recursive)
		if err != nil {
			// A bad scan root is terminal for the scan only; the other
			// analyses still run if anything else was supplied.
			if len(req.Docs) == 0 && len(queries) == 0 {
				return err
			}
			slog.Warn("Directory scan failed, continuing with remaining inputs", "error", err)
		}
	}

	var docs *domain.DocumentAnalysis
	if len(req.Docs) > 0 {
		docs = analyzer.AnalyzeDocuments(req.Docs)
	}

	var queryAnalysis *domain.QueryAnalysis
	if len(queries) > 0 {
		queryAnalysis = analyzer.AnalyzeQueries(queries)
	}

	var probe *domain.ProbeResult
	if req.Probe {
		probe = runProbe(req, queries, settings)
	}

	report := analyzer.BuildReport(dirStats, docs, queryAnalysis, probe)

	var rendered []byte
	if req.AsJSON {
		rendered, err = analyzer.RenderJSON(report)
		if err != nil {
			return err
		}
	} else {
		rendered = []byte(analyzer.RenderText(report))
	}

	if req.OutputPath != "" {
		if err := os.WriteFile(req.OutputPath, rendered, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		slog.Info("Report written", "path", req.OutputPath)
		return nil
	}

	_, err = out.Write(rendered)
	return err
}

// resolveQueries merges literal queries with lines from the queries file.
// Blank lines are dropped; a missing queries file is an error because the
// user explicitly named it.
func resolveQueries(req AnalyzeRequest) ([]string, error) {
	queries := append([]string(nil), req.Queries...)

	if req.QueriesFile != "" {
		data, err := os.ReadFile(req.QueriesFile)
		if err != nil {
			return nil, fmt.Errorf("read queries file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				queries = append(queries, strings.TrimSpace(line))
			}
		}
	}

	return queries, nil
}

// runProbe assembles the probe's candidate files from the request and runs
// it. Probe failures degrade to a log line; the report just omits the
// probe section.
func runProbe(req AnalyzeRequest, queries []string, settings *config.Settings) *domain.ProbeResult {
	if len(queries) == 0 {
		slog.Warn("Probe skipped: no queries to probe with")
		return nil
	}

	opts := analyzer.ProbeOptions{
		MaxFileSize: settings.Probe.MaxFileSize,
		MaxFiles:    settings.Probe.MaxFiles,
	}

	paths := append([]string(nil), req.Docs...)
	if req.Dir != "" {
		paths = append(paths, analyzer.CollectProbeFiles(req.Dir, req.Recursive, opts.MaxFiles)...)
	}

	probe, err := analyzer.RunProbe(paths, queries, opts)
	if err != nil {
		slog.Warn("Retrieval probe failed", "error", err)
		return nil
	}
	return probe
}

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dijital/ragnostics/internal/analyzer"
)

// DirectoryArgument defines the analyze_directory parameters.
type DirectoryArgument struct {
	Path      string `json:"path" jsonschema_description:"Directory to scan for RAG feasibility"`
	Recursive bool   `json:"recursive,omitempty" jsonschema_description:"Scan the full subtree instead of immediate children only"`
}

// FilesArgument defines the analyze_files parameters.
type FilesArgument struct {
	Paths []string `json:"paths" jsonschema_description:"Document file paths to classify"`
}

// QueriesArgument defines the analyze_queries parameters.
type QueriesArgument struct {
	Queries []string `json:"queries" jsonschema_description:"Sample user queries to classify"`
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	result := textResult(text)
	result.IsError = true
	return result
}

// handleAnalyzeDirectory scans a directory tree and reports its feasibility.
func handleAnalyzeDirectory(ctx context.Context, req *mcp.CallToolRequest, args DirectoryArgument) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Path) == "" {
		return errorResult("Path cannot be empty"), nil, nil
	}

	stats, err := analyzer.ScanDirectory(args.Path, args.Recursive)
	if err != nil {
		return errorResult(fmt.Sprintf("Scan failed: %s", err)), nil, nil
	}

	report := analyzer.BuildReport(stats, nil, nil, nil)
	return textResult(analyzer.RenderText(report)), nil, nil
}

// handleAnalyzeFiles classifies a batch of document files.
func handleAnalyzeFiles(ctx context.Context, req *mcp.CallToolRequest, args FilesArgument) (*mcp.CallToolResult, any, error) {
	if len(args.Paths) == 0 {
		return errorResult("Paths cannot be empty"), nil, nil
	}

	docs := analyzer.AnalyzeDocuments(args.Paths)
	report := analyzer.BuildReport(nil, docs, nil, nil)
	return textResult(analyzer.RenderText(report)), nil, nil
}

// handleAnalyzeQueries classifies a batch of sample queries.
func handleAnalyzeQueries(ctx context.Context, req *mcp.CallToolRequest, args QueriesArgument) (*mcp.CallToolResult, any, error) {
	if len(args.Queries) == 0 {
		return errorResult("Queries cannot be empty"), nil, nil
	}

	queries := analyzer.AnalyzeQueries(args.Queries)
	report := analyzer.BuildReport(nil, nil, queries, nil)
	return textResult(analyzer.RenderText(report)), nil, nil
}

// RegisterAnalyzeDirectoryTool registers the analyze_directory tool.
func RegisterAnalyzeDirectoryTool(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_directory",
		Description: "Estimate RAG feasibility for a directory tree: noise, structure, and file-type risk signals",
	}, handleAnalyzeDirectory)
}

// RegisterAnalyzeFilesTool registers the analyze_files tool.
func RegisterAnalyzeFilesTool(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_files",
		Description: "Classify document files and score their suitability as RAG inputs",
	}, handleAnalyzeFiles)
}

// RegisterAnalyzeQueriesTool registers the analyze_queries tool.
func RegisterAnalyzeQueriesTool(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_queries",
		Description: "Classify sample queries by complexity and flag patterns retrieval cannot serve",
	}, handleAnalyzeQueries)
}

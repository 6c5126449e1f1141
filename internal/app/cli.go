package app

import "github.com/spf13/pflag"

// RegisterAnalyzeFlags registers the analysis flags on the given FlagSet
func RegisterAnalyzeFlags(flags *pflag.FlagSet) {
	flags.StringArrayP("docs", "d", nil, "Document files to analyze (repeatable)")
	flags.String("dir", "", "Directory to scan")
	flags.BoolP("recursive", "r", false, "Scan the directory recursively")
	flags.StringArrayP("queries", "q", nil, "Sample queries to test (repeatable)")
	flags.String("queries-file", "", "File containing queries, one per line")
	flags.StringP("output", "o", "", "Write the report to a file instead of stdout")
	flags.Bool("json", false, "Emit the report as JSON")
	flags.Bool("probe", false, "Run the lexical retrieval probe over plain-text inputs")
}

// RegisterServeFlags registers the serve-mode flags on the given FlagSet
func RegisterServeFlags(flags *pflag.FlagSet) {
	flags.StringP("transport", "t", "", "Transport type: stdio or sse")
	flags.StringP("host", "H", "", "Host for SSE transport")
	flags.IntP("port", "p", 0, "Port for SSE transport")
	flags.StringSliceP("api-keys", "k", nil, "API keys for SSE transport (comma-separated)")
	flags.Int64("probe-max-file-size", 0, "Maximum file size the probe will index")
	flags.Int("probe-max-files", 0, "Maximum number of files the probe will index")
}

// AnalyzeRequest carries the resolved analysis inputs.
type AnalyzeRequest struct {
	Docs        []string
	Dir         string
	Recursive   bool
	Queries     []string
	QueriesFile string
	OutputPath  string
	AsJSON      bool
	Probe       bool
}

// AnalyzeRequestFromFlags builds an AnalyzeRequest from parsed flags.
func AnalyzeRequestFromFlags(flags *pflag.FlagSet) AnalyzeRequest {
	docs, _ := flags.GetStringArray("docs")
	dir, _ := flags.GetString("dir")
	recursive, _ := flags.GetBool("recursive")
	queries, _ := flags.GetStringArray("queries")
	queriesFile, _ := flags.GetString("queries-file")
	output, _ := flags.GetString("output")
	asJSON, _ := flags.GetBool("json")
	probe, _ := flags.GetBool("probe")

	return AnalyzeRequest{
		Docs:        docs,
		Dir:         dir,
		Recursive:   recursive,
		Queries:     queries,
		QueriesFile: queriesFile,
		OutputPath:  output,
		AsJSON:      asJSON,
		Probe:       probe,
	}
}

// HasInput reports whether the request names any input to analyze.
func (r AnalyzeRequest) HasInput() bool {
	return len(r.Docs) > 0 || r.Dir != "" || len(r.Queries) > 0 || r.QueriesFile != ""
}

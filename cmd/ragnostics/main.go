package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dijital/ragnostics/internal/app"
	"github.com/dijital/ragnostics/internal/config"
)

var (
	// Version is injected at build time
	Version = "dev"
	// Build is injected at build time
	Build = "unknown"
	// ProgramName is injected at build time
	ProgramName = "ragnostics"
)

func main() {
	runMain(os.Args, os.Exit)
}

func runMain(args []string, exit func(int)) {
	if err := Execute(Version, Build, ProgramName, args[1:]); err != nil {
		exit(1)
	}
}

// Execute is the entry point for the CLI, extracted for testing
func Execute(version, build, programName string, args []string) error {
	rootCmd := &cobra.Command{
		Use:     programName,
		Short:   "RAG feasibility analyzer",
		Long:    "Heuristic analysis of whether RAG fits a document corpus and its expected queries",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.ConfigureLogging()

			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			if err := config.ValidateSettings(settings); err != nil {
				return err
			}

			return app.RunAnalysis(app.AnalyzeRequestFromFlags(cmd.Flags()), settings, cmd.OutOrStdout())
		},
	}

	rootCmd.SetVersionTemplate(`{{.Version}}
`)
	app.RegisterAnalyzeFlags(rootCmd.Flags())

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the analyses as MCP tools over stdio or SSE",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunServeWithDeps(context.Background(), app.DefaultServeParams(), cmd.Flags(), version)
		},
	}
	app.RegisterServeFlags(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

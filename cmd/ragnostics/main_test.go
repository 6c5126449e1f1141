package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecute_Version(t *testing.T) {
	err := Execute("1.0.0", "abc123", "ragnostics", []string{"--version"})
	if err != nil {
		t.Errorf("Expected no error for --version, got: %v", err)
	}
}

func TestExecute_Help(t *testing.T) {
	err := Execute("1.0.0", "abc123", "ragnostics", []string{"--help"})
	if err != nil {
		t.Errorf("Expected no error for --help, got: %v", err)
	}
}

func TestExecute_InvalidFlag(t *testing.T) {
	err := Execute("1.0.0", "abc123", "ragnostics", []string{"--invalid-flag"})
	if err == nil {
		t.Error("Expected error for invalid flag")
	}
}

func TestExecute_NoInput(t *testing.T) {
	err := Execute("1.0.0", "abc123", "ragnostics", []string{})
	if err == nil {
		t.Error("Expected error when nothing is given to analyze")
	}
}

func TestExecute_Analyze(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(doc, []byte(strings.Repeat("prose ", 50)), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "report.txt")

	err := Execute("1.0.0", "abc123", "ragnostics", []string{"--docs", doc, "--output", outPath})
	if err != nil {
		t.Fatalf("Expected analysis to succeed, got: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Expected a report file: %v", err)
	}
	if !strings.Contains(string(data), "OVERALL RAG FEASIBILITY") {
		t.Error("Report is missing the verdict line")
	}
}

func TestExecute_ServeInvalidTransport(t *testing.T) {
	err := Execute("1.0.0", "abc123", "ragnostics", []string{"serve", "--transport", "invalid"})
	if err == nil {
		t.Error("Expected error for invalid transport")
	}
	if !strings.Contains(err.Error(), "transport") {
		t.Errorf("Expected error about transport, got: %v", err)
	}
}

func TestRunMain_Success(t *testing.T) {
	exitCode := -1
	mockExit := func(code int) {
		exitCode = code
	}

	// --help should succeed
	runMain([]string{"ragnostics", "--help"}, mockExit)

	if exitCode != -1 {
		t.Errorf("Expected no exit call for --help, got exit code: %d", exitCode)
	}
}

func TestRunMain_Failure(t *testing.T) {
	exitCode := -1
	mockExit := func(code int) {
		exitCode = code
	}

	runMain([]string{"ragnostics", "--invalid"}, mockExit)

	if exitCode != 1 {
		t.Errorf("Expected exit code 1 for invalid flag, got: %d", exitCode)
	}
}

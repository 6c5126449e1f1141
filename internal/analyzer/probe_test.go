package analyzer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunProbe(t *testing.T) {
	dir := t.TempDir()
	alpha := writeTestFile(t, dir, "alpha.txt", "kubernetes deployment guide for the platform team")
	beta := writeTestFile(t, dir, "beta.md", "postgres tuning notes and checkpoint settings")

	// binary content must be skipped even with a text extension
	binary := filepath.Join(dir, "gamma.txt")
	if err := os.WriteFile(binary, []byte{0x00, 0x01, 0x02, 'a', 'b'}, 0644); err != nil {
		t.Fatal(err)
	}

	result, err := RunProbe(
		[]string{alpha, beta, binary},
		[]string{"kubernetes deployment", "quantum chromodynamics"},
		ProbeOptions{},
	)
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}

	if result.IndexedFiles != 2 {
		t.Errorf("expected 2 indexed files, got %d", result.IndexedFiles)
	}
	if len(result.Hits) != 2 {
		t.Fatalf("expected 2 probed queries, got %d", len(result.Hits))
	}

	if result.Hits[0].Hits == 0 {
		t.Error("the kubernetes query should hit alpha.txt")
	}
	if result.Hits[0].TopFile != alpha {
		t.Errorf("expected top file %s, got %s", alpha, result.Hits[0].TopFile)
	}
	if result.Hits[1].Hits != 0 {
		t.Errorf("nonsense query should have no hits, got %d", result.Hits[1].Hits)
	}
	if result.Coverage != 0.5 {
		t.Errorf("expected coverage 0.5, got %f", result.Coverage)
	}
}

func TestRunProbe_SkipsNonTextFormats(t *testing.T) {
	dir := t.TempDir()
	pdf := writeTestFile(t, dir, "doc.pdf", strings.Repeat("not really a pdf ", 10))
	csv := writeTestFile(t, dir, "data.csv", "a,b,c\n")

	result, err := RunProbe([]string{pdf, csv}, []string{"anything"}, ProbeOptions{})
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if result.IndexedFiles != 0 {
		t.Errorf("pdf and csv must not be read as plain text, indexed %d", result.IndexedFiles)
	}
}

func TestRunProbe_RespectsMaxFileSize(t *testing.T) {
	dir := t.TempDir()
	small := writeTestFile(t, dir, "small.txt", "tiny note about invoices")
	large := writeTestFile(t, dir, "large.txt", strings.Repeat("filler ", 100))

	result, err := RunProbe([]string{small, large}, []string{"invoices"}, ProbeOptions{MaxFileSize: 64})
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if result.IndexedFiles != 1 {
		t.Errorf("expected only the small file indexed, got %d", result.IndexedFiles)
	}
}

func TestCollectProbeFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "one")
	writeTestFile(t, dir, "b.csv", "x,y")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeTestFile(t, sub, "c.md", "two")

	recursive := CollectProbeFiles(dir, true, 100)
	if len(recursive) != 2 {
		t.Errorf("expected a.txt and sub/c.md, got %v", recursive)
	}

	flat := CollectProbeFiles(dir, false, 100)
	if len(flat) != 1 {
		t.Errorf("expected only a.txt without recursion, got %v", flat)
	}

	capped := CollectProbeFiles(dir, true, 1)
	if len(capped) != 1 {
		t.Errorf("expected the cap to hold, got %v", capped)
	}
}

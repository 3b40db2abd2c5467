package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	docexport "github.com/RizzoG99/trammarise-sub001"
)

func TestRunExportsDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "summary.md")
	if err := os.WriteFile(in, []byte("# Standup\n\n- shipped exporter\n- reviewed PRs\n"), 0o600); err != nil {
		t.Fatalf("writing summary: %v", err)
	}
	out := filepath.Join(dir, "doc.json")

	err := run(context.Background(), &cliFlags{
		in:          in,
		out:         out,
		contentType: "meeting",
		model:       "whisper-1",
	})
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var doc docexport.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if doc.Theme != "meeting" {
		t.Errorf("theme = %q, want %q", doc.Theme, "meeting")
	}
	if doc.PageCount() < 1 {
		t.Error("document has no pages")
	}
	if doc.Meta.FileName != "summary.md" {
		t.Errorf("file name = %q, want input base name", doc.Meta.FileName)
	}
}

func TestRunDefaultOutputPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(in, []byte("plain summary"), 0o600); err != nil {
		t.Fatalf("writing summary: %v", err)
	}

	if err := run(context.Background(), &cliFlags{in: in}); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.json")); err != nil {
		t.Errorf("default output not written: %v", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &cliFlags{})
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("run() error = %v, want ErrMissingInput", err)
	}
}

func TestRunUnreadableSummary(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &cliFlags{
		in: filepath.Join(t.TempDir(), "absent.md"),
	})
	if !errors.Is(err, ErrReadSummary) {
		t.Fatalf("run() error = %v, want ErrReadSummary", err)
	}
}

func TestRunVersionShortCircuits(t *testing.T) {
	t.Parallel()

	if err := run(context.Background(), &cliFlags{version: true}); err != nil {
		t.Fatalf("run() error: %v", err)
	}
}

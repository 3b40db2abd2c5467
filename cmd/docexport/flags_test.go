package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	f, err := parseFlags([]string{
		"docexport",
		"--in", "summary.md",
		"-t", "transcript.txt",
		"-o", "out.json",
		"--content-type", "meeting",
		"--model", "whisper-1",
		"--file-name", "standup.mp3",
		"--date-format", "iso",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if f.in != "summary.md" {
		t.Errorf("in = %q", f.in)
	}
	if f.transcript != "transcript.txt" {
		t.Errorf("transcript = %q", f.transcript)
	}
	if f.out != "out.json" {
		t.Errorf("out = %q", f.out)
	}
	if f.contentType != "meeting" {
		t.Errorf("contentType = %q", f.contentType)
	}
	if f.model != "whisper-1" {
		t.Errorf("model = %q", f.model)
	}
	if f.fileName != "standup.mp3" {
		t.Errorf("fileName = %q", f.fileName)
	}
	if f.dateFormat != "iso" {
		t.Errorf("dateFormat = %q", f.dateFormat)
	}
	if !f.verbose {
		t.Error("verbose not set")
	}
	if f.version {
		t.Error("version set without --version")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Parallel()

	f, err := parseFlags([]string{"docexport"})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if f.in != "" || f.out != "" || f.verbose {
		t.Errorf("defaults not zero: %+v", f)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"docexport", "--bogus"}); err == nil {
		t.Fatal("parseFlags() accepted an unknown flag")
	}
}

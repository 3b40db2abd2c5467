package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	docexport "github.com/RizzoG99/trammarise-sub001"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput   = errors.New("missing required --in flag")
	ErrReadSummary    = errors.New("failed to read summary file")
	ErrReadTranscript = errors.New("failed to read transcript file")
	ErrWriteDocument  = errors.New("failed to write document")
	ErrEncodeDocument = errors.New("failed to encode document")
)

// run executes one export: read inputs, render, serialize. The JSON
// serialization step is the document-writer role; the library itself
// performs no I/O.
func run(ctx context.Context, flags *cliFlags) error {
	if flags.version {
		fmt.Println("docexport", Version)
		return nil
	}
	if flags.in == "" {
		return ErrMissingInput
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.merge(flags)

	opts := make([]docexport.Option, 0, 2)
	if cfg.Style != nil {
		opts = append(opts, docexport.WithStyle(*cfg.Style))
	}
	if cfg.DateFormat != "" {
		opts = append(opts, docexport.WithDateFormat(cfg.DateFormat))
	}
	exp, err := docexport.NewExporter(opts...)
	if err != nil {
		return err
	}

	summary, err := os.ReadFile(flags.in) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSummary, err)
	}

	var transcript []byte
	if flags.transcript != "" {
		transcript, err = os.ReadFile(flags.transcript) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadTranscript, err)
		}
	}

	fileName := flags.fileName
	if fileName == "" {
		fileName = filepath.Base(flags.in)
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Exporting %s (content type %q)\n", flags.in, cfg.ContentType)
	}

	doc, err := exp.Export(ctx, docexport.Input{
		Summary:    string(summary),
		Transcript: string(transcript),
		Meta: docexport.Metadata{
			ContentType: cfg.ContentType,
			ModelID:     cfg.Model,
			FileName:    fileName,
			GeneratedAt: time.Now(),
		},
	})
	if err != nil {
		return err
	}

	out := flags.out
	if out == "" {
		out = strings.TrimSuffix(flags.in, filepath.Ext(flags.in)) + ".json"
	}
	if err := writeDocument(doc, out); err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Wrote %d page(s) to %s\n", doc.PageCount(), out)
	}
	return nil
}

// writeDocument serializes the paginated document for downstream
// consumers (the final PDF writer reads this artifact).
func writeDocument(doc *docexport.Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeDocument, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}

package docexport

import (
	"fmt"
	"time"
)

// Content type tags with a dedicated theme. Any other tag resolves to
// the default theme; dispatch is total and never fails.
const (
	ContentTypeMeeting   = "meeting"
	ContentTypeLecture   = "lecture"
	ContentTypeInterview = "interview"
	ContentTypePodcast   = "podcast"
)

// Alignment controls horizontal text alignment in cells and blocks.
type Alignment string

// Alignment values. The empty string behaves as AlignLeft.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Validate checks that a is a known alignment.
func (a Alignment) Validate() error {
	switch a {
	case "", AlignLeft, AlignCenter, AlignRight:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidAlignment, a)
	}
}

// Metadata describes the export request. GeneratedAt is rendered in the
// header banner using the exporter's date layout.
type Metadata struct {
	ContentType string    `json:"contentType"`
	ModelID     string    `json:"modelId"`
	FileName    string    `json:"fileName"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// TableData is tabular input for the direct table rendering path.
// Row lengths are deliberately not validated against the header count:
// exactly the cells present in a row are drawn.
type TableData struct {
	Headers    []string    `json:"headers"`
	Rows       [][]string  `json:"rows"`
	Alignments []Alignment `json:"alignments,omitempty"`
}

// Validate checks the per-column alignments. Header/row length
// mismatches are permitted by design.
func (t TableData) Validate() error {
	for i, a := range t.Alignments {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	return nil
}

// Input contains export parameters. Summary is Markdown; an empty
// summary renders a document with banner and footer but no content
// blocks. Transcript is plain text and optional.
type Input struct {
	Summary    string
	Transcript string
	Meta       Metadata
	Style      *StyleOverrides
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithStyle merges the given overrides onto the default style for every
// export performed by the Exporter. Per-call overrides in Input.Style
// are merged on top of these.
func WithStyle(o StyleOverrides) Option {
	return func(e *Exporter) {
		e.cfg.overrides = &o
	}
}

// WithDateFormat sets the banner timestamp format using dateutil tokens
// (e.g. "MMMM D, YYYY HH:mm") or a preset name (iso, european, us, long).
func WithDateFormat(format string) Option {
	return func(e *Exporter) {
		e.cfg.dateFormat = format
	}
}

// WithMeasurer replaces the font-metric text measurer. Intended for
// tests that need deterministic widths.
func WithMeasurer(m TextMeasurer) Option {
	return func(e *Exporter) {
		e.measurer = m
	}
}

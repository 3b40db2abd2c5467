package docexport

import (
	"context"
	"fmt"

	"github.com/RizzoG99/trammarise-sub001/internal/dateutil"
)

// Compile-time interface implementation checks.
var (
	_ markdownParser = (*goldmarkParser)(nil)
	_ TextMeasurer   = (*goFontMeasurer)(nil)
)

// defaultDateFormat renders banner timestamps like "August 25, 2026 14:30".
const defaultDateFormat = "MMMM D, YYYY HH:mm"

// exporterConfig holds resolved configuration for an Exporter.
type exporterConfig struct {
	overrides  *StyleOverrides
	style      Style
	dateFormat string
	dateLayout string
}

// Exporter composes paginated documents from summaries, transcripts and
// tabular data. It is safe for concurrent use: every export works on
// its own layout state and measurer.
type Exporter struct {
	cfg      exporterConfig
	parser   markdownParser
	measurer TextMeasurer // injected by tests; nil means per-export font measurer
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithDateFormat).
// Returns an error if style overrides or the date format are invalid.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg:    exporterConfig{dateFormat: defaultDateFormat},
		parser: newGoldmarkParser(),
	}
	for _, opt := range opts {
		opt(e)
	}

	style, err := resolveStyle(DefaultStyle(), e.cfg.overrides)
	if err != nil {
		return nil, err
	}
	e.cfg.style = style

	layout, err := dateutil.LayoutFor(e.cfg.dateFormat)
	if err != nil {
		return nil, fmt.Errorf("resolving date format: %w", err)
	}
	e.cfg.dateLayout = layout

	return e, nil
}

// Export runs the full pipeline: parse the summary Markdown, select the
// theme for the content type, and compose a paginated document. The
// context is checked between stages; rendering itself is synchronous
// and has no internal suspension points.
//
// Any rendering failure is fatal to the whole export: no partial
// document is returned.
func (e *Exporter) Export(ctx context.Context, input Input) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := e.renderContextFor(input.Style)
	if err != nil {
		return nil, err
	}

	src := []byte(preprocessMarkdown(input.Summary))
	root, err := e.parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	rc.src = src
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	th := themeFor(input.Meta.ContentType)
	doc := &Document{Theme: th.Name, Meta: input.Meta}
	ls := newLayoutState(doc)

	if err := rc.renderBanner(ls, th, input.Meta); err != nil {
		return nil, fmt.Errorf("rendering banner: %w", err)
	}

	if err := rc.renderSectionTitle(ls, th.SummaryHeading, th, "summary.title"); err != nil {
		return nil, err
	}
	if err := rc.renderBlocks(root, ls, "s"); err != nil {
		return nil, fmt.Errorf("rendering summary: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if input.Transcript != "" {
		if err := rc.renderSectionTitle(ls, th.TranscriptHeading, th, "transcript.title"); err != nil {
			return nil, err
		}
		if err := rc.renderTranscript(input.Transcript, ls, "t"); err != nil {
			return nil, fmt.Errorf("rendering transcript: %w", err)
		}
	}

	rc.applyFooters(doc, input.Meta)
	return doc, nil
}

// ExportTable renders a TableData value directly into a paginated
// document, without banner or sections. Zero headers yields a valid
// single-page document with only footers.
func (e *Exporter) ExportTable(ctx context.Context, data TableData) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	rc, err := e.renderContextFor(nil)
	if err != nil {
		return nil, err
	}

	doc := &Document{Theme: themeFor("").Name}
	ls := newLayoutState(doc)
	if err := rc.renderTable(data, ls, "t"); err != nil {
		return nil, fmt.Errorf("rendering table: %w", err)
	}
	rc.applyFooters(doc, Metadata{})
	return doc, nil
}

// renderContextFor resolves per-call style overrides and mints the
// per-render measurer.
func (e *Exporter) renderContextFor(overrides *StyleOverrides) (*renderContext, error) {
	style, err := resolveStyle(e.cfg.style, overrides)
	if err != nil {
		return nil, err
	}

	meas := e.measurer
	if meas == nil {
		m, err := newGoFontMeasurer()
		if err != nil {
			return nil, fmt.Errorf("preparing font metrics: %w", err)
		}
		meas = m
	}

	return &renderContext{
		style:      style,
		meas:       meas,
		dateLayout: e.cfg.dateLayout,
	}, nil
}

// Package docexport renders AI-generated Markdown summaries, plain
// transcripts and tabular data into paginated, fixed-page-size document
// artifacts ready for PDF serialization.
//
// # Quick Start
//
// Create an exporter and export a document:
//
//	exp, err := docexport.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := exp.Export(ctx, docexport.Input{
//	    Summary:    "# Action Items\n\n- Ship the report",
//	    Transcript: transcript,
//	    Meta: docexport.Metadata{
//	        ContentType: docexport.ContentTypeMeeting,
//	        ModelID:     "whisper-large-v3",
//	        FileName:    "standup.wav",
//	        GeneratedAt: time.Now(),
//	    },
//	})
//
// The resulting Document is an ordered sequence of pages of positioned
// blocks. Hand it to a writer of your choosing; the pipeline performs
// no file I/O itself.
//
// # Rendering Pipeline
//
// Export runs these stages:
//
//  1. Markdown preprocessing (line normalization, blank-line compression)
//  2. Parsing via Goldmark (CommonMark + GFM)
//  3. Theme selection from the content-type tag (total; unknown tags
//     use the default theme)
//  4. Measured layout: wrapped line counts and table row heights are
//     computed from Go font family metrics, with automatic pagination
//     and table-header repetition on every page break
//  5. Footer stamping with page numbering
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp, err := docexport.NewExporter(
//	    docexport.WithStyle(docexport.StyleOverrides{BodySize: &size}),
//	    docexport.WithDateFormat("long"),
//	)
//
// Per-export style overrides are passed via Input.Style and merged on
// top of the exporter's style.
//
// # Concurrency
//
// Rendering is a pure function of its inputs: layout state and font
// faces are created per call, and the package keeps no mutable state.
// One Exporter may serve concurrent exports.
package docexport

package docexport

import "errors"

// Sentinel errors for library operations.
var (
	// ErrFontMetrics indicates that font metrics needed for text measurement
	// could not be obtained. Measurement failures are fatal: the export
	// aborts and no partial document is emitted.
	ErrFontMetrics = errors.New("font metrics unavailable")

	// ErrMarkdownParse indicates the summary Markdown could not be parsed.
	ErrMarkdownParse = errors.New("markdown parsing failed")

	// Style validation errors.
	ErrInvalidStyle = errors.New("invalid style override")

	// Table validation errors.
	ErrInvalidAlignment = errors.New("invalid column alignment")
)

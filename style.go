package docexport

import "fmt"

// Page geometry in PDF points. The export target is a single fixed page
// size (A4 portrait), so these are constants rather than configuration.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	MarginTop    = 60.0
	MarginRight  = 60.0
	MarginBottom = 50.0
	MarginLeft   = 60.0
)

// ContentWidth is the horizontal space available to blocks at zero indent.
const ContentWidth = PageWidth - MarginLeft - MarginRight

// lineHeightFactor converts a font size into a line height.
const lineHeightFactor = 1.15

// bulletGlyph is the marker for unordered list items.
const bulletGlyph = "•"

// Color is an opaque RGB color with 0-255 channels.
type Color struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Color tokens shared by all themes.
var (
	colorInk      = Color{R: 33, G: 37, B: 41}
	colorMuted    = Color{R: 108, G: 117, B: 125}
	colorLink     = Color{R: 13, G: 110, B: 253}
	colorRule     = Color{R: 222, G: 226, B: 230}
	colorCodeFill = Color{R: 246, G: 248, B: 250}
	colorCellFill = Color{R: 233, G: 236, B: 239}
	colorPaper    = Color{R: 255, G: 255, B: 255}
)

// Style holds the typography, color and spacing tokens for one render call.
// It is resolved once per call by merging caller overrides onto defaults
// and is never mutated mid-render.
type Style struct {
	BodySize  float64
	SmallSize float64
	MonoSize  float64
	H1Size    float64
	H2Size    float64
	H3Size    float64

	TextColor  Color
	MutedColor Color
	LinkColor  Color
	RuleColor  Color
	CodeFill   Color

	ParagraphSpacing  float64
	HeadingSpacing    float64
	ListGutter        float64
	BlockquoteIndent  float64
	BlockquotePadding float64
	CodePadding       float64
	RuleSpacing       float64

	Table TableStyle
}

// TableStyle holds the tokens used by the table layout engine.
type TableStyle struct {
	FontSize     float64
	CellPadding  float64
	BorderWidth  float64
	BorderColor  Color
	HeaderFill   Color
	MinRowHeight float64
}

// DefaultStyle returns the built-in style tokens.
func DefaultStyle() Style {
	return Style{
		BodySize:  11,
		SmallSize: 8.5,
		MonoSize:  9.5,
		H1Size:    20,
		H2Size:    15,
		H3Size:    12.5,

		TextColor:  colorInk,
		MutedColor: colorMuted,
		LinkColor:  colorLink,
		RuleColor:  colorRule,
		CodeFill:   colorCodeFill,

		ParagraphSpacing:  8,
		HeadingSpacing:    10,
		ListGutter:        18,
		BlockquoteIndent:  14,
		BlockquotePadding: 6,
		CodePadding:       8,
		RuleSpacing:       12,

		Table: TableStyle{
			FontSize:     10,
			CellPadding:  6,
			BorderWidth:  0.75,
			BorderColor:  colorRule,
			HeaderFill:   colorCellFill,
			MinRowHeight: 18,
		},
	}
}

// StyleOverrides carries partial style adjustments. Nil fields keep the
// default value. Colors are not overridable: theme selection owns color.
type StyleOverrides struct {
	BodySize         *float64 `yaml:"bodySize"`
	MonoSize         *float64 `yaml:"monoSize"`
	ParagraphSpacing *float64 `yaml:"paragraphSpacing"`
	ListGutter       *float64 `yaml:"listGutter"`
	TableFontSize    *float64 `yaml:"tableFontSize"`
	CellPadding      *float64 `yaml:"cellPadding"`
	MinRowHeight     *float64 `yaml:"minRowHeight"`
}

// Validate checks that override values are usable.
// Returns nil if o is nil (nil means use defaults).
func (o *StyleOverrides) Validate() error {
	if o == nil {
		return nil
	}
	positives := map[string]*float64{
		"bodySize":      o.BodySize,
		"monoSize":      o.MonoSize,
		"listGutter":    o.ListGutter,
		"tableFontSize": o.TableFontSize,
		"minRowHeight":  o.MinRowHeight,
	}
	for name, v := range positives {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %.2f", ErrInvalidStyle, name, *v)
		}
	}
	nonNegatives := map[string]*float64{
		"paragraphSpacing": o.ParagraphSpacing,
		"cellPadding":      o.CellPadding,
	}
	for name, v := range nonNegatives {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s cannot be negative, got %.2f", ErrInvalidStyle, name, *v)
		}
	}
	return nil
}

// apply merges the overrides onto s and returns the result.
func (o *StyleOverrides) apply(s Style) Style {
	if o == nil {
		return s
	}
	if o.BodySize != nil {
		s.BodySize = *o.BodySize
	}
	if o.MonoSize != nil {
		s.MonoSize = *o.MonoSize
	}
	if o.ParagraphSpacing != nil {
		s.ParagraphSpacing = *o.ParagraphSpacing
	}
	if o.ListGutter != nil {
		s.ListGutter = *o.ListGutter
	}
	if o.TableFontSize != nil {
		s.Table.FontSize = *o.TableFontSize
	}
	if o.CellPadding != nil {
		s.Table.CellPadding = *o.CellPadding
	}
	if o.MinRowHeight != nil {
		s.Table.MinRowHeight = *o.MinRowHeight
	}
	return s
}

// resolveStyle validates overrides and merges them onto the defaults.
func resolveStyle(base Style, o *StyleOverrides) (Style, error) {
	if err := o.Validate(); err != nil {
		return Style{}, err
	}
	return o.apply(base), nil
}

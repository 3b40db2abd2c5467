package docexport

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontID names one of the faces available to the renderer.
type FontID string

// Available fonts. The Go font family ships with the module, so text
// measurement needs no font files on disk.
const (
	FontRegular    FontID = "regular"
	FontBold       FontID = "bold"
	FontItalic     FontID = "italic"
	FontBoldItalic FontID = "boldItalic"
	FontMono       FontID = "mono"
)

// TextMeasurer reports rendered text widths in points. A failure to
// measure is fatal to the export and surfaces as ErrFontMetrics.
type TextMeasurer interface {
	Width(text string, id FontID, size float64) (float64, error)
}

var fontData = map[FontID][]byte{
	FontRegular:    goregular.TTF,
	FontBold:       gobold.TTF,
	FontItalic:     goitalic.TTF,
	FontBoldItalic: gobolditalic.TTF,
	FontMono:       gomono.TTF,
}

// Parsed font outlines are read-only and shared by all measurers.
// Faces minted from them are not, so each measurer keeps its own.
var (
	fontParseOnce sync.Once
	parsedFonts   map[FontID]*sfnt.Font
	fontParseErr  error
)

func loadFonts() (map[FontID]*sfnt.Font, error) {
	fontParseOnce.Do(func() {
		fonts := make(map[FontID]*sfnt.Font, len(fontData))
		for id, ttf := range fontData {
			f, err := opentype.Parse(ttf)
			if err != nil {
				fontParseErr = fmt.Errorf("%w: parsing %s: %v", ErrFontMetrics, id, err)
				return
			}
			fonts[id] = f
		}
		parsedFonts = fonts
	})
	return parsedFonts, fontParseErr
}

type faceKey struct {
	id   FontID
	size float64
}

// goFontMeasurer measures text with opentype faces over the Go font
// family. Faces hold internal buffers and are not safe for concurrent
// use, so the exporter creates one measurer per render call.
type goFontMeasurer struct {
	fonts map[FontID]*sfnt.Font
	faces map[faceKey]font.Face
}

func newGoFontMeasurer() (*goFontMeasurer, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &goFontMeasurer{
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Width returns the advance width of text in points.
func (m *goFontMeasurer) Width(text string, id FontID, size float64) (float64, error) {
	face, err := m.face(id, size)
	if err != nil {
		return 0, err
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64.0, nil
}

func (m *goFontMeasurer) face(id FontID, size float64) (font.Face, error) {
	key := faceKey{id: id, size: size}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}
	sf, ok := m.fonts[id]
	if !ok {
		return nil, fmt.Errorf("%w: unknown font %q", ErrFontMetrics, id)
	}
	// 72 DPI makes one pixel equal one point.
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: face for %s at %.1fpt: %v", ErrFontMetrics, id, size, err)
	}
	m.faces[key] = face
	return face, nil
}

// lineCount returns the wrapped line count for text laid out in avail
// points: ceil(measured width / avail), never below one line.
func lineCount(m TextMeasurer, text string, id FontID, size, avail float64) (int, error) {
	if text == "" || avail <= 0 {
		return 1, nil
	}
	w, err := m.Width(text, id, size)
	if err != nil {
		return 0, err
	}
	lines := int(math.Ceil(w / avail))
	if lines < 1 {
		lines = 1
	}
	return lines, nil
}

// wrapText greedily wraps text into measured lines no wider than avail.
// A single word wider than avail gets a line of its own rather than
// being split mid-word.
func wrapText(m TextMeasurer, text string, id FontID, size, avail float64) ([]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		w, err := m.Width(candidate, id, size)
		if err != nil {
			return nil, err
		}
		if w > avail {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, current)
	return lines, nil
}

package docexport

import (
	"fmt"
	"testing"

	"github.com/yuin/goldmark/ast"
)

// stubMeasurer reports a fixed width per rune, giving layout tests
// deterministic wrapping independent of real font metrics.
type stubMeasurer struct {
	perRune float64
}

func (m stubMeasurer) Width(text string, _ FontID, size float64) (float64, error) {
	return float64(len([]rune(text))) * size * m.perRune, nil
}

// failMeasurer simulates missing font metrics.
type failMeasurer struct{}

func (failMeasurer) Width(string, FontID, float64) (float64, error) {
	return 0, fmt.Errorf("%w: stub failure", ErrFontMetrics)
}

// newTestContext builds a render context and layout state over a fresh
// document, using the stub measurer unless m is non-nil.
func newTestContext(m TextMeasurer) (*renderContext, *layoutState, *Document) {
	if m == nil {
		m = stubMeasurer{perRune: 0.5}
	}
	doc := &Document{}
	ls := newLayoutState(doc)
	rc := &renderContext{
		style:      DefaultStyle(),
		meas:       m,
		dateLayout: "2006-01-02",
	}
	return rc, ls, doc
}

// parseTestMarkdown parses src with the production parser.
func parseTestMarkdown(t *testing.T, src string) (ast.Node, []byte) {
	t.Helper()
	p := newGoldmarkParser()
	b := []byte(preprocessMarkdown(src))
	root, err := p.Parse(b)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return root, b
}

// allBlocks flattens every page's blocks in order.
func allBlocks(doc *Document) []Block {
	var blocks []Block
	for _, p := range doc.Pages {
		blocks = append(blocks, p.Blocks...)
	}
	return blocks
}

// textBlocks filters blocks that carry runs.
func textBlocks(blocks []Block) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Kind == BlockText {
			out = append(out, b)
		}
	}
	return out
}

// runTexts concatenates the text of each run in a block.
func runTexts(b Block) string {
	var s string
	for _, r := range b.Runs {
		s += r.Text
	}
	return s
}

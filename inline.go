package docexport

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// renderContext carries the immutable inputs of one render call: the
// Markdown source, the resolved style, the text measurer, and the Go
// time layout for timestamps. It holds no cursor; that lives in
// layoutState, threaded separately.
type renderContext struct {
	src        []byte
	style      Style
	meas       TextMeasurer
	dateLayout string
}

// textState carries inherited inline styling down the recursion. It is
// a value: wrappers adjust their copy and never affect siblings.
type textState struct {
	bold      bool
	italic    bool
	strike    bool
	underline bool
	mono      bool
	color     Color
	href      string
}

// font resolves the accumulated style flags to a face.
func (ts textState) font() FontID {
	if ts.mono {
		return FontMono
	}
	switch {
	case ts.bold && ts.italic:
		return FontBoldItalic
	case ts.bold:
		return FontBold
	case ts.italic:
		return FontItalic
	default:
		return FontRegular
	}
}

func (rc *renderContext) baseTextState() textState {
	return textState{color: rc.style.TextColor}
}

// renderInline renders the inline children of node into flat styled
// runs. Each run's key is the parent path extended with the child's
// positional index, so keys are deterministic and never collide across
// repeated or concurrent renders.
func (rc *renderContext) renderInline(node ast.Node, st textState, size float64, path string) []Run {
	var runs []Run
	i := 0
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		key := fmt.Sprintf("%s.%d", path, i)
		runs = append(runs, rc.renderInlineNode(child, st, size, key)...)
		i++
	}
	return runs
}

// renderInlineNode dispatches on the inline node kind. Unrecognized
// kinds render nothing.
func (rc *renderContext) renderInlineNode(node ast.Node, st textState, size float64, key string) []Run {
	switch n := node.(type) {
	case *ast.Text:
		txt := string(n.Segment.Value(rc.src))
		if n.SoftLineBreak() {
			txt += " "
		}
		runs := []Run{rc.run(key, txt, st, size)}
		if n.HardLineBreak() {
			runs = append(runs, Run{Key: key + ".br", Font: st.font(), Size: size, Color: st.color, LineBreak: true})
		}
		return runs

	case *ast.String:
		return []Run{rc.run(key, string(n.Value), st, size)}

	case *ast.Emphasis:
		if n.Level >= 2 {
			st.bold = true
		} else {
			st.italic = true
		}
		return rc.renderInline(n, st, size, key)

	case *extast.Strikethrough:
		st.strike = true
		return rc.renderInline(n, st, size, key)

	case *ast.CodeSpan:
		// Verbatim monospace literal; children are not recursed.
		st.mono = true
		return []Run{rc.run(key, string(nodeText(n, rc.src)), st, size)}

	case *ast.Link:
		// Href is carried on the runs but is not independently
		// actionable in the paginated target.
		st.underline = true
		st.color = rc.style.LinkColor
		st.href = string(n.Destination)
		return rc.renderInline(n, st, size, key)

	case *ast.AutoLink:
		st.underline = true
		st.color = rc.style.LinkColor
		url := string(n.URL(rc.src))
		st.href = url
		return []Run{rc.run(key, url, st, size)}

	default:
		return nil
	}
}

func (rc *renderContext) run(key, text string, st textState, size float64) Run {
	return Run{
		Key:       key,
		Text:      text,
		Font:      st.font(),
		Size:      size,
		Color:     st.color,
		Strike:    st.strike,
		Underline: st.underline,
		Href:      st.href,
	}
}

// runLineCount computes the wrapped line count for a sequence of runs
// laid out in avail points. Explicit line-break runs start a new line;
// widths of adjacent runs accumulate within a line.
func (rc *renderContext) runLineCount(runs []Run, avail float64) (int, error) {
	if len(runs) == 0 {
		return 0, nil
	}
	total := 0
	segWidth := 0.0
	flush := func() {
		lines := 1
		if avail > 0 && segWidth > 0 {
			lines = ceilDiv(segWidth, avail)
		}
		total += lines
		segWidth = 0
	}
	for _, r := range runs {
		if r.LineBreak {
			flush()
			continue
		}
		w, err := rc.meas.Width(r.Text, r.Font, r.Size)
		if err != nil {
			return 0, err
		}
		segWidth += w
	}
	flush()
	return total, nil
}

// ceilDiv is ceil(w/avail) with a floor of one line.
func ceilDiv(w, avail float64) int {
	n := int(w / avail)
	if float64(n)*avail < w {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

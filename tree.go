package docexport

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// renderBlocks renders every child of root in document order, stacked
// vertically. An empty tree renders nothing.
func (rc *renderContext) renderBlocks(root ast.Node, ls *layoutState, path string) error {
	i := 0
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		if err := rc.renderBlock(child, ls, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
		i++
	}
	return nil
}

// renderBlock dispatches on the block node kind. The default arm is the
// deliberate graceful-degradation path: unrecognized kinds (raw HTML,
// images, footnote machinery) emit no blocks and no error.
func (rc *renderContext) renderBlock(node ast.Node, ls *layoutState, path string) error {
	switch n := node.(type) {
	case *ast.Document:
		return rc.renderBlocks(n, ls, path)
	case *ast.Heading:
		return rc.renderHeading(n, ls, path)
	case *ast.Paragraph:
		return rc.renderParagraph(n, ls, path)
	case *ast.TextBlock:
		return rc.renderParagraph(n, ls, path)
	case *ast.List:
		return rc.renderList(n, ls, path)
	case *extast.Table:
		return rc.renderTable(rc.tableData(n), ls, path)
	case *ast.Blockquote:
		return rc.renderBlockquote(n, ls, path)
	case *ast.FencedCodeBlock:
		return rc.renderCodeBlock(n, ls, path)
	case *ast.CodeBlock:
		return rc.renderCodeBlock(n, ls, path)
	case *ast.ThematicBreak:
		return rc.renderRule(ls)
	default:
		return nil
	}
}

// headingTier maps a heading depth to its style tier. Exactly three
// tiers exist; any depth beyond three falls back to the smallest.
func (rc *renderContext) headingTier(level int) (size float64, bordered bool) {
	switch level {
	case 1:
		return rc.style.H1Size, true
	case 2:
		return rc.style.H2Size, false
	default:
		return rc.style.H3Size, false
	}
}

func (rc *renderContext) renderHeading(n *ast.Heading, ls *layoutState, path string) error {
	size, bordered := rc.headingTier(n.Level)
	st := rc.baseTextState()
	st.bold = true
	runs := rc.renderInline(n, st, size, path)
	if len(runs) == 0 {
		return nil
	}

	lines, err := rc.runLineCount(runs, ls.width)
	if err != nil {
		return err
	}
	h := float64(lines) * size * lineHeightFactor

	extra := 0.0
	if bordered {
		extra = 4
	}
	ls.ensure(h + extra + rc.style.HeadingSpacing)
	ls.add(Block{
		Kind:  BlockText,
		Frame: Frame{X: ls.left, Y: ls.y, W: ls.width, H: h},
		Runs:  runs,
	})
	ls.y += h
	if bordered {
		rule := rc.style.RuleColor
		ls.y += 3
		ls.add(Block{
			Kind:        BlockLine,
			Frame:       Frame{X: ls.left, Y: ls.y, W: ls.width, H: 0},
			Stroke:      &rule,
			StrokeWidth: 1,
		})
		ls.y++
	}
	ls.y += rc.style.HeadingSpacing
	return nil
}

func (rc *renderContext) renderParagraph(node ast.Node, ls *layoutState, path string) error {
	runs := rc.renderInline(node, rc.baseTextState(), rc.style.BodySize, path)
	if len(runs) == 0 {
		return nil
	}
	lines, err := rc.runLineCount(runs, ls.width)
	if err != nil {
		return err
	}
	h := float64(lines) * rc.style.BodySize * lineHeightFactor
	ls.ensure(h)
	ls.add(Block{
		Kind:  BlockText,
		Frame: Frame{X: ls.left, Y: ls.y, W: ls.width, H: h},
		Runs:  runs,
	})
	ls.y += h + rc.style.ParagraphSpacing
	return nil
}

// renderList lays each item's glyph in a fixed-width gutter beside the
// recursively rendered item content. Ordered lists number from the
// list's start value; unordered lists share one bullet glyph.
func (rc *renderContext) renderList(n *ast.List, ls *layoutState, path string) error {
	ordered := n.IsOrdered()
	start := n.Start
	if start <= 0 {
		start = 1
	}

	i := 0
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		glyph := bulletGlyph
		if ordered {
			glyph = fmt.Sprintf("%d.", start+i)
		}
		if err := rc.renderListItem(item, glyph, ls, fmt.Sprintf("%s.%d", path, i)); err != nil {
			return err
		}
		i++
	}
	ls.y += rc.style.ParagraphSpacing
	return nil
}

func (rc *renderContext) renderListItem(item ast.Node, glyph string, ls *layoutState, path string) error {
	lineH := rc.style.BodySize * lineHeightFactor
	ls.ensure(lineH)

	gutter := rc.style.ListGutter
	ls.add(Block{
		Kind:  BlockText,
		Frame: Frame{X: ls.left, Y: ls.y, W: gutter, H: lineH},
		Runs: []Run{{
			Key:   path + ".g",
			Text:  glyph,
			Font:  FontRegular,
			Size:  rc.style.BodySize,
			Color: rc.style.TextColor,
		}},
	})

	left, width := ls.left, ls.width
	ls.left += gutter
	ls.width -= gutter
	defer func() {
		ls.left, ls.width = left, width
	}()

	// Item content may hold paragraphs, nested lists, even tables. Only
	// one nesting level is guaranteed; deeper lists still render (as
	// further indented siblings) so no content is ever dropped.
	j := 0
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if err := rc.renderBlock(c, ls, fmt.Sprintf("%s.%d", path, j)); err != nil {
			return err
		}
		j++
	}
	// A list item whose paragraph spacing already advanced the cursor
	// needs no extra gap; tighten the inter-item rhythm.
	ls.y -= rc.style.ParagraphSpacing / 2
	return nil
}

// renderBlockquote renders children inside a left-bordered, indented,
// padded container. The border is drawn per page when the quote spans a
// break.
func (rc *renderContext) renderBlockquote(n *ast.Blockquote, ls *layoutState, path string) error {
	indent := rc.style.BlockquoteIndent
	pad := rc.style.BlockquotePadding

	ls.ensure(rc.style.BodySize * lineHeightFactor)
	startPage, startY := ls.page, ls.y

	left, width := ls.left, ls.width
	ls.left += indent
	ls.width -= indent
	ls.y += pad

	err := rc.renderBlocks(n, ls, path)
	ls.left, ls.width = left, width
	if err != nil {
		return err
	}

	// One border segment per page the quote touched.
	for p := startPage; p <= ls.page; p++ {
		y0 := MarginTop
		if p == startPage {
			y0 = startY
		}
		y1 := ls.maxY()
		if p == ls.page {
			y1 = ls.y
		}
		stroke := rc.style.RuleColor
		ls.addTo(p, Block{
			Kind:        BlockLine,
			Frame:       Frame{X: left + 2, Y: y0, W: 0, H: y1 - y0},
			Stroke:      &stroke,
			StrokeWidth: 3,
		})
	}

	ls.y += pad + rc.style.ParagraphSpacing
	return nil
}

// renderCodeBlock emits verbatim text in a shaded monospace block.
// No syntax highlighting.
func (rc *renderContext) renderCodeBlock(node ast.Node, ls *layoutState, path string) error {
	var buf strings.Builder
	segs := node.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		buf.Write(seg.Value(rc.src))
	}
	literal := strings.TrimRight(buf.String(), "\n")
	if literal == "" {
		return nil
	}

	lines := strings.Split(literal, "\n")
	lineH := rc.style.MonoSize * lineHeightFactor
	pad := rc.style.CodePadding
	h := float64(len(lines))*lineH + 2*pad

	ls.ensure(h)
	fill := rc.style.CodeFill
	ls.add(Block{
		Kind:  BlockRect,
		Frame: Frame{X: ls.left, Y: ls.y, W: ls.width, H: h},
		Fill:  &fill,
	})

	runs := make([]Run, 0, len(lines)*2)
	for i, line := range lines {
		runs = append(runs, Run{
			Key:   fmt.Sprintf("%s.%d", path, i),
			Text:  line,
			Font:  FontMono,
			Size:  rc.style.MonoSize,
			Color: rc.style.TextColor,
		})
		if i < len(lines)-1 {
			runs = append(runs, Run{
				Key:       fmt.Sprintf("%s.%d.br", path, i),
				Font:      FontMono,
				Size:      rc.style.MonoSize,
				Color:     rc.style.TextColor,
				LineBreak: true,
			})
		}
	}
	ls.add(Block{
		Kind:  BlockText,
		Frame: Frame{X: ls.left + pad, Y: ls.y + pad, W: ls.width - 2*pad, H: h - 2*pad},
		Runs:  runs,
	})

	ls.y += h + rc.style.ParagraphSpacing
	return nil
}

// renderRule draws a horizontal rule with fixed vertical margin.
func (rc *renderContext) renderRule(ls *layoutState) error {
	gap := rc.style.RuleSpacing
	ls.ensure(2 * gap)
	stroke := rc.style.RuleColor
	ls.add(Block{
		Kind:        BlockLine,
		Frame:       Frame{X: ls.left, Y: ls.y + gap, W: ls.width, H: 0},
		Stroke:      &stroke,
		StrokeWidth: 1,
	})
	ls.y += 2 * gap
	return nil
}

// tableData flattens a parsed GFM table into TableData. The first row
// becomes the header purely by position, regardless of how the source
// marked it.
func (rc *renderContext) tableData(t *extast.Table) TableData {
	var td TableData
	for _, a := range t.Alignments {
		td.Alignments = append(td.Alignments, toAlignment(a))
	}
	first := true
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, string(nodeText(cell, rc.src)))
		}
		if first {
			td.Headers = cells
			first = false
			continue
		}
		td.Rows = append(td.Rows, cells)
	}
	return td
}

func toAlignment(a extast.Alignment) Alignment {
	switch a {
	case extast.AlignCenter:
		return AlignCenter
	case extast.AlignRight:
		return AlignRight
	case extast.AlignLeft:
		return AlignLeft
	default:
		return ""
	}
}

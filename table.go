package docexport

import (
	"fmt"
	"math"
)

// renderTable lays out header and data rows with measured heights and
// automatic pagination. The first row drawn is always the header row;
// whenever a page break occurs mid-table the header is redrawn before
// data rows continue.
//
// Zero headers is an explicit no-op: nothing is drawn and the cursor is
// left unchanged.
func (rc *renderContext) renderTable(data TableData, ls *layoutState, path string) error {
	if len(data.Headers) == 0 {
		return nil
	}

	ts := rc.style.Table
	colWidth := ls.width / float64(len(data.Headers))

	// Reserve room for the header plus one data row so a table never
	// opens with a header orphaned at the bottom of a page.
	headerH, err := rc.measureRowHeight(data.Headers, colWidth, true)
	if err != nil {
		return err
	}
	ls.ensure(headerH + ts.MinRowHeight)

	y, err := rc.renderTableRow(ls, data.Headers, colWidth, data.Alignments, true, path+".h")
	if err != nil {
		return err
	}
	ls.y = y

	for ri, row := range data.Rows {
		if ls.y+ts.MinRowHeight > ls.maxY() {
			ls.newPage()
			y, err = rc.renderTableRow(ls, data.Headers, colWidth, data.Alignments, true, path+".h")
			if err != nil {
				return err
			}
			ls.y = y
		}
		y, err = rc.renderTableRow(ls, row, colWidth, data.Alignments, false, fmt.Sprintf("%s.r%d", path, ri))
		if err != nil {
			return err
		}
		ls.y = y
	}

	ls.y += rc.style.ParagraphSpacing
	return nil
}

// measureRowHeight computes a row's height from its tallest cell:
// per cell, wrapped line count times the fixed line height plus vertical
// padding. The result is clamped below to the configured minimum.
func (rc *renderContext) measureRowHeight(cells []string, colWidth float64, header bool) (float64, error) {
	ts := rc.style.Table
	avail := colWidth - 2*ts.CellPadding
	lineHeight := ts.FontSize * lineHeightFactor
	id := FontRegular
	if header {
		id = FontBold
	}

	row := 0.0
	for _, cell := range cells {
		lines, err := lineCount(rc.meas, cell, id, ts.FontSize, avail)
		if err != nil {
			return 0, err
		}
		h := float64(lines)*lineHeight + 2*ts.CellPadding
		if h > row {
			row = h
		}
	}
	if row < ts.MinRowHeight {
		row = ts.MinRowHeight
	}
	return row, nil
}

// renderTableRow draws one row at the cursor and returns the advanced
// y position. Header rows get a background fill; every cell gets a
// border and aligned text. Exactly the cells present are drawn: a row
// shorter or longer than the header is emitted as-is.
func (rc *renderContext) renderTableRow(ls *layoutState, cells []string, colWidth float64, aligns []Alignment, header bool, path string) (float64, error) {
	h, err := rc.measureRowHeight(cells, colWidth, header)
	if err != nil {
		return 0, err
	}

	ts := rc.style.Table
	id := FontRegular
	if header {
		id = FontBold
		fill := ts.HeaderFill
		ls.add(Block{
			Kind:  BlockRect,
			Frame: Frame{X: ls.left, Y: ls.y, W: colWidth * float64(len(cells)), H: h},
			Fill:  &fill,
		})
	}

	x := ls.left
	for i, cell := range cells {
		border := ts.BorderColor
		ls.add(Block{
			Kind:        BlockRect,
			Frame:       Frame{X: x, Y: ls.y, W: colWidth, H: h},
			Stroke:      &border,
			StrokeWidth: ts.BorderWidth,
		})

		align := AlignLeft
		if i < len(aligns) && aligns[i] != "" {
			align = aligns[i]
		}
		ls.add(Block{
			Kind:  BlockText,
			Frame: Frame{X: x + ts.CellPadding, Y: ls.y + ts.CellPadding, W: colWidth - 2*ts.CellPadding, H: h - 2*ts.CellPadding},
			Align: align,
			Runs: []Run{{
				Key:   fmt.Sprintf("%s.c%d", path, i),
				Text:  cell,
				Font:  id,
				Size:  ts.FontSize,
				Color: rc.style.TextColor,
			}},
		})
		x += colWidth
	}

	return ls.y + h, nil
}

// tableRowsPerPage reports how many minimum-height rows fit between the
// margins after a header. Used by callers sizing very large tables.
func tableRowsPerPage(ts TableStyle) int {
	usable := PageHeight - MarginTop - MarginBottom - ts.MinRowHeight
	return int(math.Floor(usable / ts.MinRowHeight))
}

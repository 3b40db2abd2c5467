package docexport

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRenderTable_ZeroHeadersIsNoOp(t *testing.T) {
	t.Parallel()

	rc, ls, doc := newTestContext(nil)
	before := ls.y

	err := rc.renderTable(TableData{Rows: [][]string{{"orphan"}}}, ls, "t")
	if err != nil {
		t.Fatalf("renderTable() error: %v", err)
	}
	if ls.y != before {
		t.Errorf("cursor moved on empty headers: got %.2f, want %.2f", ls.y, before)
	}
	if got := len(allBlocks(doc)); got != 0 {
		t.Errorf("blocks emitted on empty headers: got %d, want 0", got)
	}
}

func TestMeasureRowHeight_SingleLineExact(t *testing.T) {
	t.Parallel()

	rc, _, _ := newTestContext(nil)
	ts := rc.style.Table
	colWidth := ContentWidth // ample width, one line

	got, err := rc.measureRowHeight([]string{"x"}, colWidth, false)
	if err != nil {
		t.Fatalf("measureRowHeight() error: %v", err)
	}
	want := ts.FontSize*lineHeightFactor + 2*ts.CellPadding
	if got != want {
		t.Errorf("single-line row height = %.4f, want %.4f", got, want)
	}
}

func TestMeasureRowHeight_ClampsToMinimum(t *testing.T) {
	t.Parallel()

	rc, _, _ := newTestContext(nil)
	rc.style.Table.FontSize = 4 // 4*1.15 + 12 = 16.6 < MinRowHeight

	got, err := rc.measureRowHeight([]string{""}, ContentWidth, false)
	if err != nil {
		t.Fatalf("measureRowHeight() error: %v", err)
	}
	if got != rc.style.Table.MinRowHeight {
		t.Errorf("row height = %.4f, want clamp to %.4f", got, rc.style.Table.MinRowHeight)
	}
}

func TestMeasureRowHeight_NeverBelowMinimum(t *testing.T) {
	t.Parallel()

	rc, _, _ := newTestContext(nil)
	rows := [][]string{
		{},
		{""},
		{"a"},
		{"one", "two", "three"},
		{strings.Repeat("wide cell content ", 20)},
	}
	for i, row := range rows {
		got, err := rc.measureRowHeight(row, ContentWidth/3, false)
		if err != nil {
			t.Fatalf("row %d: measureRowHeight() error: %v", i, err)
		}
		if got < rc.style.Table.MinRowHeight {
			t.Errorf("row %d: height %.4f below minimum %.4f", i, got, rc.style.Table.MinRowHeight)
		}
	}
}

func TestRenderTable_ScenarioSimple(t *testing.T) {
	t.Parallel()

	rc, ls, doc := newTestContext(nil)
	data := TableData{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"x", "y"}},
	}

	if err := rc.renderTable(data, ls, "t"); err != nil {
		t.Fatalf("renderTable() error: %v", err)
	}

	if got := len(doc.Pages); got != 1 {
		t.Fatalf("page count = %d, want 1", got)
	}

	var headerCells, dataCells int
	for _, b := range textBlocks(allBlocks(doc)) {
		key := b.Runs[0].Key
		switch {
		case strings.HasPrefix(key, "t.h.c"):
			headerCells++
			if b.Runs[0].Font != FontBold {
				t.Errorf("header cell %s not bold", key)
			}
		case strings.HasPrefix(key, "t.r"):
			dataCells++
		}
	}
	if headerCells != 2 {
		t.Errorf("header cells = %d, want 2", headerCells)
	}
	if dataCells != 2 {
		t.Errorf("data cells = %d, want 2", dataCells)
	}
}

func TestRenderTable_PaginationRedrawsHeader(t *testing.T) {
	t.Parallel()

	rc, ls, doc := newTestContext(nil)
	const rowCount = 200
	data := TableData{Headers: []string{"Speaker"}}
	for i := 0; i < rowCount; i++ {
		data.Rows = append(data.Rows, []string{fmt.Sprintf("segment %d", i)})
	}

	if err := rc.renderTable(data, ls, "t"); err != nil {
		t.Fatalf("renderTable() error: %v", err)
	}

	if got := len(doc.Pages); got < 2 {
		t.Fatalf("page count = %d, want multiple pages", got)
	}

	totalData := 0
	for pi, page := range doc.Pages {
		headers, firstTextKey := 0, ""
		for _, b := range textBlocks(page.Blocks) {
			key := b.Runs[0].Key
			if firstTextKey == "" {
				firstTextKey = key
			}
			if strings.HasPrefix(key, "t.h.c") {
				headers++
			}
			if strings.HasPrefix(key, "t.r") {
				totalData++
			}
		}
		if headers != 1 {
			t.Errorf("page %d: header renders = %d, want exactly 1", pi+1, headers)
		}
		if !strings.HasPrefix(firstTextKey, "t.h.c") {
			t.Errorf("page %d: first text block %q is not the header", pi+1, firstTextKey)
		}
	}
	if totalData != rowCount {
		t.Errorf("data rows drawn = %d, want %d", totalData, rowCount)
	}

	// Header renders equal one plus the number of page breaks.
	wantHeaders := 1 + (len(doc.Pages) - 1)
	gotHeaders := 0
	for _, b := range textBlocks(allBlocks(doc)) {
		if strings.HasPrefix(b.Runs[0].Key, "t.h.c") {
			gotHeaders++
		}
	}
	if gotHeaders != wantHeaders {
		t.Errorf("header renders = %d, want %d (1 + page breaks)", gotHeaders, wantHeaders)
	}
}

func TestRenderTable_RaggedRowsDrawnAsGiven(t *testing.T) {
	t.Parallel()

	rc, ls, doc := newTestContext(nil)
	data := TableData{
		Headers: []string{"A", "B", "C"},
		Rows: [][]string{
			{"only", "two"},
			{"one", "two", "three", "four"},
		},
	}

	if err := rc.renderTable(data, ls, "t"); err != nil {
		t.Fatalf("renderTable() error: %v", err)
	}

	counts := map[string]int{}
	for _, b := range textBlocks(allBlocks(doc)) {
		key := b.Runs[0].Key
		if strings.HasPrefix(key, "t.r") {
			row := strings.SplitN(key, ".", 3)[1]
			counts[row]++
		}
	}
	if counts["r0"] != 2 {
		t.Errorf("short row drew %d cells, want 2", counts["r0"])
	}
	if counts["r1"] != 4 {
		t.Errorf("long row drew %d cells, want 4", counts["r1"])
	}
}

func TestRenderTable_Alignments(t *testing.T) {
	t.Parallel()

	rc, ls, doc := newTestContext(nil)
	data := TableData{
		Headers:    []string{"L", "C", "R"},
		Rows:       [][]string{{"a", "b", "c"}},
		Alignments: []Alignment{AlignLeft, AlignCenter, AlignRight},
	}

	if err := rc.renderTable(data, ls, "t"); err != nil {
		t.Fatalf("renderTable() error: %v", err)
	}

	want := map[string]Alignment{
		"t.r0.c0": AlignLeft,
		"t.r0.c1": AlignCenter,
		"t.r0.c2": AlignRight,
	}
	for _, b := range textBlocks(allBlocks(doc)) {
		if a, ok := want[b.Runs[0].Key]; ok && b.Align != a {
			t.Errorf("cell %s align = %q, want %q", b.Runs[0].Key, b.Align, a)
		}
	}
}

func TestRenderTable_MeasurementFailureIsFatal(t *testing.T) {
	t.Parallel()

	rc, ls, _ := newTestContext(failMeasurer{})
	data := TableData{Headers: []string{"A"}, Rows: [][]string{{"x"}}}

	err := rc.renderTable(data, ls, "t")
	if !errors.Is(err, ErrFontMetrics) {
		t.Fatalf("renderTable() error = %v, want ErrFontMetrics", err)
	}
}

func TestTableRowsPerPage(t *testing.T) {
	t.Parallel()

	ts := DefaultStyle().Table
	got := tableRowsPerPage(ts)
	if got < 1 {
		t.Fatalf("tableRowsPerPage() = %d, want at least 1", got)
	}
	// A table of exactly that many minimum-height rows must not break.
	rc, ls, doc := newTestContext(nil)
	rc.style.Table.FontSize = 4 // every row clamps to the minimum height
	data := TableData{Headers: []string{"H"}}
	for i := 0; i < got-1; i++ {
		data.Rows = append(data.Rows, []string{"r"})
	}
	if err := rc.renderTable(data, ls, "t"); err != nil {
		t.Fatalf("renderTable() error: %v", err)
	}
	if pages := len(doc.Pages); pages != 1 {
		t.Errorf("page count = %d, want 1 for %d minimum-height rows", pages, got-1)
	}
}

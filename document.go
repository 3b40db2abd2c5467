package docexport

// BlockKind tags the variants a positioned block can take.
type BlockKind string

// Block kinds.
const (
	BlockText BlockKind = "text"
	BlockRect BlockKind = "rect"
	BlockLine BlockKind = "line"
)

// Frame is a block's position and extent on its page, in points,
// with the origin at the top-left corner of the page.
type Frame struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Run is a styled text fragment within a text block. Runs carry a
// deterministic path-based key so repeated renders of the same input
// produce identical identities.
type Run struct {
	Key       string  `json:"key"`
	Text      string  `json:"text,omitempty"`
	Font      FontID  `json:"font"`
	Size      float64 `json:"size"`
	Color     Color   `json:"color"`
	Strike    bool    `json:"strike,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Href      string  `json:"href,omitempty"`
	LineBreak bool    `json:"lineBreak,omitempty"`
}

// Block is one positioned unit of page content. Exactly the fields for
// its kind are set: Runs/Align for text, Fill/Stroke for rects, Stroke
// for lines.
type Block struct {
	Kind        BlockKind `json:"kind"`
	Frame       Frame     `json:"frame"`
	Runs        []Run     `json:"runs,omitempty"`
	Align       Alignment `json:"align,omitempty"`
	Fill        *Color    `json:"fill,omitempty"`
	Stroke      *Color    `json:"stroke,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
}

// Page is an ordered sequence of positioned blocks.
type Page struct {
	Number int     `json:"number"`
	Blocks []Block `json:"blocks"`
}

// Document is the finished paginated artifact. It is handed to an
// external writer for serialization; the pipeline itself performs no I/O.
type Document struct {
	Theme string   `json:"theme"`
	Meta  Metadata `json:"meta"`
	Pages []Page   `json:"pages"`
}

// PageCount reports the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// layoutState is the render cursor threaded through every layout call.
// One is created per render and discarded at the end; nothing about it
// is shared between renders.
type layoutState struct {
	doc   *Document
	page  int     // index into doc.Pages
	y     float64 // vertical cursor
	left  float64 // current content left edge (grows with indentation)
	width float64 // current content width
}

func newLayoutState(doc *Document) *layoutState {
	doc.Pages = append(doc.Pages, Page{Number: 1})
	return &layoutState{
		doc:   doc,
		page:  0,
		y:     MarginTop,
		left:  MarginLeft,
		width: ContentWidth,
	}
}

// maxY is the lowest y the cursor may reach before a page break.
func (ls *layoutState) maxY() float64 {
	return PageHeight - MarginBottom
}

// newPage starts a fresh page and resets the cursor to the top margin.
func (ls *layoutState) newPage() {
	ls.doc.Pages = append(ls.doc.Pages, Page{Number: len(ls.doc.Pages) + 1})
	ls.page = len(ls.doc.Pages) - 1
	ls.y = MarginTop
}

// ensure breaks the page if h points of vertical space are not left.
// Content taller than a full page is still placed: it starts at the top
// margin of a fresh page and overflows rather than being dropped.
func (ls *layoutState) ensure(h float64) {
	if ls.y+h > ls.maxY() {
		ls.newPage()
	}
}

// add appends a block to the current page.
func (ls *layoutState) add(b Block) {
	ls.addTo(ls.page, b)
}

// addTo appends a block to an already existing page.
func (ls *layoutState) addTo(page int, b Block) {
	ls.doc.Pages[page].Blocks = append(ls.doc.Pages[page].Blocks, b)
}

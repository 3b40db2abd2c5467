package docexport

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Precompiled regex patterns for preprocessing.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// preprocessMarkdown normalizes summary text before parsing.
func preprocessMarkdown(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}

// markdownParser abstracts Markdown parsing. The AST consumed by the
// renderers comes from this external collaborator.
type markdownParser interface {
	Parse(source []byte) (ast.Node, error)
}

// goldmarkParser parses Markdown with goldmark (CommonMark + GFM).
type goldmarkParser struct {
	md goldmark.Markdown
}

// newGoldmarkParser creates a parser with the GFM extensions, which
// provide the tables and strikethrough the summaries rely on.
func newGoldmarkParser() *goldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
	)
	return &goldmarkParser{md: md}
}

// Parse returns the document root for source.
func (p *goldmarkParser) Parse(source []byte) (ast.Node, error) {
	root := p.md.Parser().Parse(text.NewReader(source))
	if root == nil {
		return nil, ErrMarkdownParse
	}
	return root, nil
}

// nodeText collects the literal text of node's descendants.
func nodeText(node ast.Node, src []byte) []byte {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.Write(nodeText(c, src))
		}
	}
	return buf.Bytes()
}

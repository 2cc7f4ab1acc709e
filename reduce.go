package mdexport

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// renderMarkdown parses one markdown document and reduces its event stream
// into block primitives on r. filePath is the base for resolving relative
// image destinations; an image failure aborts the walk and is returned.
func renderMarkdown(source []byte, filePath string, r blockRenderer) error {
	root := goldmark.New().Parser().Parse(text.NewReader(source))
	reducer := &eventReducer{renderer: r, basePath: filePath}
	return ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return reducer.reduce(source, n, entering)
	})
}

// eventReducer is a single-pass state machine over the parser's enter/exit
// event sequence. It accumulates inline text into the buffer owned by the
// innermost open construct and emits exactly one block primitive at each
// construct's closing boundary. All accumulator state is transient; nothing
// survives the walk.
type eventReducer struct {
	renderer blockRenderer
	basePath string

	text         strings.Builder
	headingLevel int
	inParagraph  bool
	items        []string
	item         *strings.Builder
	imageDest    string
}

func (r *eventReducer) reduce(source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Paragraph:
		if entering {
			r.inParagraph = true
			r.text.Reset()
			break
		}
		if r.inParagraph {
			r.renderer.Paragraph(strings.TrimSpace(r.text.String()))
		}
		r.inParagraph = false
		r.text.Reset()

	case *ast.Heading:
		if entering {
			r.headingLevel = node.Level
			r.text.Reset()
			break
		}
		if r.headingLevel > 0 {
			r.renderer.Heading(r.headingLevel, strings.TrimSpace(r.text.String()))
			r.headingLevel = 0
		}
		r.text.Reset()

	case *ast.List:
		if entering {
			r.items = r.items[:0]
			break
		}
		if len(r.items) > 0 {
			r.renderer.List(append([]string(nil), r.items...))
		}
		r.items = r.items[:0]

	case *ast.ListItem:
		if entering {
			r.item = &strings.Builder{}
			break
		}
		if r.item != nil {
			if item := strings.TrimSpace(r.item.String()); item != "" {
				r.items = append(r.items, item)
			}
			r.item = nil
		}

	case *ast.FencedCodeBlock:
		// Code blocks are leaf nodes: their raw lines, breaks included,
		// arrive in one piece rather than as inline events.
		if entering {
			r.renderer.CodeBlock(blockText(source, node))
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			r.renderer.CodeBlock(blockText(source, node))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		if entering {
			r.imageDest = string(node.Destination)
			// Alt text children are not content.
			return ast.WalkSkipChildren, nil
		}
		dest := r.imageDest
		r.imageDest = ""
		if dest != "" {
			if err := r.renderer.Image(r.basePath, dest); err != nil {
				return ast.WalkStop, err
			}
		}

	case *ast.ThematicBreak:
		if entering {
			r.renderer.Rule()
		}

	case *ast.Text:
		if entering {
			r.appendText(string(node.Segment.Value(source)))
			if node.SoftLineBreak() {
				r.appendText(" ")
			} else if node.HardLineBreak() {
				r.appendText("\n")
			}
		}

	case *ast.String:
		if entering {
			r.appendText(string(node.Value))
		}

	case *ast.AutoLink:
		if entering {
			r.appendText(string(node.URL(source)))
		}
	}

	return ast.WalkContinue, nil
}

// appendText routes inline text to the innermost open construct: an open
// list item takes precedence over the shared paragraph/heading buffer.
func (r *eventReducer) appendText(s string) {
	if r.item != nil {
		r.item.WriteString(s)
		return
	}
	r.text.WriteString(s)
}

// blockText joins a leaf block's raw source lines.
func blockText(source []byte, n ast.Node) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

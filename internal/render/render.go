package render

import (
	"bytes"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"io"
	"log/slog"
	"net/url"
	"os"
)

// Renderer turns user-written artwork descriptions into HTML.
type Renderer struct {
	logger      *slog.Logger
	highlighter *Highlighter
}

func New() *Renderer {
	return &Renderer{
		logger:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		highlighter: NewHighlighter(),
	}
}

// Markdown renders src to HTML. Raw HTML in src is dropped.
func (r *Renderer) Markdown(src string) string {
	if src == "" {
		return ""
	}
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(src))
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if link, ok := node.(*ast.Link); ok && entering && !safeURL(link.Destination) {
			link.Destination = nil
		}
		if img, ok := node.(*ast.Image); ok && entering {
			if !safeURL(img.Destination) {
				img.Destination = nil
			}
			img.Attribute = &ast.Attribute{
				Attrs: map[string][]byte{
					"loading": []byte("lazy"),
				},
			}
		}
		return ast.GoToNext
	})
	htmlFlags := html.CommonFlags | html.HrefTargetBlank | html.SkipHTML | html.Safelink
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: htmlFlags,
		RenderNodeHook: func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
			code, ok := node.(*ast.CodeBlock)
			if !ok {
				return ast.GoToNext, false
			}
			var buf bytes.Buffer
			if err := r.highlighter.HTMLHighlight(&buf, string(code.Literal), string(code.Info)); err != nil {
				r.logger.Error("Failed to highlight code", "err", err, "lang", string(code.Info))
				return ast.GoToNext, false
			}
			_, _ = w.Write(buf.Bytes())
			return ast.GoToNext, true
		},
	})
	return string(markdown.Render(doc, renderer))
}

// safeURL reports whether dest is relative or uses a scheme browsers
// will not execute.
func safeURL(dest []byte) bool {
	u, err := url.Parse(string(dest))
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}

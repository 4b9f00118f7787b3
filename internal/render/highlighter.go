package render

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"io"
)

// styleName is the name of the style to use for highlighting.
//
// See all styles: https://github.com/alecthomas/chroma/tree/master/styles.
const styleName = "monokailight"

type Highlighter struct {
	formatter *html.Formatter
	style     *chroma.Style
}

// NewHighlighter emits inline styles, since API consumers embed the HTML
// without a stylesheet of ours.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		formatter: html.New(
			html.WithClasses(false),
			html.TabWidth(2),
		),
		style: styles.Get(styleName),
	}
}

func (h *Highlighter) HTMLHighlight(w io.Writer, source, lang string) error {
	l := lexers.Get(lang)
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)
	it, err := l.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return h.formatter.Format(w, h.style, it)
}

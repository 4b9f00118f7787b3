package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdown(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		src      string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis",
			src:      "A **bold** sunset",
			contains: []string{"<strong>bold</strong>"},
		},
		{
			name:     "external link opens in new tab",
			src:      "[irys](https://irys.xyz)",
			contains: []string{`href="https://irys.xyz"`, `target="_blank"`},
		},
		{
			name:     "lazy images",
			src:      "![preview](https://gateway.irys.xyz/abc.png)",
			contains: []string{`loading="lazy"`, `src="https://gateway.irys.xyz/abc.png"`},
		},
		{
			name:     "raw html dropped",
			src:      "hello <script>alert(1)</script>\n\n<div onclick=\"x()\">hi</div>",
			contains: []string{"hello"},
			excludes: []string{"<script>", "onclick"},
		},
		{
			name:     "script urls dropped",
			src:      "[click](javascript:alert(document.cookie))\n\n![x](javascript:alert(1))\n\n[mixed](JavaScript:alert(2))",
			contains: []string{"click", `alt="x"`, "mixed"},
			excludes: []string{"javascript:", "JavaScript:", "alert("},
		},
		{
			name:     "data urls dropped",
			src:      "![x](data:text/html;base64,PHNjcmlwdD4=)",
			excludes: []string{"data:"},
		},
		{
			name:     "code highlighted inline",
			src:      "```go\nfunc main() {}\n```",
			contains: []string{"<pre", "style=", "main"},
			excludes: []string{`class="chroma"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Markdown(tt.src)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestMarkdownEmpty(t *testing.T) {
	assert.Empty(t, New().Markdown(""))
}

func TestHTMLHighlightUnknownLanguage(t *testing.T) {
	var b strings.Builder
	err := NewHighlighter().HTMLHighlight(&b, "just some text", "no-such-lang")
	assert.NoError(t, err)
	assert.Contains(t, b.String(), "just")
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		dest string
		want bool
	}{
		{dest: "https://gateway.irys.xyz/abc.png", want: true},
		{dest: "http://localhost:3000/a", want: true},
		{dest: "mailto:artist@example.com", want: true},
		{dest: "/relative/path.png", want: true},
		{dest: "#anchor", want: true},
		{dest: "javascript:alert(1)", want: false},
		{dest: "JAVASCRIPT:alert(1)", want: false},
		{dest: "vbscript:msgbox", want: false},
		{dest: "data:text/html,hi", want: false},
		{dest: "java\tscript:alert(1)", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			assert.Equal(t, tt.want, safeURL([]byte(tt.dest)))
		})
	}
}

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Goldmark renders markdown with the goldmark engine configured for GitHub
// flavored markdown and automatic heading IDs. The engine is stateless, so a
// single instance can be shared without locking.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark returns a configured goldmark renderer.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render implements Renderer.
func (g *Goldmark) Render(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := g.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("goldmark: %w", err)
	}
	return template.HTML(buf.String()), nil
}

package render

import (
	"html/template"

	"github.com/russross/blackfriday/v2"
)

// Blackfriday renders markdown with the blackfriday engine using the common
// extensions plus footnotes.
type Blackfriday struct{}

// Render implements Renderer.
func (Blackfriday) Render(src []byte) (template.HTML, error) {
	out := blackfriday.Run(src, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes))
	return template.HTML(out), nil
}

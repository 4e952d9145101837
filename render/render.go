// Package render turns markup source into HTML. The engine is an injected
// strategy so the collection pipeline never depends on a specific markdown
// implementation.
package render

import (
	"fmt"
	"html/template"
)

// Renderer converts markup source into HTML ready for template embedding.
type Renderer interface {
	Render(src []byte) (template.HTML, error)
}

// Engine names accepted by New.
const (
	EngineBlackfriday = "blackfriday"
	EngineGoldmark    = "goldmark"
)

// New returns the renderer for the named engine. An empty name selects
// blackfriday.
func New(engine string) (Renderer, error) {
	switch engine {
	case "", EngineBlackfriday:
		return Blackfriday{}, nil
	case EngineGoldmark:
		return NewGoldmark(), nil
	}
	return nil, fmt.Errorf("render: unknown engine %q", engine)
}

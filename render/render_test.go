package render

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	for _, name := range []string{"", EngineBlackfriday, EngineGoldmark} {
		r, err := New(name)
		if err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
		if r == nil {
			t.Errorf("New(%q) returned nil renderer", name)
		}
	}
	if _, err := New("asciidoc"); err == nil {
		t.Error("Expected unknown engine to fail")
	}
}

func TestRenderEngines(t *testing.T) {
	const src = "# Heading\n\nSome *emphasis* and a [link](https://example.com/).\n"
	engines := map[string]Renderer{
		EngineBlackfriday: Blackfriday{},
		EngineGoldmark:    NewGoldmark(),
	}
	for name, r := range engines {
		t.Run(name, func(t *testing.T) {
			out, err := r.Render([]byte(src))
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			html := string(out)
			for _, want := range []string{"Heading", "<em>emphasis</em>", `href="https://example.com/"`} {
				if !strings.Contains(html, want) {
					t.Errorf("Expected %q in output, got %q", want, html)
				}
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	for _, r := range []Renderer{Blackfriday{}, NewGoldmark()} {
		out, err := r.Render(nil)
		if err != nil {
			t.Errorf("Render(nil): %v", err)
		}
		if strings.TrimSpace(string(out)) != "" {
			t.Errorf("Expected empty output, got %q", out)
		}
	}
}

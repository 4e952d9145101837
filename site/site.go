package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/plumekit/plume/collection"
	"github.com/plumekit/plume/render"
)

// Site ties a content store, a markdown renderer, and the HTML templates to
// one site configuration. A Site performs no writes of its own; Build and
// the serving filesystem consume it.
type Site struct {
	cfg   *Config
	fsys  fs.FS
	store *collection.Store
	rend  render.Renderer
	tpl   *template.Template
}

// New creates a Site over the given site root. The configured content
// directory must sit below the root.
func New(fsys fs.FS, cfg *Config) (*Site, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	rend, err := render.New(cfg.Markdown)
	if err != nil {
		return nil, err
	}
	contentFS, err := fs.Sub(fsys, cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("content dir %q: %w", cfg.ContentDir, err)
	}
	s := &Site{
		cfg:   cfg,
		fsys:  fsys,
		store: collection.NewStore(contentFS),
		rend:  rend,
	}
	if _, err := s.loadTemplates(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the site configuration.
func (s *Site) Config() *Config {
	return s.cfg
}

// Entries loads the configured collection and drops entries that are not
// published yet: drafts and entries dated in the future. The returned slice
// is in discovery order; callers sort as needed.
func (s *Site) Entries() ([]collection.Entry, error) {
	entries, err := s.store.Load(s.cfg.Collection)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	published := entries[:0:0]
	for _, e := range entries {
		if e.Draft || now.Before(e.PubDate) {
			continue
		}
		published = append(published, e)
	}
	return published, nil
}

// RenderIndex renders the index page listing all entries, oldest first.
func (s *Site) RenderIndex(entries []collection.Entry) ([]byte, error) {
	var out bytes.Buffer
	data := indexData{Site: s.cfg, Items: collection.Listing(entries)}
	if err := s.tpl.ExecuteTemplate(&out, "index", data); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return out.Bytes(), nil
}

// RenderEntry renders one entry page, converting the raw body to HTML with
// the injected renderer. The template defaults to "default" unless the
// entry's front matter names another one.
func (s *Site) RenderEntry(e collection.Entry) ([]byte, error) {
	content, err := s.rend.Render(e.Body())
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", e.Path, err)
	}
	data := pageData{
		Site:    s.cfg,
		Entry:   e,
		Page:    pageInfo{Path: "/" + e.Slug + "/", Filename: "index.html"},
		Content: content,
	}
	templateName := "default"
	if e.Template != "" {
		templateName = e.Template
	}
	var out bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&out, templateName, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", e.Path, err)
	}
	return out.Bytes(), nil
}

// RenderNotFound renders the 404 page.
func (s *Site) RenderNotFound() ([]byte, error) {
	var out bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&out, "notfound", errData{Site: s.cfg}); err != nil {
		return nil, fmt.Errorf("render notfound: %w", err)
	}
	return out.Bytes(), nil
}

// RenderError renders the 500 page with the given message.
func (s *Site) RenderError(msg string) ([]byte, error) {
	var out bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&out, "error", errData{Site: s.cfg, Message: msg}); err != nil {
		return nil, fmt.Errorf("render error page: %w", err)
	}
	return out.Bytes(), nil
}

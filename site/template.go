package site

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/plumekit/plume/collection"
)

//go:embed default.html
var defaultTemplate string

// pageInfo has information about the current page.
type pageInfo struct {
	Path     string // URL path of the enclosing folder
	Filename string // file portion of the URL
}

// Pathname joins the path and filename.
func (p pageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// pageData is what entry templates receive.
type pageData struct {
	Site    *Config          // site-wide settings
	Entry   collection.Entry // the entry being rendered
	Page    pageInfo         // information about the current page
	Content template.HTML    // rendered markup body
}

// indexData is what the index template receives.
type indexData struct {
	Site  *Config
	Items []collection.Item // listing rows, oldest first
}

// errData is what the error template receives.
type errData struct {
	Site    *Config
	Message string
}

// loadTemplates parses the site's HTML templates from template/*.html,
// falling back to the embedded defaults when the folder is absent. It
// returns true if custom templates were found.
func (s *Site) loadTemplates() (bool, error) {
	funcMap := template.FuncMap{
		"join":       path.Join,
		"ext":        path.Ext,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,
		"now":        time.Now,
		"markdown":   s.markdown,
	}
	fi, err := fs.Stat(s.fsys, "template")
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := template.New("plume").Funcs(funcMap).Parse(defaultTemplate)
		if err != nil {
			return false, fmt.Errorf("loadTemplates: %w", err)
		}
		s.tpl = tpl
		return false, nil
	}
	tpl, err := template.New("plume").Funcs(funcMap).ParseFS(s.fsys, "template/*.html")
	if err != nil {
		return true, fmt.Errorf("loadTemplates: %w", err)
	}
	s.tpl = tpl
	return true, nil
}

// markdown renders markup source into HTML and is used in templates.
func (s *Site) markdown(src string) template.HTML {
	out, err := s.rend.Render([]byte(src))
	if err != nil {
		return ""
	}
	return out
}

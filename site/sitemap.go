package site

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/plumekit/plume/collection"
)

// Sitemap renders sitemap.txt for the given entries. If the site root holds
// a "sitemap.txt" text template it is executed with the list of entry URLs,
// so authors can customize the output; otherwise the URLs are emitted one
// per line. The index page URL comes first, then the entries oldest first.
func (s *Site) Sitemap(entries []collection.Entry) ([]byte, error) {
	urls := make([]string, 0, len(entries)+1)
	base := strings.TrimSuffix(s.cfg.BaseURL, "/")
	urls = append(urls, base+"/")
	for _, e := range collection.Sorted(entries) {
		urls = append(urls, base+"/"+e.Slug+"/")
	}

	b, err := fs.ReadFile(s.fsys, "sitemap.txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []byte(strings.Join(urls, "\n") + "\n"), nil
		}
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	tpl, err := template.New("sitemap").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, urls); err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	return out.Bytes(), nil
}

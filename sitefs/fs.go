// Package sitefs presents a rendered blog site as a read-only fs.FS:
// index.html at the root, one <slug>/index.html per entry, sitemap.txt, the
// 404 and 500 error pages, and a passthrough static folder.
//
// Pages are rendered when opened, so a server can mount this filesystem
// directly and pick up content edits on the next request. Callers that want
// caching should wrap it, for example with cachefs:
//
//	cached := cachefs.New(sitefs.New(s, root), &cachefs.Config{...})
//	http.Handle("/", http.FileServer(http.FS(cached)))
package sitefs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/plumekit/plume/collection"
	"github.com/plumekit/plume/site"
)

// FS serves rendered pages from a Site. It is stateless; each Open loads
// the collection fresh.
type FS struct {
	site *site.Site
	root fs.FS // site root, used for the static folder
}

// New returns a filesystem over the rendered site. root is the site root
// directory, used to pass static assets through unmodified.
func New(s *site.Site, root fs.FS) *FS {
	return &FS{site: s, root: root}
}

// Open opens the named file or directory.
func (sfs *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") && part != "." {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
	}
	if name == "static" || strings.HasPrefix(name, "static/") {
		return sfs.root.Open(name)
	}

	switch name {
	case "404.html":
		return sfs.errorPage(name, sfs.site.RenderNotFound)
	case "500.html":
		return sfs.errorPage(name, func() ([]byte, error) {
			return sfs.site.RenderError("internal server error")
		})
	}

	entries, err := sfs.site.Entries()
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	switch name {
	case ".":
		return sfs.openDir(name, entries)
	case "index.html":
		b, err := sfs.site.RenderIndex(entries)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return newMemFile(name, b, maxModTime(entries)), nil
	case "sitemap.txt":
		b, err := sfs.site.Sitemap(entries)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return newMemFile(name, b, maxModTime(entries)), nil
	}

	if e, ok := findEntry(entries, strings.TrimSuffix(name, "/index.html")); ok && strings.HasSuffix(name, "/index.html") {
		b, err := sfs.site.RenderEntry(*e)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return newMemFile(name, b, e.ModTime), nil
	}
	if isDirOf(entries, name) {
		return sfs.openDir(name, entries)
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// errorPage renders one of the error documents.
func (sfs *FS) errorPage(name string, render func() ([]byte, error)) (fs.File, error) {
	b, err := render()
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return newMemFile(name, b, time.Now()), nil
}

// openDir synthesizes the directory listing for the root or a slug prefix.
func (sfs *FS) openDir(name string, entries []collection.Entry) (fs.File, error) {
	var (
		children = map[string]fs.DirEntry{}
		modTime  = maxModTime(entries)
	)
	addFile := func(fileName string, modTime time.Time) {
		children[fileName] = dirEntry{fileInfo{name: fileName, modTime: modTime}}
	}
	if name == "." {
		addFile("index.html", modTime)
		addFile("sitemap.txt", modTime)
		addFile("404.html", modTime)
		addFile("500.html", modTime)
		if fi, err := fs.Stat(sfs.root, "static"); err == nil && fi.IsDir() {
			children["static"] = dirEntry{fileInfo{name: "static", modTime: fi.ModTime(), dir: true}}
		}
	}
	found := name == "."
	for _, e := range entries {
		switch {
		case e.Slug == name:
			addFile("index.html", e.ModTime)
			found = true
		case name == "." || strings.HasPrefix(e.Slug, name+"/"):
			rest := e.Slug
			if name != "." {
				rest = strings.TrimPrefix(e.Slug, name+"/")
			}
			child, _, _ := strings.Cut(rest, "/")
			children[child] = dirEntry{fileInfo{name: child, modTime: e.ModTime, dir: true}}
			found = true
		}
	}
	if !found {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	list := make([]fs.DirEntry, 0, len(children))
	for _, de := range children {
		list = append(list, de)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return &memDir{
		fileInfo: fileInfo{name: path.Base(name), modTime: modTime, dir: true},
		entries:  list,
	}, nil
}

// findEntry looks up an entry by slug.
func findEntry(entries []collection.Entry, slug string) (*collection.Entry, bool) {
	for i := range entries {
		if entries[i].Slug == slug {
			return &entries[i], true
		}
	}
	return nil, false
}

// isDirOf reports whether name is a slug or a prefix of one.
func isDirOf(entries []collection.Entry, name string) bool {
	for _, e := range entries {
		if e.Slug == name || strings.HasPrefix(e.Slug, name+"/") {
			return true
		}
	}
	return false
}

// maxModTime returns the newest modification time among the entries, so the
// index and sitemap report a useful Last-Modified.
func maxModTime(entries []collection.Entry) time.Time {
	var t time.Time
	for _, e := range entries {
		if e.ModTime.After(t) {
			t = e.ModTime
		}
	}
	if t.IsZero() {
		t = time.Now()
	}
	return t
}

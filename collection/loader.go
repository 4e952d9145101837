package collection

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// markupExt is the document extension a collection is made of.
const markupExt = ".md"

// Store is a read-only view over a content root. Each subdirectory of the
// root is a collection.
type Store struct {
	fsys fs.FS
}

// NewStore returns a Store reading from the given content root.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Collections lists the collection names available under the content root,
// in lexical order. Hidden directories are skipped.
func (s *Store) Collections() ([]string, error) {
	dirents, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("collections: %w", err)
	}
	var names []string
	for _, d := range dirents {
		if d.IsDir() && !strings.HasPrefix(d.Name(), ".") {
			names = append(names, d.Name())
		}
	}
	return names, nil
}

// Load enumerates all documents of the named collection, parses and
// validates their front matter, and returns the entries in discovery order.
//
// The load is atomic. If any document fails validation, or two documents
// collide on a slug, Load returns a *LoadError aggregating every problem
// found and no entries. A collection with no backing directory fails with
// ErrCollectionNotFound. An existing but empty collection loads as an empty
// slice.
func (s *Store) Load(name string) ([]Entry, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}
	fi, err := fs.Stat(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
		}
		return nil, fmt.Errorf("load collection %q: %w", name, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, name)
	}

	var (
		entries []Entry
		errs    []error
		seen    = map[string]string{} // slug -> document path
	)
	walkErr := fs.WalkDir(s.fsys, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && p != name {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || path.Ext(p) != markupExt {
			return nil
		}
		e, err := s.loadDocument(name, p)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if prev, ok := seen[e.Slug]; ok {
			errs = append(errs, &DuplicateSlugError{Slug: e.Slug, Path: p, Previous: prev})
			return nil
		}
		seen[e.Slug] = p
		entries = append(entries, *e)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("load collection %q: %w", name, walkErr)
	}
	if len(errs) > 0 {
		return nil, &LoadError{Collection: name, Errs: errs}
	}
	return entries, nil
}

// loadDocument reads and validates a single document, deriving its slug.
func (s *Store) loadDocument(collection, p string) (*Entry, error) {
	b, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	var hdr header
	body, err := frontmatter.Parse(bytes.NewReader(b), &hdr)
	if err != nil {
		return nil, &SchemaError{Path: p, Fields: validation.Errors{"front matter": err}}
	}
	if err := hdr.validate(); err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			return nil, &SchemaError{Path: p, Fields: fields}
		}
		return nil, fmt.Errorf("validate %s: %w", p, err)
	}

	pubDate, err := ParseDate(hdr.PubDate)
	if err != nil {
		return nil, &SchemaError{Path: p, Fields: validation.Errors{"pubDate": err}}
	}

	sl, err := deriveSlug(collection, p, hdr.Slug)
	if err != nil {
		return nil, &SchemaError{Path: p, Fields: validation.Errors{"slug": err}}
	}

	e := Entry{
		Slug:        sl,
		Path:        p,
		Title:       hdr.Title,
		Description: hdr.Description,
		PubDate:     pubDate,
		Template:    hdr.Template,
		Tags:        hdr.Tags,
		Draft:       hdr.Draft,
		body:        body,
	}
	if fi, err := fs.Stat(s.fsys, p); err == nil {
		e.ModTime = fi.ModTime()
	}
	return &e, nil
}

// deriveSlug maps a document path to its routing slug: the path relative to
// the collection root with the markup extension stripped, separators kept as
// "/". A front matter override replaces the final path element after
// normalization.
func deriveSlug(collection, p, override string) (string, error) {
	rel := strings.TrimPrefix(strings.TrimPrefix(p, collection), "/")
	rel = strings.TrimSuffix(rel, markupExt)
	if override == "" {
		return rel, nil
	}
	norm, err := normalizeSlug(override)
	if err != nil {
		return "", fmt.Errorf("slug override %q: %w", override, err)
	}
	if norm == "" {
		return "", fmt.Errorf("slug override %q normalizes to an empty slug", override)
	}
	dir := path.Dir(rel)
	if dir == "." {
		return norm, nil
	}
	return path.Join(dir, norm), nil
}

package site

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Build renders the whole site into outDir: the index page, one page per
// entry at <slug>/index.html, sitemap.txt, and a copy of the static folder.
// The build is a one-shot batch; it fails fast on the first write error and
// on any collection load error.
func (s *Site) Build(outDir string) error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	index, err := s.RenderIndex(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), index, 0o644); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	for _, e := range entries {
		page, err := s.RenderEntry(e)
		if err != nil {
			return err
		}
		dir := filepath.Join(outDir, filepath.FromSlash(e.Slug))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("build %s: %w", e.Slug, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644); err != nil {
			return fmt.Errorf("build %s: %w", e.Slug, err)
		}
		log.Printf("Wrote /%s/", e.Slug)
	}

	sm, err := s.Sitemap(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "sitemap.txt"), sm, 0o644); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if err := s.copyStatic(outDir); err != nil {
		return err
	}
	log.Printf("Built %d page(s) into %q", len(entries)+1, outDir)
	return nil
}

// copyStatic copies the static folder from the site root into outDir,
// preserving its layout. A missing static folder is not an error.
func (s *Site) copyStatic(outDir string) error {
	sub, err := fs.Sub(s.fsys, "static")
	if err != nil {
		return fmt.Errorf("static: %w", err)
	}
	if _, err := fs.Stat(sub, "."); err != nil {
		return nil
	}
	return fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(outDir, "static", filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		b, err := fs.ReadFile(sub, p)
		if err != nil {
			return fmt.Errorf("static %s: %w", p, err)
		}
		return os.WriteFile(dest, b, 0o644)
	})
}

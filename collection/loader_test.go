package collection

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func entryFile(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body), ModTime: time.Now()}
}

func TestLoadCollection(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/first-post.md": entryFile(`---
title: 'First post'
description: 'The very first post.'
pubDate: '01 Jan 2024'
tags:
  - intro
---
# Hello
Welcome to the blog.
`),
		"blog/guides/seeding.md": entryFile(`---
title: 'Seeding a database'
description: 'Filling tables with sample data.'
pubDate: '14 Mar 2024'
---
Some *markdown* here.
`),
	})

	entries, err := store.Load("blog")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	e := entries[0]
	if e.Slug != "first-post" {
		t.Errorf("Expected slug %q, got %q", "first-post", e.Slug)
	}
	if e.Path != "blog/first-post.md" {
		t.Errorf("Expected path %q, got %q", "blog/first-post.md", e.Path)
	}
	if e.Title != "First post" {
		t.Errorf("Unexpected title %q", e.Title)
	}
	if e.Description != "The very first post." {
		t.Errorf("Unexpected description %q", e.Description)
	}
	if want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC); !e.PubDate.Equal(want) {
		t.Errorf("Expected pubDate %v, got %v", want, e.PubDate)
	}
	if !strings.Contains(string(e.Body()), "Welcome to the blog.") {
		t.Errorf("Body not preserved: %q", e.Body())
	}
	if strings.Contains(string(e.Body()), "pubDate") {
		t.Errorf("Front matter leaked into body: %q", e.Body())
	}

	if entries[1].Slug != "guides/seeding" {
		t.Errorf("Expected nested slug %q, got %q", "guides/seeding", entries[1].Slug)
	}
}

func TestLoadTOMLFrontMatter(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/toml-post.md": entryFile(`+++
title = "TOML post"
description = "Front matter in TOML."
pubDate = "2024-03-14"
+++
Body.
`),
	})
	entries, err := store.Load("blog")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries[0].Title != "TOML post" {
		t.Errorf("Unexpected title %q", entries[0].Title)
	}
	if entries[0].PubDate.Format("2006-01-02") != "2024-03-14" {
		t.Errorf("Unexpected pubDate %v", entries[0].PubDate)
	}
}

func TestLoadMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{
			name: "missing title",
			doc: `---
description: 'No title here.'
pubDate: '01 Jan 2024'
---
Body.
`,
			field: "title",
		},
		{
			name: "missing description",
			doc: `---
title: 'A post'
pubDate: '01 Jan 2024'
---
Body.
`,
			field: "description",
		},
		{
			name: "missing pubDate",
			doc: `---
title: 'A post'
description: 'A description.'
---
Body.
`,
			field: "pubDate",
		},
		{
			name:  "no front matter at all",
			doc:   "Just a body.\n",
			field: "title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(fstest.MapFS{"blog/post.md": entryFile(tt.doc)})
			_, err := store.Load("blog")
			if err == nil {
				t.Fatal("Expected load to fail")
			}
			if !errors.Is(err, ErrSchema) {
				t.Errorf("Expected ErrSchema, got %v", err)
			}
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Expected *SchemaError, got %T", err)
			}
			if se.Path != "blog/post.md" {
				t.Errorf("Expected document path in error, got %q", se.Path)
			}
			if _, ok := se.Fields[tt.field]; !ok {
				t.Errorf("Expected error naming field %q, got %v", tt.field, se.Fields)
			}
		})
	}
}

func TestLoadBadDate(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/bad-date.md": entryFile(`---
title: 'A post'
description: 'A description.'
pubDate: 'not-a-date'
---
Body.
`),
	})
	_, err := store.Load("blog")
	if err == nil {
		t.Fatal("Expected load to fail")
	}
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Expected ErrSchema, got %v", err)
	}
	if !errors.Is(err, ErrDateParse) {
		t.Errorf("Expected ErrDateParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "blog/bad-date.md") {
		t.Errorf("Expected document path in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "pubDate") {
		t.Errorf("Expected pubDate field in message, got %q", err.Error())
	}
}

func TestLoadAggregatesErrors(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/one.md": entryFile("No front matter.\n"),
		"blog/two.md": entryFile(`---
title: 'Two'
description: 'Ok'
pubDate: 'bogus'
---
Body.
`),
	})
	_, err := store.Load("blog")
	if err == nil {
		t.Fatal("Expected load to fail")
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Expected *LoadError, got %T", err)
	}
	if len(le.Errs) != 2 {
		t.Errorf("Expected both documents reported, got %d error(s): %v", len(le.Errs), le)
	}
	for _, p := range []string{"blog/one.md", "blog/two.md"} {
		if !strings.Contains(err.Error(), p) {
			t.Errorf("Expected %q in message, got %q", p, err.Error())
		}
	}
}

func TestLoadDuplicateSlug(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/hello.md": entryFile(`---
title: 'Hello'
description: 'The original.'
pubDate: '01 Jan 2024'
---
Body.
`),
		"blog/other.md": entryFile(`---
title: 'Other'
description: 'Steals the slug.'
pubDate: '02 Jan 2024'
slug: 'hello'
---
Body.
`),
	})
	_, err := store.Load("blog")
	if err == nil {
		t.Fatal("Expected load to fail")
	}
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("Expected ErrDuplicateSlug, got %v", err)
	}
	var de *DuplicateSlugError
	if !errors.As(err, &de) {
		t.Fatalf("Expected *DuplicateSlugError, got %T", err)
	}
	if de.Slug != "hello" {
		t.Errorf("Unexpected slug %q", de.Slug)
	}
	if de.Previous != "blog/hello.md" || de.Path != "blog/other.md" {
		t.Errorf("Unexpected paths: previous %q, path %q", de.Previous, de.Path)
	}
}

func TestLoadSlugOverride(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/guides/draft 7 (final).md": entryFile(`---
title: 'Guide'
description: 'With a custom slug.'
pubDate: '01 Jan 2024'
slug: 'Seeding Your Database'
---
Body.
`),
	})
	entries, err := store.Load("blog")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entries[0].Slug != "guides/seeding-your-database" {
		t.Errorf("Unexpected slug %q", entries[0].Slug)
	}
}

func TestLoadCollectionNotFound(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/post.md": entryFile("x"),
	})
	for _, name := range []string{"missing", ".", "blog/post.md"} {
		_, err := store.Load(name)
		if !errors.Is(err, ErrCollectionNotFound) {
			t.Errorf("Load(%q): expected ErrCollectionNotFound, got %v", name, err)
		}
	}
}

func TestLoadEmptyCollection(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/.keep": entryFile(""),
	})
	entries, err := store.Load("blog")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/post.md": entryFile(`---
title: 'A post'
description: 'A description.'
pubDate: '01 Jan 2024'
heroImage: '/images/hero.png'
readingTime: 4
---
Body.
`),
	})
	if _, err := store.Load("blog"); err != nil {
		t.Errorf("Unknown fields should be tolerated, got %v", err)
	}
}

func TestLoadIgnoresHiddenAndForeignFiles(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/.obsidian/cache.md": entryFile("not a post"),
		"blog/notes.txt":          entryFile("not markdown"),
		"blog/post.md": entryFile(`---
title: 'A post'
description: 'A description.'
pubDate: '01 Jan 2024'
---
Body.
`),
	})
	entries, err := store.Load("blog")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(entries))
	}
}

func TestCollections(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"blog/a.md":    entryFile("x"),
		"notes/b.md":   entryFile("x"),
		".git/ignored": entryFile("x"),
	})
	names, err := store.Collections()
	if err != nil {
		t.Fatalf("Collections: %v", err)
	}
	if len(names) != 2 || names[0] != "blog" || names[1] != "notes" {
		t.Errorf("Unexpected collections %v", names)
	}
}

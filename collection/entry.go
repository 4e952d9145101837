// Package collection loads named groups of markup documents from a content
// root, validates their front matter, and produces chronological listings
// suitable for rendering an index page.
//
// A content root is any fs.FS holding one subdirectory per collection. Each
// document is a Markdown file with an optional front matter block, either
// YAML delimited by "---" or TOML delimited by "+++". For example:
//
//	---
//	title: 'My first post'
//	description: 'In which nothing much happens.'
//	pubDate: '14 Mar 2024'
//	---
//	# Heading
//	Body text.
//
// Entries are immutable once loaded; content changes require editing the
// source document and loading again.
package collection

import (
	"time"
)

// Entry is one validated document within a collection.
type Entry struct {
	Slug        string    // routing identifier derived from the document path
	Path        string    // document path relative to the content root
	Title       string    // required, non-empty
	Description string    // required, non-empty
	PubDate     time.Time // publish date parsed from front matter
	Template    string    // optional template override for rendering
	Tags        []string  // optional tags
	Draft       bool      // drafts are loaded but excluded from published output
	ModTime     time.Time // file modification time from the content root

	body []byte
}

// Body returns the raw markup source of the entry, without front matter.
// Rendering to HTML is left to the caller so it can happen lazily.
func (e *Entry) Body() []byte {
	return e.body
}

// Item is a single row of a rendered listing.
type Item struct {
	Slug        string
	Title       string
	Description string
}

// header is the front matter shape we decode. Unknown keys are ignored by
// both the YAML and TOML decoders, so extra author metadata is harmless.
type header struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	PubDate     string   `yaml:"pubDate" toml:"pubDate" json:"pubDate"`
	Slug        string   `yaml:"slug" toml:"slug" json:"slug"`
	Template    string   `yaml:"template" toml:"template" json:"template"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags"`
	Draft       bool     `yaml:"draft" toml:"draft" json:"draft"`
}

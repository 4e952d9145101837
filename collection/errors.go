package collection

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sentinel errors for the load pipeline. The structured error types below
// unwrap to these so callers can classify failures with errors.Is.
var (
	ErrCollectionNotFound = errors.New("collection: not found")
	ErrSchema             = errors.New("collection: front matter invalid")
	ErrDuplicateSlug      = errors.New("collection: duplicate slug")
	ErrDateParse          = errors.New("collection: cannot parse date")
)

// SchemaError reports front matter that fails validation for one document.
// Fields maps each offending front matter key to its failure.
type SchemaError struct {
	Path   string
	Fields validation.Errors
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Fields.Error())
}

func (e *SchemaError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields)+1)
	errs = append(errs, ErrSchema)
	for _, err := range e.Fields {
		errs = append(errs, err)
	}
	return errs
}

// DuplicateSlugError reports two documents colliding on the same derived slug.
type DuplicateSlugError struct {
	Slug     string
	Path     string // the later document
	Previous string // the document that claimed the slug first
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("%s: slug %q already used by %s", e.Path, e.Slug, e.Previous)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// LoadError aggregates every failure found while loading one collection.
// A load is atomic: if any document is rejected, no entries are returned and
// the LoadError carries the full set of problems so the author can fix them
// in one pass.
type LoadError struct {
	Collection string
	Errs       []error
}

func (e *LoadError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	sort.Strings(msgs)
	return fmt.Sprintf("load collection %q: %s", e.Collection, strings.Join(msgs, "; "))
}

func (e *LoadError) Unwrap() []error {
	return e.Errs
}

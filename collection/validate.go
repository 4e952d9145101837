package collection

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"
)

// dateLayouts are the accepted pubDate forms, tried in order. Both the
// human-readable "14 Mar 2024" style and ISO dates are allowed.
var dateLayouts = []string{
	"02 Jan 2006",
	"2 Jan 2006",
	"2006-01-02",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a front matter date literal. The returned error wraps
// ErrDateParse.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, s)
}

// validate checks a decoded front matter header against the collection
// schema. It is pure: no I/O, and every input maps to nil or a field-keyed
// validation.Errors.
func (h header) validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Title, validation.Required.Error("title must be a non-empty string")),
		validation.Field(&h.Description, validation.Required.Error("description must be a non-empty string")),
		validation.Field(&h.PubDate,
			validation.Required.Error("pubDate must be a date literal"),
			validation.By(func(value any) error {
				_, err := ParseDate(value.(string))
				return err
			}),
		),
		validation.Field(&h.Slug, validation.By(func(value any) error {
			s := value.(string)
			if s == "" {
				return nil
			}
			norm, err := normalizeSlug(s)
			if err != nil || norm == "" {
				return fmt.Errorf("slug override %q is not a valid slug", s)
			}
			return nil
		})),
	)
}

// normalizeSlug applies the shared slug normalization rules to a front
// matter slug override.
func normalizeSlug(s string) (string, error) {
	return slug.Normalize(s)
}

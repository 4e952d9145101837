package collection

import (
	"reflect"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestListingOrder(t *testing.T) {
	entries := []Entry{
		{Slug: "march", Title: "March", Description: "d", PubDate: mustDate(t, "14 Mar 2024")},
		{Slug: "january", Title: "January", Description: "d", PubDate: mustDate(t, "01 Jan 2024")},
	}
	items := Listing(entries)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Slug != "january" || items[1].Slug != "march" {
		t.Errorf("Expected oldest first, got %v", items)
	}
}

func TestListingStable(t *testing.T) {
	date := mustDate(t, "01 Jan 2024")
	entries := []Entry{
		{Slug: "z-first-discovered", PubDate: date},
		{Slug: "a-second-discovered", PubDate: date},
	}
	items := Listing(entries)
	if items[0].Slug != "z-first-discovered" || items[1].Slug != "a-second-discovered" {
		t.Errorf("Tie must keep discovery order, got %v", items)
	}
}

func TestListingIdempotent(t *testing.T) {
	entries := []Entry{
		{Slug: "b", PubDate: mustDate(t, "02 Jan 2024")},
		{Slug: "a", PubDate: mustDate(t, "01 Jan 2024")},
		{Slug: "c", PubDate: mustDate(t, "02 Jan 2024")},
	}
	first := Listing(entries)
	second := Listing(entries)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Listing not idempotent: %v vs %v", first, second)
	}
}

func TestListingDoesNotMutateInput(t *testing.T) {
	entries := []Entry{
		{Slug: "b", PubDate: mustDate(t, "02 Jan 2024")},
		{Slug: "a", PubDate: mustDate(t, "01 Jan 2024")},
	}
	Listing(entries)
	if entries[0].Slug != "b" || entries[1].Slug != "a" {
		t.Errorf("Input was reordered: %v", entries)
	}
}

func TestListingEmpty(t *testing.T) {
	items := Listing(nil)
	if len(items) != 0 {
		t.Errorf("Expected empty listing, got %v", items)
	}
}

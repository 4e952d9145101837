package collection

import "sort"

// Listing produces the index rows for a set of loaded entries, ordered by
// ascending publish date (oldest first). Entries sharing a publish date keep
// their discovery order, so the sort must stay stable. The input slice is
// not modified; an empty collection yields an empty listing.
func Listing(entries []Entry) []Item {
	ordered := Sorted(entries)
	items := make([]Item, 0, len(ordered))
	for _, e := range ordered {
		items = append(items, Item{Slug: e.Slug, Title: e.Title, Description: e.Description})
	}
	return items
}

// Sorted returns a copy of entries ordered by ascending publish date, ties
// broken by discovery order.
func Sorted(entries []Entry) []Entry {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PubDate.Before(ordered[j].PubDate)
	})
	return ordered
}

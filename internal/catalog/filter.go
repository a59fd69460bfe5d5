package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAndSort returns the items matching criteria in the order selected by
// criteria.Sort. The input slice is never modified.
func FilterAndSort(items []Item, criteria FilterCriteria) []Item {
	search := strings.ToLower(criteria.Search)

	result := make([]Item, 0, len(items))
	for _, item := range items {
		if matchesCategory(item, criteria.Category) && matchesSearch(item, search) {
			result = append(result, item)
		}
	}

	slices.SortFunc(result, comparator(criteria.Sort))
	return result
}

// matchesCategory treats an empty category like CategoryAll.
func matchesCategory(item Item, category Category) bool {
	return category == "" || category == CategoryAll || item.Category == category
}

// matchesSearch expects search to be lower-cased already.
func matchesSearch(item Item, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search)
}

func comparator(key SortKey) func(a, b Item) int {
	switch key {
	case SortPriceLow:
		return func(a, b Item) int { return a.Price.Cmp(b.Price) }
	case SortPriceHigh:
		return func(a, b Item) int { return b.Price.Cmp(a.Price) }
	case SortRating:
		return func(a, b Item) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		// Collators keep internal buffers, so each sort gets its own.
		c := collate.New(language.English)
		return func(a, b Item) int { return c.CompareString(a.Name, b.Name) }
	}
}

// ParseSortKey parses a sort key. Unknown values fall back to SortName.
func ParseSortKey(s string) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, key) {
		return key
	}
	return SortName
}

// ParseCategory maps s onto a known category, ignoring case. Unknown values
// are kept verbatim so that filtering by them matches nothing.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c
		}
	}
	return Category(s)
}

// NextSortKey returns the sort key after key, wrapping around.
func NextSortKey(key SortKey) SortKey {
	i := slices.Index(SortKeys, key)
	return SortKeys[(i+1)%len(SortKeys)]
}

// NextCategory returns the category after c, wrapping around. Unknown
// categories restart at CategoryAll.
func NextCategory(c Category) Category {
	i := slices.Index(Categories, c)
	return Categories[(i+1)%len(Categories)]
}

// Summary returns the footer line for a filtered list, e.g. "Showing 3 of 8 products".
// The noun stays plural whatever the count.
func Summary(visible, total int) string {
	return fmt.Sprintf("Showing %d of %d products", visible, total)
}

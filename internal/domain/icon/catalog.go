package icon

import (
	"slices"
	"strings"
)

// PageSize is the fixed number of icons shown per picker page.
const PageSize = 60

// Catalog is the sorted set of all registered icon names, computed once
// at construction. Filtering and pagination never mutate it.
type Catalog struct {
	names []string
}

// NewCatalog builds a catalog from the registered names. The input is
// copied, sorted, and deduplicated.
func NewCatalog(names []string) *Catalog {
	sorted := make([]string, len(names))
	copy(sorted, names)
	slices.Sort(sorted)
	return &Catalog{names: slices.Compact(sorted)}
}

// Names returns the full ordered name list.
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of registered names.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Filter returns the names containing the query, case-insensitively,
// in catalog order. An empty query returns the full catalog.
func (c *Catalog) Filter(query string) []string {
	if query == "" {
		return c.names
	}
	q := strings.ToLower(query)
	matches := make([]string, 0, len(c.names))
	for _, name := range c.names {
		if strings.Contains(strings.ToLower(name), q) {
			matches = append(matches, name)
		}
	}
	return matches
}

// PageCount returns ceil(matches / PageSize). Zero matches yield zero
// pages; callers render that as an empty state.
func PageCount(matches int) int {
	if matches <= 0 {
		return 0
	}
	return (matches + PageSize - 1) / PageSize
}

// ClampPage constrains a page index to [0, pageCount-1]. With zero
// pages the only valid index is 0.
func ClampPage(page, pageCount int) int {
	if pageCount <= 0 || page < 0 {
		return 0
	}
	if page >= pageCount {
		return pageCount - 1
	}
	return page
}

// Paginate returns the slice of matches visible on the given page.
// Out-of-range pages are clamped first. Concatenating every page in
// order reproduces the full match list.
func Paginate(matches []string, page int) []string {
	count := PageCount(len(matches))
	if count == 0 {
		return nil
	}
	p := ClampPage(page, count)
	start := p * PageSize
	end := min(start+PageSize, len(matches))
	return matches[start:end]
}

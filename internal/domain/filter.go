package domain

import "strings"

// Criteria holds the live filter inputs
type Criteria struct {
	Keyword  string // matched against Name only
	Category string // CategoryAll or a category name
}

// NewCriteria builds criteria from raw input, lowercasing the keyword.
// An empty category means CategoryAll.
func NewCriteria(keyword, category string) Criteria {
	category = strings.TrimSpace(category)
	if category == "" {
		category = CategoryAll
	}
	return Criteria{
		Keyword:  strings.ToLower(keyword),
		Category: category,
	}
}

// Matches reports whether e satisfies both the category and the keyword predicate
func (c Criteria) Matches(e Entry) bool {
	if !strings.EqualFold(c.Category, CategoryAll) && !strings.EqualFold(e.Category, c.Category) {
		return false
	}
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(c.Keyword))
}

// Filter returns the entries whose name contains keyword (case-insensitive)
// and whose category equals category (case-insensitive) unless category is
// "all". Description text is not searched. Order is preserved.
func Filter(entries Collection, keyword, category string) Collection {
	crit := NewCriteria(keyword, category)
	out := make(Collection, 0, len(entries))
	for _, e := range entries {
		if crit.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

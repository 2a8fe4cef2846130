package domain

import (
	"net/url"
	"strings"
)

// CategoryAll selects every category when filtering
const CategoryAll = "all"

// Entry is a single website in the directory
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

// Collection is an ordered list of entries, insertion order preserved
type Collection []Entry

// Clone returns a copy that shares no backing array with c
func (c Collection) Clone() Collection {
	if c == nil {
		return Collection{}
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Categories returns the distinct categories in first-seen order.
// Categories differing only in case are reported once, using the first spelling.
func (c Collection) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, e := range c {
		k := strings.ToLower(e.Category)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		cats = append(cats, e.Category)
	}
	return cats
}

// IsWellFormedURL reports whether raw parses as an absolute URL with a scheme
// and an authority (host)
func IsWellFormedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// SeedDocument is the shape of the seed resource
type SeedDocument struct {
	Websites []Entry `json:"websites"`
}

package domain

import "strings"

// Filter narrows a candidate or list query. Empty fields do not filter.
//   - Tag matches case-insensitively anywhere in the item's tags string.
//   - Category is an exact match and only applies to phrases.
//   - Level is an exact, case-insensitive match (A1, B2 ...).
type Filter struct {
	Tag      string
	Category string
	Level    string
	Limit    int
	Offset   int
}

// Normalized returns a copy with surrounding whitespace removed.
func (f Filter) Normalized() Filter {
	f.Tag = strings.TrimSpace(f.Tag)
	f.Category = strings.TrimSpace(f.Category)
	f.Level = strings.TrimSpace(f.Level)
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

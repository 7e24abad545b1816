package logic

import "shopgrip/internal/domain"

// Section is a run of consecutive results of one category.
// Start is the flat index of the section's first item.
type Section struct {
	Category domain.Category
	Label    string
	Start    int
	Items    []domain.ResultItem
}

// Sections splits a result set into category runs. Normalized sets are
// already ordered by category, so every category appears at most once.
func Sections(rs domain.ResultSet) []Section {
	var out []Section
	for i, item := range rs.Items {
		if n := len(out); n > 0 && out[n-1].Category == item.Category {
			out[n-1].Items = append(out[n-1].Items, item)
			continue
		}
		out = append(out, Section{
			Category: item.Category,
			Label:    item.Category.Label(),
			Start:    i,
			Items:    []domain.ResultItem{item},
		})
	}
	return out
}

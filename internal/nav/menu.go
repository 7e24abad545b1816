package nav

import (
	"net/url"
	"strings"

	"shopgrip/internal/domain"
)

// Entry is one flattened menu row
type Entry struct {
	Title string
	URL   string
	Depth int
}

// Menu is the store navigation menu, built from configuration
type Menu struct {
	items []domain.MenuItem
}

// NewMenu builds a menu whose absolute URLs under base are made relative
func NewMenu(base string, items []domain.MenuItem) Menu {
	return Menu{items: resolveItems(base, items)}
}

// Items returns the top-level menu items
func (m Menu) Items() []domain.MenuItem {
	return m.items
}

// Flatten walks the menu depth first
func (m Menu) Flatten() []Entry {
	var out []Entry
	var walk func(items []domain.MenuItem, depth int)
	walk = func(items []domain.MenuItem, depth int) {
		for _, it := range items {
			out = append(out, Entry{Title: it.Title, URL: it.URL, Depth: depth})
			walk(it.Items, depth+1)
		}
	}
	walk(m.items, 0)
	return out
}

func resolveItems(base string, items []domain.MenuItem) []domain.MenuItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.MenuItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Title) == "" {
			continue
		}
		out = append(out, domain.MenuItem{
			Title: it.Title,
			URL:   Resolve(base, it.URL),
			Items: resolveItems(base, it.Items),
		})
	}
	return out
}

// Resolve turns an absolute URL on the store's host into a relative path.
// Relative references and URLs on other hosts are returned unchanged.
func Resolve(base, raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return raw
	}
	b, err := url.Parse(base)
	if err != nil || !strings.EqualFold(b.Host, u.Host) {
		return raw
	}

	rel := &url.URL{Path: u.Path, RawPath: u.RawPath, RawQuery: u.RawQuery, Fragment: u.Fragment}
	if rel.Path == "" {
		rel.Path = "/"
	}
	return rel.String()
}

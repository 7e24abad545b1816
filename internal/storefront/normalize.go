package storefront

import (
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"shopgrip/internal/domain"
)

// titlePolicy strips all markup from titles coming back from the API
var titlePolicy = bluemonday.StrictPolicy()

// Normalize flattens a categorized response into one ordered result set.
//
// Order is always products, collections, articles, pages. Records without an id
// or a title are dropped; records without a resolvable URL are kept with an empty
// URL. The first record wins when an id repeats.
func Normalize(resp *PredictiveSearchResponse, term string) domain.ResultSet {
	if resp == nil {
		return domain.ResultSet{}
	}
	items := resp.Result.Items
	n := &normalizer{term: term, seen: make(map[string]bool)}

	for _, p := range items.Products {
		item := domain.ResultItem{
			ID:       p.ID,
			Title:    p.Title,
			URL:      n.url("/products/", p.Handle, p.TrackingParameters),
			Category: domain.CategoryProduct,
		}
		if p.Variant != nil {
			item.Image = cleanImage(p.Variant.Image)
			item.Price = cleanMoney(p.Variant.Price)
		}
		n.add(item)
	}

	for _, c := range items.Collections {
		n.add(domain.ResultItem{
			ID:       c.ID,
			Title:    c.Title,
			URL:      n.url("/collections/", c.Handle, c.TrackingParameters),
			Category: domain.CategoryCollection,
			Image:    cleanImage(c.Image),
		})
	}

	for _, a := range items.Articles {
		base := ""
		if a.Blog != nil && a.Blog.Handle != "" && a.Handle != "" {
			base = "/blogs/" + url.PathEscape(a.Blog.Handle) + "/" + url.PathEscape(a.Handle)
		}
		n.add(domain.ResultItem{
			ID:       a.ID,
			Title:    a.Title,
			URL:      n.withTracking(base, a.TrackingParameters),
			Category: domain.CategoryArticle,
			Image:    cleanImage(a.Image),
		})
	}

	for _, p := range items.Pages {
		n.add(domain.ResultItem{
			ID:       p.ID,
			Title:    p.Title,
			URL:      n.url("/pages/", p.Handle, p.TrackingParameters),
			Category: domain.CategoryPage,
		})
	}

	return domain.ResultSet{Items: n.out, Total: resp.Result.Total}
}

type normalizer struct {
	term string
	seen map[string]bool
	out  []domain.ResultItem
}

func (n *normalizer) add(item domain.ResultItem) {
	item.ID = strings.TrimSpace(item.ID)
	item.Title = CleanTitle(item.Title)
	if item.ID == "" || item.Title == "" || n.seen[item.ID] {
		return
	}
	n.seen[item.ID] = true
	n.out = append(n.out, item)
}

func (n *normalizer) url(prefix, handle, tracking string) string {
	if strings.TrimSpace(handle) == "" {
		return ""
	}
	return n.withTracking(prefix+url.PathEscape(handle), tracking)
}

func (n *normalizer) withTracking(base, tracking string) string {
	if base == "" {
		return ""
	}
	return URLWithTrackingParams(base, tracking, n.term)
}

// URLWithTrackingParams appends the search term and the API's tracking
// parameters to a storefront path
func URLWithTrackingParams(base, tracking, term string) string {
	search := url.Values{"q": {term}}.Encode()
	if tracking = strings.TrimLeft(strings.TrimSpace(tracking), "?&"); tracking != "" {
		search += "&" + tracking
	}
	return base + "?" + search
}

// CleanTitle removes markup and surrounding whitespace from a title
func CleanTitle(title string) string {
	if title == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(titlePolicy.Sanitize(title)))
}

func cleanImage(img *domain.Image) *domain.Image {
	if img == nil || strings.TrimSpace(img.URL) == "" {
		return nil
	}
	out := *img
	return &out
}

func cleanMoney(m *domain.Money) *domain.Money {
	if m == nil || strings.TrimSpace(m.Amount) == "" {
		return nil
	}
	out := *m
	return &out
}

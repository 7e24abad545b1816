package storefront

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"shopgrip/internal/domain"
)

// FakeCatalog is an in-memory store used by the mock server and tests
type FakeCatalog struct {
	mu          sync.RWMutex
	Products    []Product
	Collections []Collection
	Articles    []Article
	Pages       []Page
	Carts       map[string]*domain.Cart
}

// PredictiveSearch matches titles case-insensitively, up to q.Limit per category
func (f *FakeCatalog) PredictiveSearch(ctx context.Context, q PredictiveQuery) (*PredictiveSearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(q.Q))
	resp := EmptyResponse()
	if term == "" {
		return resp, nil
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	items := &resp.Result.Items

	for i, p := range f.Products {
		if len(items.Products) < limit && strings.Contains(strings.ToLower(p.Title), term) {
			p.TrackingParameters = trackingFor(term, len(items.Products)+1, i)
			items.Products = append(items.Products, p)
		}
	}
	for i, c := range f.Collections {
		if len(items.Collections) < limit && strings.Contains(strings.ToLower(c.Title), term) {
			c.TrackingParameters = trackingFor(term, len(items.Collections)+1, i)
			items.Collections = append(items.Collections, c)
		}
	}
	for i, a := range f.Articles {
		if len(items.Articles) < limit && strings.Contains(strings.ToLower(a.Title), term) {
			a.TrackingParameters = trackingFor(term, len(items.Articles)+1, i)
			items.Articles = append(items.Articles, a)
		}
	}
	for i, p := range f.Pages {
		if len(items.Pages) < limit && strings.Contains(strings.ToLower(p.Title), term) {
			p.TrackingParameters = trackingFor(term, len(items.Pages)+1, i)
			items.Pages = append(items.Pages, p)
		}
	}

	resp.Result.Total = len(items.Products) + len(items.Collections) + len(items.Articles) + len(items.Pages)
	return resp, nil
}

// Cart returns a stored cart
func (f *FakeCatalog) Cart(ctx context.Context, id string) (*domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	cart, ok := f.Carts[id]
	if !ok {
		return nil, &StatusError{Code: 404, URL: "/api/carts/" + url.PathEscape(id)}
	}
	out := *cart
	return &out, nil
}

func trackingFor(term string, pos, idx int) string {
	v := url.Values{}
	v.Set("_pos", fmt.Sprint(pos))
	v.Set("_psq", term)
	v.Set("_ss", "e")
	v.Set("_v", "1.0")
	v.Set("_sid", fmt.Sprintf("%04x", idx+1))
	return v.Encode()
}

// DemoCatalog returns the fixture catalog served by the mock store
func DemoCatalog() *FakeCatalog {
	usd := func(amount string) *domain.Money {
		return &domain.Money{Amount: amount, CurrencyCode: "USD"}
	}
	img := func(name, alt string) *domain.Image {
		return &domain.Image{URL: "https://cdn.example.com/" + name + ".jpg", AltText: alt}
	}

	return &FakeCatalog{
		Products: []Product{
			{ID: "gid://shopify/Product/1", Title: "Red Shoes", Handle: "red-shoes",
				Variant: &Variant{Image: img("red-shoes", "Pair of red shoes"), Price: usd("89.00")}},
			{ID: "gid://shopify/Product/2", Title: "Oxford Shirt", Handle: "oxford-shirt",
				Variant: &Variant{Image: img("oxford", "Blue oxford shirt"), Price: usd("49.50")}},
			{ID: "gid://shopify/Product/3", Title: "Linen Shirt", Handle: "linen-shirt",
				Variant: &Variant{Price: usd("55.00")}},
			{ID: "gid://shopify/Product/4", Title: "Redwood Candle", Handle: "redwood-candle",
				Variant: &Variant{Price: usd("18.00")}},
			{ID: "gid://shopify/Product/5", Title: "Wool Socks", Handle: "wool-socks",
				Variant: &Variant{Price: usd("12.00")}},
			{ID: "gid://shopify/Product/6", Title: "Shirt Stays", Handle: "shirt-stays"},
		},
		Collections: []Collection{
			{ID: "gid://shopify/Collection/1", Title: "Shirts", Handle: "shirts", Image: img("shirts", "Shirts")},
			{ID: "gid://shopify/Collection/2", Title: "Red Edit", Handle: "red-edit"},
			{ID: "gid://shopify/Collection/3", Title: "Footwear", Handle: "footwear"},
		},
		Articles: []Article{
			{ID: "gid://shopify/Article/1", Title: "How to Iron a Shirt", Handle: "iron-a-shirt",
				Blog: &BlogRef{Handle: "journal"}},
			{ID: "gid://shopify/Article/2", Title: "Caring for Red Leather", Handle: "red-leather",
				Blog: &BlogRef{Handle: "journal"}, Image: img("leather", "Leather care kit")},
		},
		Pages: []Page{
			{ID: "gid://shopify/Page/1", Title: "Shipping & Returns", Handle: "shipping-returns"},
			{ID: "gid://shopify/Page/2", Title: "Shirt Size Guide", Handle: "shirt-size-guide"},
		},
		Carts: map[string]*domain.Cart{
			"demo": {
				ID:            "demo",
				CheckoutURL:   "https://checkout.example.com/c/demo",
				TotalQuantity: 2,
				Cost: &domain.CartCost{
					SubtotalAmount: usd("138.50"),
					TotalAmount:    usd("128.50"),
				},
				DiscountCodes: []domain.DiscountCode{
					{Code: "WELCOME10", Applicable: true},
					{Code: "EXPIRED", Applicable: false},
				},
				AppliedGiftCards: []domain.AppliedGiftCard{
					{ID: "gid://shopify/AppliedGiftCard/1", LastCharacters: "x9k2", AmountUsed: usd("10.00")},
				},
			},
		},
	}
}

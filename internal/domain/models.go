package domain

// Category identifies the kind of storefront resource a search result points at
type Category string

const (
	CategoryProduct    Category = "product"
	CategoryCollection Category = "collection"
	CategoryArticle    Category = "article"
	CategoryPage       Category = "page"
)

// Categories lists all categories in display precedence order
var Categories = []Category{CategoryProduct, CategoryCollection, CategoryArticle, CategoryPage}

// Precedence returns the display rank of a category (lower comes first)
func (c Category) Precedence() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

// Label returns the section heading used for a category
func (c Category) Label() string {
	switch c {
	case CategoryProduct:
		return "Products"
	case CategoryCollection:
		return "Collections"
	case CategoryArticle:
		return "Articles"
	case CategoryPage:
		return "Pages"
	default:
		return string(c)
	}
}

// Image is an optional picture attached to a result
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

// Money is an amount as returned by the commerce API (decimal string + ISO currency)
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// ResultItem is one row of a predictive search result set
type ResultItem struct {
	ID       string
	Title    string
	URL      string // empty when no URL could be resolved
	Category Category
	Image    *Image
	Price    *Money
}

// ResultSet is the flattened, ordered output of one committed query
type ResultSet struct {
	Items []ResultItem
	Total int
}

// Len returns the number of items in the set
func (rs ResultSet) Len() int {
	return len(rs.Items)
}

// At returns the item at index i, or false when out of range
func (rs ResultSet) At(i int) (ResultItem, bool) {
	if i < 0 || i >= len(rs.Items) {
		return ResultItem{}, false
	}
	return rs.Items[i], true
}

// IsEmpty reports whether the set has no items
func (rs ResultSet) IsEmpty() bool {
	return len(rs.Items) == 0
}

// MenuItem is an entry of the store navigation menu
type MenuItem struct {
	Title string     `json:"title" toml:"title" yaml:"title"`
	URL   string     `json:"url" toml:"url" yaml:"url"`
	Items []MenuItem `json:"items,omitempty" toml:"items,omitempty" yaml:"items,omitempty"`
}

// Cart mirrors the subset of the commerce cart the summary needs
type Cart struct {
	ID               string            `json:"id"`
	CheckoutURL      string            `json:"checkoutUrl,omitempty"`
	TotalQuantity    int               `json:"totalQuantity"`
	Cost             *CartCost         `json:"cost,omitempty"`
	DiscountCodes    []DiscountCode    `json:"discountCodes,omitempty"`
	AppliedGiftCards []AppliedGiftCard `json:"appliedGiftCards,omitempty"`
}

// CartCost holds the cart totals; either amount may be absent
type CartCost struct {
	SubtotalAmount *Money `json:"subtotalAmount,omitempty"`
	TotalAmount    *Money `json:"totalAmount,omitempty"`
}

// DiscountCode is a code entered on the cart
type DiscountCode struct {
	Code       string `json:"code"`
	Applicable bool   `json:"applicable"`
}

// AppliedGiftCard is a gift card redeemed against the cart
type AppliedGiftCard struct {
	ID             string `json:"id"`
	LastCharacters string `json:"lastCharacters"`
	AmountUsed     *Money `json:"amountUsed,omitempty"`
}

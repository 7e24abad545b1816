package storefront

import "shopgrip/internal/domain"

// PredictiveQuery is the parameter set of one predictive search request
type PredictiveQuery struct {
	Q          string
	Limit      int
	Predictive bool
}

// PredictiveSearchResponse is the envelope returned by the search endpoint
type PredictiveSearchResponse struct {
	Result PredictiveSearchResult `json:"result"`
}

// PredictiveSearchResult holds the categorized items and the total hit count
type PredictiveSearchResult struct {
	Items PredictiveItems `json:"items"`
	Total int             `json:"total"`
}

// PredictiveItems groups raw records by category
type PredictiveItems struct {
	Products    []Product    `json:"products"`
	Collections []Collection `json:"collections"`
	Articles    []Article    `json:"articles"`
	Pages       []Page       `json:"pages"`
}

// Product is a raw product record
type Product struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Handle             string   `json:"handle"`
	TrackingParameters string   `json:"trackingParameters,omitempty"`
	Variant            *Variant `json:"selectedOrFirstAvailableVariant,omitempty"`
}

// Variant carries the product image and price shown in the preview
type Variant struct {
	Image *domain.Image `json:"image,omitempty"`
	Price *domain.Money `json:"price,omitempty"`
}

// Collection is a raw collection record
type Collection struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Handle             string        `json:"handle"`
	TrackingParameters string        `json:"trackingParameters,omitempty"`
	Image              *domain.Image `json:"image,omitempty"`
}

// Article is a raw blog article record
type Article struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Handle             string        `json:"handle"`
	Blog               *BlogRef      `json:"blog,omitempty"`
	TrackingParameters string        `json:"trackingParameters,omitempty"`
	Image              *domain.Image `json:"image,omitempty"`
}

// BlogRef identifies the blog an article belongs to
type BlogRef struct {
	Handle string `json:"handle"`
}

// Page is a raw content page record
type Page struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Handle             string `json:"handle"`
	TrackingParameters string `json:"trackingParameters,omitempty"`
}

// EmptyResponse returns a response with no items
func EmptyResponse() *PredictiveSearchResponse {
	return &PredictiveSearchResponse{}
}

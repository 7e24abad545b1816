package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Open    bool
	Results int
	CartID  string
}

// PopupOpen reports whether the search popup is showing
func (c *ModelContext) PopupOpen() bool {
	return c.Open
}

// HasResults reports whether the popup lists any results
func (c *ModelContext) HasResults() bool {
	return c.Results > 0
}

// HasCart reports whether a cart is configured
func (c *ModelContext) HasCart() bool {
	return c.CartID != ""
}

// Package cart derives the cart summary shown next to the search popup.
package cart

import (
	"strings"

	"shopgrip/internal/domain"
)

// Summary is the display-ready view of a cart
type Summary struct {
	Quantity    int
	Subtotal    string // "-" when the subtotal is unknown
	TotalLabel  string // "" when no total line is shown
	Total       string
	Discounts   []string
	GiftCards   []GiftCardLine
	CheckoutURL string
}

// GiftCardLine is one applied gift card
type GiftCardLine struct {
	Code   string
	Amount string
}

// HasTotal reports whether a total line is shown
func (s Summary) HasTotal() bool {
	return s.TotalLabel != ""
}

// CanCheckout reports whether a checkout action is available
func (s Summary) CanCheckout() bool {
	return s.CheckoutURL != ""
}

// Summarize builds the summary for c. A nil cart yields an empty summary.
func Summarize(c *domain.Cart) Summary {
	s := Summary{Subtotal: "-"}
	if c == nil {
		return s
	}
	s.Quantity = c.TotalQuantity
	s.CheckoutURL = strings.TrimSpace(c.CheckoutURL)
	s.Discounts = ApplicableDiscountCodes(c)

	if c.Cost != nil {
		if hasAmount(c.Cost.SubtotalAmount) {
			s.Subtotal = FormatMoney(c.Cost.SubtotalAmount)
		}
		switch {
		case hasAmount(c.Cost.TotalAmount):
			s.TotalLabel = "Total"
			s.Total = FormatMoney(c.Cost.TotalAmount)
		case hasAmount(c.Cost.SubtotalAmount):
			s.TotalLabel = "Estimated Total"
			s.Total = FormatMoney(c.Cost.SubtotalAmount)
		}
	}

	for _, g := range c.AppliedGiftCards {
		line := GiftCardLine{Code: "***" + g.LastCharacters}
		if hasAmount(g.AmountUsed) {
			line.Amount = "-" + FormatMoney(g.AmountUsed)
		}
		s.GiftCards = append(s.GiftCards, line)
	}
	return s
}

// ApplicableDiscountCodes returns the codes the store accepted, in cart order
func ApplicableDiscountCodes(c *domain.Cart) []string {
	if c == nil {
		return nil
	}
	var out []string
	for _, d := range c.DiscountCodes {
		if d.Applicable && d.Code != "" {
			out = append(out, d.Code)
		}
	}
	return out
}

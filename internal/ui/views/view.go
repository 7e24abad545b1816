package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopgrip/internal/cart"
	"shopgrip/internal/nav"
	"shopgrip/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Endpoint        string
	Menu            []nav.Entry
	HasCart         bool
	CartLoading     bool
	Cart            cart.Summary
	CartError       string
	LastDestination string
	StatusMessage   string
	StatusIsError   bool
	Footer          string
	Popup           *PopupState // nil when the popup is closed
}

// PopupState is the render state of the predictive search popup
type PopupState struct {
	Input            string
	ListboxID        string
	ActiveDescendant string
	Expanded         bool
	Loading          bool // show the loading indicator
	Empty            bool // nothing typed yet
	NoResults        bool
	Term             string
	Sections         []SectionView
	HiddenAbove      int
	HiddenBelow      int
	ViewAll          string // full results hint, "" when nothing is typed
	Footer           string
	Width            int
}

// SectionView is a category heading with its visible options
type SectionView struct {
	Label   string
	Options []OptionView
}

// OptionView is one listbox option
type OptionView struct {
	ID       string
	Index    int
	Selected bool
	Segments []logic.Segment
	Price    string
	ImageAlt string
}

// Text strings shown by the popup
const (
	LoadingText = "Searching..."
	EmptyText   = "Start typing to search..."
)

// NoResultsText is shown when a settled or failed query has nothing to list
func NoResultsText(term string) string {
	return fmt.Sprintf("No results found for %q", term)
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	resultsRender *ResultsRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		resultsRender: NewResultsRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	main := r.renderMain(state)
	if state.Popup == nil {
		return main
	}

	width, height := state.Width, state.Height
	if width <= 0 {
		width = 80 // Default terminal width
	}
	if height <= 0 {
		height = 24
	}
	return r.popupRender.RenderPopupOverlay(main, r.RenderPopup(*state.Popup), height, width)
}

func (r *Renderer) renderMain(state ViewState) string {
	content := &strings.Builder{}

	title := r.styles.Title.Render("shopgrip")
	if state.Endpoint != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", r.styles.Dim.Render(state.Endpoint))
	}
	content.WriteString(title)
	content.WriteString("\n")

	if len(state.Menu) > 0 {
		content.WriteString(r.styles.Section.Render("Menu"))
		content.WriteString("\n")
		for _, e := range state.Menu {
			indent := strings.Repeat("  ", e.Depth+1)
			fmt.Fprintf(content, "%s%s %s\n", indent, e.Title, r.styles.Dim.Render(e.URL))
		}
		content.WriteString("\n")
	}

	if state.HasCart {
		content.WriteString(r.renderCart(state))
		content.WriteString("\n")
	}

	if state.LastDestination != "" {
		fmt.Fprintf(content, "Last destination: %s\n", state.LastDestination)
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError.MarginTop(1)
		}
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.Footer != "" {
		content.WriteString("\n")
		content.WriteString(state.Footer)
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderCart(state ViewState) string {
	b := &strings.Builder{}
	b.WriteString(r.styles.Section.Render("Cart"))
	b.WriteString("\n")

	switch {
	case state.CartLoading && state.Cart.Quantity == 0:
		b.WriteString(r.styles.StatusLoading.Render("  Loading cart..."))
		b.WriteString("\n")
		return b.String()
	case state.CartError != "":
		b.WriteString(r.styles.StatusError.Render("  " + state.CartError))
		b.WriteString("\n")
	}

	s := state.Cart
	fmt.Fprintf(b, "  Items: %d\n", s.Quantity)
	fmt.Fprintf(b, "  Subtotal: %s\n", s.Subtotal)
	for _, code := range s.Discounts {
		fmt.Fprintf(b, "  Discount: %s\n", code)
	}
	for _, g := range s.GiftCards {
		fmt.Fprintf(b, "  Gift card %s %s\n", g.Code, g.Amount)
	}
	if s.HasTotal() {
		fmt.Fprintf(b, "  %s: %s\n", s.TotalLabel, r.styles.Price.Render(s.Total))
	}
	if s.CanCheckout() {
		fmt.Fprintf(b, "  Checkout: %s\n", r.styles.Dim.Render(s.CheckoutURL))
	}
	return b.String()
}

// RenderPopup renders the popup body without its frame
func (r *Renderer) RenderPopup(p PopupState) string {
	b := &strings.Builder{}

	prompt := r.styles.Prompt.Render("Search: ") + p.Input
	if p.Loading {
		prompt += "  " + r.styles.StatusLoading.Render(LoadingText)
	}
	b.WriteString(prompt)
	b.WriteString("\n\n")

	switch {
	case p.Empty:
		b.WriteString(r.styles.Dim.Render(EmptyText))
	case len(p.Sections) > 0:
		b.WriteString(r.resultsRender.Render(p))
	case p.Loading:
		b.WriteString(r.styles.StatusLoading.Render(LoadingText))
	case p.NoResults:
		b.WriteString(NoResultsText(p.Term))
	}

	if p.ViewAll != "" {
		b.WriteString("\n\n")
		b.WriteString(r.styles.Dim.Render(p.ViewAll))
	}
	if p.Footer != "" {
		b.WriteString("\n")
		b.WriteString(p.Footer)
	}

	out := b.String()
	if p.Width > 0 {
		out = lipgloss.NewStyle().Width(p.Width).Render(out)
	}
	return out
}

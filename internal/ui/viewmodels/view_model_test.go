package viewmodels

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopgrip/internal/config"
	"shopgrip/internal/domain"
	"shopgrip/internal/nav"
	"shopgrip/internal/ui/logic"
	"shopgrip/internal/ui/services/navigation"
	"shopgrip/internal/ui/services/search"
	"shopgrip/internal/ui/state"
)

func results() domain.ResultSet {
	return domain.ResultSet{Items: []domain.ResultItem{
		{ID: "p1", Title: "Red Shoes", URL: "/products/red-shoes", Category: domain.CategoryProduct,
			Price: &domain.Money{Amount: "120.00", CurrencyCode: "USD"},
			Image: &domain.Image{URL: "https://cdn.example.com/red.jpg", AltText: "Red leather shoes"}},
		{ID: "p2", Title: "Redwood Candle", URL: "/products/redwood-candle", Category: domain.CategoryProduct},
		{ID: "a1", Title: "Caring for Red Leather", URL: "/blogs/journal/red-leather", Category: domain.CategoryArticle},
	}, Total: 3}
}

func title(segments []logic.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func newViewModel(cfg *config.Config) *ViewModel {
	vm := NewViewModel(state.NewAppState("http://127.0.0.1:8787", "", nav.Menu{}), cfg, textinput.New())
	vm.SetDimensions(100, 40)
	return vm
}

// settle drives the controller to a settled state for query with rs
func settle(t *testing.T, query string, rs domain.ResultSet, fail error) search.State {
	t.Helper()
	s, _ := search.Reduce(search.NewState(search.DefaultSettings()), search.Opened{})
	s, effects := search.Reduce(s, search.QueryChanged{Raw: query})
	s, effects = search.Reduce(s, search.DebounceElapsed{Gen: effects[0].(search.ScheduleDebounce).Gen})
	req := effects[0].(search.IssueRequest)
	if fail != nil {
		s, _ = search.Reduce(s, search.RequestFailed{Gen: req.Gen, Err: fail})
		return s
	}
	s, _ = search.Reduce(s, search.ResultsReceived{Gen: req.Gen, Results: rs})
	return s
}

func TestClosedPopupHasNoState(t *testing.T) {
	vs := newViewModel(config.DefaultConfig()).BuildViewState(search.NewState(search.DefaultSettings()), nil)
	assert.Nil(t, vs.Popup)
	assert.NotEmpty(t, vs.Footer)
}

func TestEmptyPopup(t *testing.T) {
	s, _ := search.Reduce(search.NewState(search.DefaultSettings()), search.Opened{})
	vs := newViewModel(config.DefaultConfig()).BuildViewState(s, nil)
	require.NotNil(t, vs.Popup)
	assert.True(t, vs.Popup.Empty)
	assert.Equal(t, ListboxID, vs.Popup.ListboxID)
}

func TestSettledPopupGroupsAndHighlights(t *testing.T) {
	s := settle(t, "red", results(), nil)
	s, _ = search.Reduce(s, search.KeyPressed{Key: search.KeyDown})

	p := newViewModel(config.DefaultConfig()).BuildPopupState(s, nil)
	require.Len(t, p.Sections, 2)
	assert.Equal(t, "Products", p.Sections[0].Label)
	assert.Equal(t, "Articles", p.Sections[1].Label)

	first := p.Sections[0].Options[0]
	assert.Equal(t, "search-result-0", first.ID)
	assert.True(t, first.Selected)
	assert.Equal(t, p.ActiveDescendant, first.ID)
	assert.Equal(t, []logic.Segment{{Text: "Red", Match: true}, {Text: " Shoes"}}, first.Segments)
	assert.Contains(t, first.Price, "120.00")
	assert.Empty(t, first.ImageAlt, "images are off by default")

	article := p.Sections[1].Options[0]
	assert.Equal(t, 2, article.Index)
	assert.False(t, article.Selected)
	assert.True(t, p.Expanded)
	assert.Contains(t, p.ViewAll, `"red"`)
}

func TestImagesAndPricesFollowSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.ShowPrices = false
	cfg.UISettings.ShowImages = true

	p := newViewModel(cfg).BuildPopupState(settle(t, "red", results(), nil), nil)
	first := p.Sections[0].Options[0]
	assert.Empty(t, first.Price)
	assert.Equal(t, "Red leather shoes", first.ImageAlt)
}

func TestNoResultsAndErrorsRenderAlike(t *testing.T) {
	vm := newViewModel(config.DefaultConfig())

	empty := vm.BuildPopupState(settle(t, "zebra", domain.ResultSet{}, nil), nil)
	assert.True(t, empty.NoResults)
	assert.Equal(t, "zebra", empty.Term)

	failed := vm.BuildPopupState(settle(t, "zebra", domain.ResultSet{}, errors.New("offline")), nil)
	assert.True(t, failed.NoResults)
	assert.Empty(t, failed.Sections)
}

func TestViewportLimitsOptions(t *testing.T) {
	viewport := navigation.NewService()
	viewport.SetHeight(2)
	viewport.SetTotal(3)
	viewport.Reveal(2)

	p := newViewModel(config.DefaultConfig()).BuildPopupState(settle(t, "red", results(), nil), viewport)
	assert.Equal(t, 1, p.HiddenAbove)
	assert.Equal(t, 0, p.HiddenBelow)
	require.Len(t, p.Sections, 2)
	assert.Len(t, p.Sections[0].Options, 1)
	assert.Equal(t, "Redwood Candle", title(p.Sections[0].Options[0].Segments))
}

func TestCartErrorSurfaces(t *testing.T) {
	st := state.NewAppState("", "demo", nav.Menu{})
	st.SetCart(nil, errors.New("offline"))
	vm := NewViewModel(st, config.DefaultConfig(), textinput.New())

	vs := vm.BuildViewState(search.NewState(search.DefaultSettings()), nil)
	assert.True(t, vs.HasCart)
	assert.Contains(t, vs.CartError, "offline")
	assert.False(t, vs.Cart.HasTotal())
}

func TestInputTextFollowsMode(t *testing.T) {
	ti := textinput.New()
	ti.SetValue("red")
	vm := NewViewModel(state.NewAppState("", "", nav.Menu{}), config.DefaultConfig(), ti)
	s, _ := search.Reduce(search.NewState(search.DefaultSettings()), search.Opened{})

	assert.Empty(t, vm.BuildPopupState(s, nil).Input)

	vm.SetSearching(true)
	assert.Contains(t, vm.BuildPopupState(s, nil).Input, "red")
}

func TestResultRowsLeavesRoomForHeaders(t *testing.T) {
	vm := NewViewModel(state.NewAppState("", "", nav.Menu{}), config.DefaultConfig(), textinput.New())
	vm.SetDimensions(80, 28)
	require.Equal(t, 8, vm.ListHeight())

	// two sections, three items: fits without scrolling
	assert.Equal(t, 6, vm.ResultRows(results()))

	var many domain.ResultSet
	for i, cat := range []domain.Category{
		domain.CategoryProduct, domain.CategoryProduct, domain.CategoryProduct, domain.CategoryProduct,
		domain.CategoryCollection, domain.CategoryCollection,
		domain.CategoryArticle, domain.CategoryArticle,
		domain.CategoryPage, domain.CategoryPage,
	} {
		many.Items = append(many.Items, domain.ResultItem{
			ID: fmt.Sprintf("r%d", i), Title: fmt.Sprintf("Red %d", i), URL: "/x", Category: cat,
		})
	}
	many.Total = len(many.Items)

	// four headers plus both scroll markers
	rows := vm.ResultRows(many)
	assert.Equal(t, 2, rows)

	viewport := navigation.NewService()
	viewport.SetHeight(rows)
	viewport.SetTotal(many.Len())
	for _, idx := range []int{0, 3, 5, 9} {
		viewport.Reveal(idx)
		p := vm.BuildPopupState(settle(t, "red", many, nil), viewport)

		lines := len(p.Sections)
		for _, sec := range p.Sections {
			lines += len(sec.Options)
		}
		if p.HiddenAbove > 0 {
			lines++
		}
		if p.HiddenBelow > 0 {
			lines++
		}
		assert.LessOrEqual(t, lines, vm.ListHeight(), "reveal %d", idx)
	}
}

package nav

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
)

const base = "https://shop.example.com"

func TestResolve(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://shop.example.com/collections/all", "/collections/all"},
		{"https://SHOP.example.com/products/red-shoes?variant=1#reviews", "/products/red-shoes?variant=1#reviews"},
		{"https://shop.example.com", "/"},
		{"/pages/about", "/pages/about"},
		{"https://blog.example.org/post", "https://blog.example.org/post"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(base, tt.raw))
		})
	}
}

func TestMenuFromConfig(t *testing.T) {
	m := NewMenu(base, []domain.MenuItem{
		{Title: "Collections", URL: "https://shop.example.com/collections", Items: []domain.MenuItem{
			{Title: "Shirts", URL: "/collections/shirts"},
		}},
		{Title: " ", URL: "/ignored"},
		{Title: "About", URL: "/pages/about"},
	})

	assert.Equal(t, []Entry{
		{Title: "Collections", URL: "/collections", Depth: 0},
		{Title: "Shirts", URL: "/collections/shirts", Depth: 1},
		{Title: "About", URL: "/pages/about", Depth: 0},
	}, m.Flatten())
	assert.Len(t, m.Items(), 2)
}

func TestEmptyMenu(t *testing.T) {
	assert.Empty(t, NewMenu(base, nil).Flatten())
}

func TestHistoryBounded(t *testing.T) {
	h := NewHistory(3)
	_, ok := h.Last()
	assert.False(t, ok)

	for i := 0; i < 5; i++ {
		h.Push(fmt.Sprintf("/p/%d", i))
	}
	assert.Equal(t, []string{"/p/2", "/p/3", "/p/4"}, h.Entries())
	last, ok := h.Last()
	assert.True(t, ok)
	assert.Equal(t, "/p/4", last)
}

func TestBusRouterPublishes(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	got := make(chan string, 1)
	bus.Subscribe(eventbus.EventNavigationRequested, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.NavigationRequestedEvent).URL
	})

	h := NewHistory(0)
	r := NewBusRouter(base, bus, h, nil)
	require.NoError(t, r.Navigate("https://shop.example.com/products/red-shoes?q=red"))

	select {
	case url := <-got:
		assert.Equal(t, "/products/red-shoes?q=red", url)
	case <-time.After(time.Second):
		t.Fatal("navigation was not published")
	}
	last, _ := h.Last()
	assert.Equal(t, "/products/red-shoes?q=red", last)
}

func TestBusRouterRejectsEmpty(t *testing.T) {
	r := NewBusRouter(base, nil, nil, nil)
	assert.ErrorIs(t, r.Navigate("  "), ErrEmptyDestination)
}

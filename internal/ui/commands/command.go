package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopgrip/internal/domain"
	"shopgrip/internal/nav"
	"shopgrip/internal/storefront"
	"shopgrip/internal/ui/services/navigation"
	"shopgrip/internal/ui/services/search"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides the collaborators commands run against
type CommandContext struct {
	Searcher storefront.Searcher
	Carts    storefront.CartFetcher
	Router   nav.Router
	Viewport *navigation.Service
	Limit    int
	Timeout  time.Duration
	OnClose  func()
	Logger   *zap.Logger
}

// CartLoadedMsg carries the outcome of a cart fetch
type CartLoadedMsg struct {
	Cart *domain.Cart
	Err  error
}

// TimerCommand delivers msg back to the program after a delay
type TimerCommand struct {
	after time.Duration
	msg   tea.Msg
}

// NewTimerCommand creates a new timer command
func NewTimerCommand(after time.Duration, msg tea.Msg) *TimerCommand {
	return &TimerCommand{after: after, msg: msg}
}

// Execute schedules the tick
func (c *TimerCommand) Execute() tea.Cmd {
	msg := c.msg
	return tea.Tick(c.after, func(time.Time) tea.Msg { return msg })
}

// FetchCommand runs one predictive search request
type FetchCommand struct {
	ctx   *CommandContext
	gen   uint64
	query string
}

// NewFetchCommand creates a new fetch command
func NewFetchCommand(ctx *CommandContext, gen uint64, query string) *FetchCommand {
	return &FetchCommand{ctx: ctx, gen: gen, query: query}
}

// Execute issues the request off the UI loop. The result is tagged with the
// request generation; the controller drops it if a newer query has been committed.
func (c *FetchCommand) Execute() tea.Cmd {
	cctx, gen, query := c.ctx, c.gen, c.query
	return func() tea.Msg {
		ctx := context.Background()
		if cctx.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cctx.Timeout)
			defer cancel()
		}

		resp, err := cctx.Searcher.PredictiveSearch(ctx, storefront.PredictiveQuery{
			Q:          query,
			Limit:      cctx.Limit,
			Predictive: true,
		})
		if err != nil {
			return search.RequestFailed{Gen: gen, Err: err}
		}
		return search.ResultsReceived{Gen: gen, Results: storefront.Normalize(resp, query)}
	}
}

// NavigateCommand hands a destination to the router
type NavigateCommand struct {
	ctx *CommandContext
	url string
}

// NewNavigateCommand creates a new navigate command
func NewNavigateCommand(ctx *CommandContext, url string) *NavigateCommand {
	return &NavigateCommand{ctx: ctx, url: url}
}

// Execute navigates synchronously; failures are logged only
func (c *NavigateCommand) Execute() tea.Cmd {
	if c.ctx.Router == nil {
		return nil
	}
	if err := c.ctx.Router.Navigate(c.url); err != nil {
		c.ctx.Logger.Warn("navigation failed", zap.String("url", c.url), zap.Error(err))
	}
	return nil
}

// CloseCommand returns the UI to the main screen
type CloseCommand struct {
	ctx *CommandContext
}

// NewCloseCommand creates a new close command
func NewCloseCommand(ctx *CommandContext) *CloseCommand {
	return &CloseCommand{ctx: ctx}
}

// Execute runs the close hook
func (c *CloseCommand) Execute() tea.Cmd {
	if c.ctx.Viewport != nil {
		c.ctx.Viewport.Reset()
	}
	if c.ctx.OnClose != nil {
		c.ctx.OnClose()
	}
	return nil
}

// RevealCommand scrolls the result list so index is on screen
type RevealCommand struct {
	ctx   *CommandContext
	index int
}

// NewRevealCommand creates a new reveal command
func NewRevealCommand(ctx *CommandContext, index int) *RevealCommand {
	return &RevealCommand{ctx: ctx, index: index}
}

// Execute adjusts the viewport
func (c *RevealCommand) Execute() tea.Cmd {
	if c.ctx.Viewport != nil {
		c.ctx.Viewport.Reveal(c.index)
	}
	return nil
}

// LoadCartCommand fetches the cart shown on the main screen
type LoadCartCommand struct {
	ctx *CommandContext
	id  string
}

// NewLoadCartCommand creates a new cart command
func NewLoadCartCommand(ctx *CommandContext, id string) *LoadCartCommand {
	return &LoadCartCommand{ctx: ctx, id: id}
}

// Execute fetches the cart off the UI loop
func (c *LoadCartCommand) Execute() tea.Cmd {
	if c.ctx.Carts == nil || c.id == "" {
		return nil
	}
	cctx, id := c.ctx, c.id
	return func() tea.Msg {
		ctx := context.Background()
		if cctx.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cctx.Timeout)
			defer cancel()
		}
		cart, err := cctx.Carts.Cart(ctx, id)
		return CartLoadedMsg{Cart: cart, Err: err}
	}
}

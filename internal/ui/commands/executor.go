package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopgrip/internal/logging"
	"shopgrip/internal/ui/services/search"
)

// Executor turns controller effects into Bubble Tea commands
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	ctx.Logger = logging.OrNop(ctx.Logger).Named("commands")
	return &Executor{ctx: ctx}
}

// Execute runs effects in order. Synchronous effects (navigation, closing,
// scrolling) happen before Execute returns; timers and requests are returned
// as a batched command.
func (e *Executor) Execute(effects []search.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		cmd := e.commandFor(eff)
		if cmd == nil {
			continue
		}
		if c := cmd.Execute(); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

// ExecuteLoadCart creates and executes a cart fetch
func (e *Executor) ExecuteLoadCart(id string) tea.Cmd {
	return NewLoadCartCommand(e.ctx, id).Execute()
}

func (e *Executor) commandFor(eff search.Effect) Command {
	switch eff := eff.(type) {
	case search.ScheduleDebounce:
		return NewTimerCommand(eff.After, search.DebounceElapsed{Gen: eff.Gen})
	case search.ScheduleLoader:
		return NewTimerCommand(eff.After, search.LoaderDelayElapsed{Gen: eff.Gen})
	case search.IssueRequest:
		e.ctx.Logger.Debug("issue request", zap.Uint64("gen", eff.Gen), zap.String("query", eff.Query))
		return NewFetchCommand(e.ctx, eff.Gen, eff.Query)
	case search.Navigate:
		return NewNavigateCommand(e.ctx, eff.URL)
	case search.ClosePopup:
		return NewCloseCommand(e.ctx)
	case search.ScrollIntoView:
		return NewRevealCommand(e.ctx, eff.Index)
	default:
		e.ctx.Logger.Warn("unknown effect", zap.Any("effect", eff))
		return nil
	}
}

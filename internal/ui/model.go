package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopgrip/internal/config"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/logging"
	"shopgrip/internal/nav"
	"shopgrip/internal/storefront"
	"shopgrip/internal/ui/commands"
	"shopgrip/internal/ui/handlers"
	"shopgrip/internal/ui/input"
	inputtypes "shopgrip/internal/ui/input/types"
	"shopgrip/internal/ui/services/navigation"
	"shopgrip/internal/ui/services/search"
	"shopgrip/internal/ui/state"
	"shopgrip/internal/ui/viewmodels"
	"shopgrip/internal/ui/views"
)

// popupChrome is the popup border, padding and prompt the text input shares a row with
const popupChrome = len("Search: ") + 4

// Storefront is the remote store the UI searches and loads the cart from
type Storefront interface {
	storefront.Searcher
	storefront.CartFetcher
}

// Options wires the model's collaborators
type Options struct {
	Bus    eventbus.EventBus
	Config *config.Config
	Store  Storefront
	Router nav.Router
	Menu   nav.Menu
	Logger *zap.Logger
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // main screen state
	logger *zap.Logger

	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	search       *search.Service        // predictive search controller
	viewport     *navigation.Service    // result list scrolling
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // turns controller effects into tea commands
	inputHandler *input.Handler         // input handling
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := logging.OrNop(opts.Logger).Named("ui")
	appState := state.NewAppState(cfg.Endpoint, cfg.CartID, opts.Menu)

	m := &Model{
		bus:          opts.Bus,
		config:       cfg,
		state:        appState,
		logger:       logger,
		viewport:     navigation.NewService(),
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
	}

	m.search = search.NewService(search.Settings{
		Debounce:       cfg.Debounce(),
		LoaderDelay:    cfg.LoaderDelay(),
		SearchPagePath: cfg.SearchPagePath,
	}, opts.Bus, logger)

	cmdCtx := &commands.CommandContext{
		Router:   opts.Router,
		Viewport: m.viewport,
		Limit:    cfg.Limit,
		Timeout:  cfg.RequestTimeout(),
		Logger:   logger,
		OnClose: func() {
			m.inputHandler.ChangeMode(inputtypes.ModeNormal)
		},
	}
	if opts.Store != nil {
		cmdCtx.Searcher = opts.Store
		cmdCtx.Carts = opts.Store
	}
	m.cmdExecutor = commands.NewExecutor(cmdCtx)

	m.viewModel = viewmodels.NewViewModel(appState, cfg, textinput.New())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.loadCart()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.Width, m.state.Height = msg.Width, msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.viewport.SetHeight(m.viewModel.ResultRows(m.search.State().Results()))
		m.inputHandler.SetWidth(m.viewModel.PopupWidth() - popupChrome)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		m.syncTextInput()
		return m, tea.Batch(cmds...)

	case search.Event:
		return m, m.dispatch(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetSearching(m.inputHandler.CurrentMode() == inputtypes.ModeSearch)
	m.syncTextInput()

	return m.renderer.Render(m.viewModel.BuildViewState(m.search.State(), m.viewport))
}

// SearchState exposes the controller state
func (m *Model) SearchState() search.State {
	return m.search.State()
}

// AppState exposes the main screen state
func (m *Model) AppState() *state.AppState {
	return m.state
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

func (m *Model) inputContext() *input.ModelContext {
	s := m.search.State()
	return &input.ModelContext{
		Open:    s.Open(),
		Results: s.Results().Len(),
		CartID:  m.state.CartID,
	}
}

func (m *Model) syncTextInput() {
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
}

// dispatch feeds one event to the controller and executes what it asks for
func (m *Model) dispatch(ev search.Event) tea.Cmd {
	effects := m.search.Dispatch(ev)

	s := m.search.State()
	m.viewport.SetHeight(m.viewModel.ResultRows(s.Results()))
	if total := s.Results().Len(); total != m.viewport.State().Total || !s.Cursor().HasSelection() {
		m.viewport.SetTotal(total)
	}
	return m.cmdExecutor.Execute(effects)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("action", zap.String("type", action.Type()))
	switch a := action.(type) {
	case inputtypes.OpenPopupAction:
		return m.dispatch(search.Opened{})

	case inputtypes.UpdateTextAction:
		return m.dispatch(search.QueryChanged{Raw: a.Text})

	case inputtypes.SearchKeyAction:
		return m.dispatch(search.KeyPressed{Key: a.Key})

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.ReloadCartAction:
		return m.loadCart()

	case inputtypes.QuitAction:
		if m.search.State().Open() {
			m.dispatch(search.Closed{})
		}
		return tea.Quit
	}
	return nil
}

func (m *Model) loadCart() tea.Cmd {
	if m.state.CartID == "" {
		return nil
	}
	m.state.CartLoading = true
	return m.cmdExecutor.ExecuteLoadCart(m.state.CartID)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		m.state.SetStatus("Help pager unavailable", true)
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case commands.CartLoadedMsg:
		m.state.SetCart(msg.Cart, msg.Err)
		if msg.Err != nil {
			m.logger.Warn("cart load failed", zap.String("cart_id", m.state.CartID), zap.Error(msg.Err))
			return m, nil
		}
		if m.bus != nil {
			m.bus.Publish(eventbus.CartLoadedEvent{Cart: msg.Cart})
		}
		return m, nil

	case handlers.ClearStatusMsg:
		m.eventHandler.ClearStatus(msg)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", zap.Error(msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.state.InPager = false
		return m, nil

	default:
		// cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

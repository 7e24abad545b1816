package viewmodels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"shopgrip/internal/cart"
	"shopgrip/internal/config"
	"shopgrip/internal/domain"
	"shopgrip/internal/ui/input/types"
	"shopgrip/internal/ui/logic"
	"shopgrip/internal/ui/services/navigation"
	"shopgrip/internal/ui/services/search"
	"shopgrip/internal/ui/services/selection"
	"shopgrip/internal/ui/state"
	"shopgrip/internal/ui/views"
)

// ListboxID is the element id of the popup result list
const ListboxID = "predictive-search-results"

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	width     int
	height    int
	help      help.Model
	textInput textinput.Model
	searching bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:     appState,
		config:    cfg,
		help:      help.New(),
		textInput: textInput,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetSearching records whether the search mode owns the keyboard
func (vm *ViewModel) SetSearching(searching bool) {
	vm.searching = searching
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// inputText is the rendered search field, empty outside search mode
func (vm *ViewModel) inputText() string {
	if !vm.searching {
		return ""
	}
	return vm.textInput.View()
}

// PopupWidth is the inner width of the popup for the current terminal
func (vm *ViewModel) PopupWidth() int {
	w := vm.width - 10
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// ListHeight is the number of result rows the popup can show
func (vm *ViewModel) ListHeight() int {
	h := vm.height/2 - 6
	if h < 3 {
		h = 3
	}
	return h
}

// ResultRows is how many result items fit in ListHeight once rs is drawn
// with a header per category and, when it overflows, the scroll markers
func (vm *ViewModel) ResultRows(rs domain.ResultSet) int {
	rows := vm.ListHeight() - len(logic.Sections(rs))
	if rs.Len() > rows {
		rows -= 2
	}
	return max(rows, 1)
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(s search.State, viewport *navigation.Service) views.ViewState {
	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Endpoint:        vm.state.Endpoint,
		Menu:            vm.state.Menu,
		HasCart:         vm.state.CartID != "",
		CartLoading:     vm.state.CartLoading,
		Cart:            cart.Summarize(vm.state.Cart),
		LastDestination: vm.state.LastDestination,
		StatusMessage:   vm.state.StatusMessage,
		StatusIsError:   vm.state.StatusIsError,
		Footer:          vm.help.ShortHelpView(types.NormalKeys.ShortHelp()),
	}
	if vm.state.CartErr != nil {
		vs.CartError = "Cart unavailable: " + vm.state.CartErr.Error()
	}
	if s.Open() {
		popup := vm.BuildPopupState(s, viewport)
		vs.Popup = &popup
	}
	return vs
}

// BuildPopupState derives the popup render state from the controller state
func (vm *ViewModel) BuildPopupState(s search.State, viewport *navigation.Service) views.PopupState {
	term := s.Term()
	p := views.PopupState{
		Input:            vm.inputText(),
		ListboxID:        ListboxID,
		ActiveDescendant: s.ActiveDescendant(),
		Expanded:         s.HasResults(),
		Loading:          s.ShowLoader(),
		Term:             term,
		Footer:           vm.help.ShortHelpView(types.SearchKeys.ShortHelp()),
		Width:            vm.PopupWidth(),
	}

	// nothing committed yet and nothing typed
	if term == "" && s.Raw() == "" {
		p.Empty = true
		return p
	}
	if typed := strings.TrimSpace(s.Raw()); typed != "" {
		p.ViewAll = fmt.Sprintf("enter: view all results for %q", typed)
	}

	rs := s.Results()
	if rs.IsEmpty() {
		phase := s.Phase()
		p.NoResults = term != "" && (phase == search.PhaseSettled || phase == search.PhaseErrored)
		return p
	}

	window := navigation.Window{Start: 0, End: rs.Len()}
	if viewport != nil {
		window = viewport.Window()
		p.HiddenAbove, p.HiddenBelow = window.Hidden(rs.Len())
	}

	cursor := s.Cursor().Index()
	showPrices := vm.config == nil || vm.config.UISettings.ShowPrices
	showImages := vm.config != nil && vm.config.UISettings.ShowImages

	for _, sec := range logic.Sections(rs) {
		view := views.SectionView{Label: sec.Label}
		for i, item := range sec.Items {
			idx := sec.Start + i
			if idx < window.Start || idx >= window.End {
				continue
			}
			opt := views.OptionView{
				ID:       selection.OptionID(idx),
				Index:    idx,
				Selected: idx == cursor,
				Segments: logic.Highlight(item.Title, term),
			}
			if showPrices && item.Price != nil {
				opt.Price = cart.FormatMoney(item.Price)
			}
			if showImages && item.Image != nil {
				opt.ImageAlt = item.Image.AltText
				if opt.ImageAlt == "" {
					opt.ImageAlt = "image"
				}
			}
			view.Options = append(view.Options, opt)
		}
		if len(view.Options) > 0 {
			p.Sections = append(p.Sections, view)
		}
	}
	return p
}

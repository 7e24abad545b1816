package navigation

// DefaultHeight is the number of result rows shown before the terminal size is known
const DefaultHeight = 10

// Service keeps the highlighted result inside the visible window of the popup list
type Service struct {
	state State
}

// NewService creates a viewport with the default height
func NewService() *Service {
	return &Service{state: State{Height: DefaultHeight}}
}

// State returns a copy of the current viewport
func (s *Service) State() State {
	return s.state
}

// SetHeight updates the number of rows the list can show
func (s *Service) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.Height = height
	s.clamp()
}

// SetTotal rebinds the viewport to a list of total rows and scrolls back to the top
func (s *Service) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	s.state.Total = total
	s.state.Offset = 0
}

// Reveal scrolls the minimum amount needed for row index to be visible
func (s *Service) Reveal(index int) {
	if index < 0 || index >= s.state.Total {
		return
	}
	if index < s.state.Offset {
		s.state.Offset = index
	} else if index >= s.state.Offset+s.state.Height {
		s.state.Offset = index - s.state.Height + 1
	}
	s.clamp()
}

// Window returns the visible row range
func (s *Service) Window() Window {
	start := s.state.Offset
	end := min(start+s.state.Height, s.state.Total)
	return Window{Start: start, End: end}
}

// Reset scrolls to the top of an empty list
func (s *Service) Reset() {
	s.state.Offset = 0
	s.state.Total = 0
}

func (s *Service) clamp() {
	maxOffset := max(s.state.Total-s.state.Height, 0)
	if s.state.Offset > maxOffset {
		s.state.Offset = maxOffset
	}
	if s.state.Offset < 0 {
		s.state.Offset = 0
	}
}

package navigation

// State tracks which slice of the result list is on screen
type State struct {
	Offset int
	Height int
	Total  int
}

// Window is the half-open row range [Start, End) currently visible
type Window struct {
	Start int
	End   int
}

// Hidden reports the number of rows scrolled off above and below
func (w Window) Hidden(total int) (above, below int) {
	return w.Start, max(total-w.End, 0)
}

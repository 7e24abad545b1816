package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws the styled popup over a greyed-out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	// upper third of the screen
	y := max((height-modalH)/3, 0)

	plain := strings.Split(ansi.Strip(mainContent), "\n")
	for len(plain) < height {
		plain = append(plain, "")
	}
	out := make([]string, len(plain))
	for i, line := range plain {
		out[i] = pr.styles.Backdrop.Render(line)
	}

	for i, line := range strings.Split(styledPopup, "\n") {
		row := y + i
		if row >= len(plain) {
			plain = append(plain, "")
			out = append(out, "")
		}
		out[row] = pr.splice(plain[row], line, x, modalW)
	}
	return strings.Join(out, "\n")
}

// splice replaces cells [x, x+w) of a plain backdrop line with overlay
func (pr *PopupRenderer) splice(plain, overlay string, x, w int) string {
	left := ansi.Truncate(plain, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(plain, x+w, "")
	return pr.styles.Backdrop.Render(left) + overlay + pr.styles.Backdrop.Render(right)
}

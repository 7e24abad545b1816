package views

import (
	"fmt"
	"strings"

	"shopgrip/internal/ui/logic"
)

// ResultsRenderer draws the grouped listbox inside the popup
type ResultsRenderer struct {
	styles *Styles
}

// NewResultsRenderer creates a new results renderer
func NewResultsRenderer(styles *Styles) *ResultsRenderer {
	return &ResultsRenderer{styles: styles}
}

// Render draws section headers and their options
func (rr *ResultsRenderer) Render(p PopupState) string {
	var lines []string
	if p.HiddenAbove > 0 {
		lines = append(lines, rr.styles.Scroll.Render(fmt.Sprintf("↑ %d more", p.HiddenAbove)))
	}
	for _, sec := range p.Sections {
		lines = append(lines, rr.styles.Section.Render(strings.ToUpper(sec.Label)))
		for _, opt := range sec.Options {
			lines = append(lines, rr.renderOption(opt))
		}
	}
	if p.HiddenBelow > 0 {
		lines = append(lines, rr.styles.Scroll.Render(fmt.Sprintf("↓ %d more", p.HiddenBelow)))
	}
	return strings.Join(lines, "\n")
}

func (rr *ResultsRenderer) renderOption(opt OptionView) string {
	marker := "  "
	if opt.Selected {
		marker = "> "
	}

	title := rr.renderSegments(opt.Segments)
	line := marker + title
	if opt.ImageAlt != "" {
		line += " " + rr.styles.Dim.Render("["+opt.ImageAlt+"]")
	}
	if opt.Price != "" {
		line += "  " + rr.styles.Price.Render(opt.Price)
	}
	if opt.Selected {
		line = rr.styles.SelectionBg.Render(line)
	}
	return line
}

func (rr *ResultsRenderer) renderSegments(segments []logic.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Match {
			b.WriteString(rr.styles.Highlight.Render(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

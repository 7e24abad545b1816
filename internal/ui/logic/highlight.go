package logic

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Segment is a run of title text, flagged when it matches the search term
type Segment struct {
	Text  string
	Match bool
}

var matcher = search.New(language.Und, search.IgnoreCase)

// Highlight splits title into alternating plain and matching segments.
// Matching ignores case and does not overlap. A blank term yields the whole
// title as one plain segment.
func Highlight(title, term string) []Segment {
	term = strings.TrimSpace(term)
	if title == "" {
		return nil
	}
	if term == "" {
		return []Segment{{Text: title}}
	}

	var segments []Segment
	rest := title
	for rest != "" {
		start, end := matcher.IndexString(rest, term)
		if start < 0 || end <= start {
			break
		}
		if start > 0 {
			segments = append(segments, Segment{Text: rest[:start]})
		}
		segments = append(segments, Segment{Text: rest[start:end], Match: true})
		rest = rest[end:]
	}
	if rest != "" {
		segments = append(segments, Segment{Text: rest})
	}
	return segments
}

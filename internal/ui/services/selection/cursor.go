package selection

import "fmt"

// None is the cursor value when no result is selected
const None = -1

// Cursor is a selection index over a result list of fixed length.
// The index is always within [None, length-1].
type Cursor struct {
	index  int
	length int
}

// NewCursor creates a cursor with nothing selected
func NewCursor(length int) Cursor {
	if length < 0 {
		length = 0
	}
	return Cursor{index: None, length: length}
}

// Index returns the selected index or None
func (c Cursor) Index() int {
	return c.index
}

// Len returns the length of the list the cursor walks
func (c Cursor) Len() int {
	return c.length
}

// HasSelection reports whether an item is selected
func (c Cursor) HasSelection() bool {
	return c.index != None
}

// Down moves to the next item, staying put on the last one
func (c Cursor) Down() Cursor {
	if c.index < c.length-1 {
		c.index++
	}
	return c
}

// Up moves to the previous item; from the first item it deselects
func (c Cursor) Up() Cursor {
	if c.index > None {
		c.index--
	}
	return c
}

// Reset deselects and rebinds the cursor to a list of the given length
func (c Cursor) Reset(length int) Cursor {
	return NewCursor(length)
}

// ActiveDescendant returns the element id of the selected option, or "" when none
func (c Cursor) ActiveDescendant() string {
	if c.index == None {
		return ""
	}
	return OptionID(c.index)
}

// OptionID returns the element id of the option at index
func OptionID(index int) string {
	return fmt.Sprintf("search-result-%d", index)
}

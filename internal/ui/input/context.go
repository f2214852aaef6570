package input

import (
	"listkit/internal/ui/input/types"
	"listkit/internal/ui/list"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	List      *list.Controller[string]
	MultiFn   func() bool
	Selection types.SelectionMode
}

// ActiveIndex returns the active position
func (c *ModelContext) ActiveIndex() int {
	return c.List.ActiveIndex()
}

// IsTyping reports whether a typeahead search is in progress
func (c *ModelContext) IsTyping() bool {
	return c.List.IsTyping()
}

// HasSelection returns true if any items are selected
func (c *ModelContext) HasSelection() bool {
	return len(c.List.SelectedItems()) > 0
}

// Multi reports whether multi-select is on
func (c *ModelContext) Multi() bool {
	return c.MultiFn != nil && c.MultiFn()
}

// SelectionMode returns whether selection follows focus
func (c *ModelContext) SelectionMode() types.SelectionMode {
	if c.Selection == "" {
		return types.SelectionFollow
	}
	return c.Selection
}

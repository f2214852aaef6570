package list

import (
	"github.com/rs/zerolog"

	"listkit/internal/domain"
	"listkit/internal/ui/services/events"
	"listkit/internal/ui/services/focus"
	"listkit/internal/ui/services/navigation"
	"listkit/internal/ui/services/selection"
	"listkit/internal/ui/services/typeahead"
)

// Controller composes focus, navigation, selection and typeahead into the
// operations a listbox, menu or tree binds its keys to.
type Controller[V comparable] struct {
	// Services
	Focus      *focus.Service[V]
	Navigation *navigation.Service[V]
	Selection  *selection.Service[V]
	Typeahead  *typeahead.Service[V]

	inputs Inputs[V]
	logger zerolog.Logger

	// anchorIndex records where a range gesture is meant to start; it is
	// committed to the selection service only when a range move happens.
	anchorIndex int
	wrap        bool
}

// Option configures a Controller
type Option[V comparable] func(*Controller[V])

// WithLogger sets the logger used for operation tracing
func WithLogger[V comparable](logger zerolog.Logger) Option[V] {
	return func(c *Controller[V]) {
		c.logger = logger
	}
}

// New creates a controller over the host inputs
func New[V comparable](inputs Inputs[V], opts ...Option[V]) *Controller[V] {
	if inputs.Bus == nil {
		inputs.Bus = &events.NullBus{}
	}
	if inputs.Values == nil {
		inputs.Values = selection.NewSet[V]()
	}

	fm := focus.NewService(inputs.Items)
	c := &Controller[V]{
		Focus:      fm,
		Navigation: navigation.NewService(inputs.Bus, fm),
		Selection:  selection.NewService(inputs.Bus, fm, inputs.Values),
		Typeahead:  typeahead.NewService(inputs.Bus, fm),
		inputs:     inputs,
		logger:     zerolog.Nop(),
		wrap:       true,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.wireServices()
	return c
}

// wireServices connects services with the host accessors
func (c *Controller[V]) wireServices() {
	if c.inputs.Disabled != nil {
		c.Focus.SetDisabledFunction(c.inputs.Disabled)
	}
	if c.inputs.FocusMode != nil {
		c.Focus.SetModeFunction(c.inputs.FocusMode)
	}

	// Range gestures suspend wrapping for the duration of a move.
	c.Navigation.SetWrapFunction(func() bool {
		return c.wrap && c.inputs.Wrap != nil && c.inputs.Wrap()
	})

	if c.inputs.Multi != nil {
		c.Selection.SetMultiFunction(c.inputs.Multi)
	}

	c.Typeahead.SetDelayFunction(func() float64 {
		if c.inputs.TypeaheadDelay == nil {
			return typeahead.DefaultDelay
		}
		return c.inputs.TypeaheadDelay()
	})
}

// First moves to the first focusable item
func (c *Controller[V]) First(opts NavOptions) bool {
	return c.navigate("first", opts, c.Navigation.First)
}

// Last moves to the last focusable item
func (c *Controller[V]) Last(opts NavOptions) bool {
	return c.navigate("last", opts, c.Navigation.Last)
}

// Next moves to the next focusable item
func (c *Controller[V]) Next(opts NavOptions) bool {
	return c.navigate("next", opts, c.Navigation.Next)
}

// Prev moves to the previous focusable item
func (c *Controller[V]) Prev(opts NavOptions) bool {
	return c.navigate("prev", opts, c.Navigation.Prev)
}

// Goto moves to item
func (c *Controller[V]) Goto(item domain.Item[V], opts NavOptions) bool {
	return c.navigate("goto", opts, func() bool {
		return c.Navigation.Goto(item)
	})
}

// Search feeds one character to typeahead, moving to the match
func (c *Controller[V]) Search(char string, opts NavOptions) bool {
	return c.navigate("search", opts, func() bool {
		return c.Typeahead.Search(char)
	})
}

// Anchor records index as the start of an intended range gesture
func (c *Controller[V]) Anchor(index int) {
	c.anchorIndex = index
}

// AnchorIndex returns the recorded range gesture start
func (c *Controller[V]) AnchorIndex() int {
	return c.anchorIndex
}

// Unfocus clears the active item
func (c *Controller[V]) Unfocus() {
	c.Focus.Unfocus()
}

// SetDefaultState activates the first selected focusable item, falling back
// to the first focusable item.
func (c *Controller[V]) SetDefaultState() {
	first := focus.NoIndex
	for i, item := range c.Focus.Items() {
		if !c.Focus.IsFocusable(item) {
			continue
		}
		if first == focus.NoIndex {
			first = i
		}
		if c.Selection.IsSelected(item) {
			c.Focus.Activate(i)
			return
		}
	}
	if first != focus.NoIndex {
		c.Focus.Activate(first)
	}
}

// UpdateSelection applies the selection side effect named by opts
func (c *Controller[V]) UpdateSelection(opts NavOptions) {
	switch {
	case opts.Toggle:
		c.Selection.Toggle(nil)
	case opts.Select:
		c.Selection.Select(nil, true)
	case opts.SelectOne:
		c.Selection.SelectOne()
	case opts.SelectRange:
		c.Selection.SelectRange(true)
	}

	if !opts.KeepAnchor {
		c.Anchor(c.Selection.RangeStartIndex())
	}
}

// Select selects item, or the active item when item is nil
func (c *Controller[V]) Select(item domain.Item[V]) {
	c.Selection.Select(item, true)
}

// Deselect deselects item, or the active item when item is nil
func (c *Controller[V]) Deselect(item domain.Item[V]) {
	c.Selection.Deselect(item)
}

// Toggle flips item, or the active item when item is nil
func (c *Controller[V]) Toggle(item domain.Item[V]) {
	c.Selection.Toggle(item)
}

func (c *Controller[V]) ToggleOne()   { c.Selection.ToggleOne() }
func (c *Controller[V]) ToggleAll()   { c.Selection.ToggleAll() }
func (c *Controller[V]) SelectAll()   { c.Selection.SelectAll() }
func (c *Controller[V]) SelectOne()   { c.Selection.SelectOne() }
func (c *Controller[V]) DeselectAll() { c.Selection.DeselectAll() }

// SelectedItems returns the selected items in list order
func (c *Controller[V]) SelectedItems() []domain.Item[V] {
	return c.Selection.SelectedItems()
}

// IsSelected reports whether item is selected
func (c *Controller[V]) IsSelected(item domain.Item[V]) bool {
	return c.Selection.IsSelected(item)
}

// Disabled reports whether the list as a whole is disabled
func (c *Controller[V]) Disabled() bool {
	return c.Focus.IsListDisabled()
}

// ActiveDescendant returns the id of the active item in active descendant mode
func (c *Controller[V]) ActiveDescendant() string {
	return c.Focus.ActiveDescendant()
}

// Tabindex returns the tabindex of the list element
func (c *Controller[V]) Tabindex() int {
	return c.Focus.ListTabindex()
}

// ActiveIndex returns the active position
func (c *Controller[V]) ActiveIndex() int {
	return c.Focus.ActiveIndex()
}

// ActiveItem returns the active item
func (c *Controller[V]) ActiveItem() (domain.Item[V], bool) {
	return c.Focus.ActiveItem()
}

// ItemTabindex returns the tabindex of item
func (c *Controller[V]) ItemTabindex(item domain.Item[V]) int {
	return c.Focus.ItemTabindex(item)
}

// IsFocusable reports whether item can take focus
func (c *Controller[V]) IsFocusable(item domain.Item[V]) bool {
	return c.Focus.IsFocusable(item)
}

// IsTyping reports whether a typeahead search is in progress
func (c *Controller[V]) IsTyping() bool {
	return c.Typeahead.IsTyping()
}

// Query returns the typeahead buffer
func (c *Controller[V]) Query() string {
	return c.Typeahead.Query()
}

// Close cancels the pending typeahead reset
func (c *Controller[V]) Close() {
	c.Typeahead.Stop()
}

// navigate runs a movement and, if focus moved, its selection side effect.
// Range moves never wrap and start from the controller anchor.
func (c *Controller[V]) navigate(op string, opts NavOptions, operation func() bool) bool {
	if opts.SelectRange {
		c.wrap = false
		c.Selection.SetRangeStartIndex(c.anchorIndex)
	}
	defer func() { c.wrap = true }()

	from := c.Focus.ActiveIndex()
	moved := operation()
	if moved {
		c.UpdateSelection(opts)
	}

	c.logger.Debug().
		Str("op", op).
		Int("from", from).
		Int("to", c.Focus.ActiveIndex()).
		Bool("moved", moved).
		Bool("select_range", opts.SelectRange).
		Msg("list navigate")

	return moved
}

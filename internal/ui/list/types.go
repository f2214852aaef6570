package list

import (
	"listkit/internal/domain"
	"listkit/internal/ui/services/events"
	"listkit/internal/ui/services/focus"
	"listkit/internal/ui/services/selection"
)

// Inputs are the host accessors the controller reads on every operation
type Inputs[V comparable] struct {
	Items          func() []domain.Item[V]
	Values         selection.Store[V]
	Multi          func() bool
	Wrap           func() bool
	Disabled       func() bool
	TypeaheadDelay func() float64 // seconds
	FocusMode      func() focus.Mode
	Bus            events.EventBus
}

// NavOptions pairs a movement with a selection side effect.
// At most one of Toggle, Select, SelectOne and SelectRange applies, in that
// order of precedence.
type NavOptions struct {
	Toggle      bool
	Select      bool
	SelectOne   bool
	SelectRange bool

	// KeepAnchor leaves the controller anchor where it is instead of moving
	// it to the committed range start after the selection update.
	KeepAnchor bool
}

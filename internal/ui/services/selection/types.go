package selection

// State holds the committed bounds of the most recent range selection
type State struct {
	RangeStartIndex int
	RangeEndIndex   int
}

// Store is the externally owned collection of selected values
type Store[V comparable] interface {
	Get() []V
	Set(values []V)
}

// ChangedEvent is published whenever values enter or leave the selection
type ChangedEvent[V comparable] struct {
	Added   []V
	Removed []V
	Total   int
}

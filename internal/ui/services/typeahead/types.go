package typeahead

import "time"

// DefaultDelay is the idle time in seconds after which the buffer resets
const DefaultDelay = 0.5

// State holds the typeahead buffer
type State struct {
	Query      string
	StartIndex int
	Searching  bool // StartIndex is only meaningful while searching
}

// Timer is the handle of a pending reset
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc
type AfterFunc func(d time.Duration, f func()) Timer

// Event types
type MatchedEvent struct {
	Query string
	Index int
}

type ResetEvent struct {
	Query string
}

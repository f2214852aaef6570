package typeahead

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"listkit/internal/domain"
	"listkit/internal/ui/services/events"
	"listkit/internal/ui/services/focus"
)

// Service resolves quick keystrokes into a search that moves focus
type Service[V comparable] struct {
	mu         sync.Mutex
	state      *State
	bus        events.EventBus
	focus      *focus.Service[V]
	delayFn    func() float64
	afterFunc  AfterFunc
	timer      Timer
	generation uint64
	lower      cases.Caser
}

// NewService creates a new typeahead service
func NewService[V comparable](bus events.EventBus, fm *focus.Service[V]) *Service[V] {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service[V]{
		state: &State{},
		bus:   bus,
		focus: fm,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		lower: cases.Lower(language.Und),
	}
}

// SetDelayFunction sets the function returning the idle delay in seconds
func (s *Service[V]) SetDelayFunction(fn func() float64) {
	s.delayFn = fn
}

// SetAfterFunc replaces the timer factory
func (s *Service[V]) SetAfterFunc(fn AfterFunc) {
	s.afterFunc = fn
}

// Query returns the current search buffer
func (s *Service[V]) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Query
}

// IsTyping reports whether a search is in progress. A bare space continues
// a search in progress and is otherwise left to the host.
func (s *Service[V]) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Query != ""
}

// Search appends char to the buffer and focuses the first matching item.
// It reports whether focus moved to a match.
func (s *Service[V]) Search(char string) bool {
	if utf8.RuneCountInString(char) != 1 {
		return false
	}

	s.mu.Lock()
	if s.state.Query == "" && char == " " {
		s.mu.Unlock()
		return false
	}

	if !s.state.Searching {
		s.state.StartIndex = s.focus.ActiveIndex()
		s.state.Searching = true
	}

	s.stopTimerLocked()
	s.state.Query += s.lower.String(char)
	query := s.state.Query

	moved := false
	if item, ok := s.match(query, s.state.StartIndex); ok {
		moved = s.focus.Focus(item)
	}

	s.generation++
	s.timer = s.afterFunc(s.delay(), s.expire(s.generation))
	s.mu.Unlock()

	if moved {
		s.bus.Publish(MatchedEvent{Query: query, Index: s.focus.ActiveIndex()})
	}
	return moved
}

// Reset clears the buffer and cancels the pending reset
func (s *Service[V]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.generation++
	s.state.Query = ""
	s.state.Searching = false
}

// Stop cancels the pending reset without clearing the buffer
func (s *Service[V]) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

// match searches the items after start, then the items before it, then the
// start item itself, returning the first focusable item whose lowercased
// search term begins with query.
func (s *Service[V]) match(query string, start int) (domain.Item[V], bool) {
	items := s.focus.Items()
	if len(items) == 0 {
		return nil, false
	}

	var order []domain.Item[V]
	if start >= 0 && start < len(items) {
		order = make([]domain.Item[V], 0, len(items))
		order = append(order, items[start+1:]...)
		order = append(order, items[:start]...)
		order = append(order, items[start])
	} else {
		order = items
	}

	for _, item := range order {
		if !s.focus.IsFocusable(item) {
			continue
		}
		if strings.HasPrefix(s.lower.String(item.SearchTerm()), query) {
			return item, true
		}
	}
	return nil, false
}

func (s *Service[V]) delay() time.Duration {
	seconds := DefaultDelay
	if s.delayFn != nil {
		seconds = s.delayFn()
	}
	return time.Duration(seconds * float64(time.Second))
}

// expire returns the timer callback for generation. A callback whose
// generation was superseded leaves the buffer alone.
func (s *Service[V]) expire(generation uint64) func() {
	return func() {
		s.mu.Lock()
		if generation != s.generation {
			s.mu.Unlock()
			return
		}
		query := s.state.Query
		s.state.Query = ""
		s.state.Searching = false
		s.timer = nil
		s.mu.Unlock()

		s.bus.Publish(ResetEvent{Query: query})
	}
}

func (s *Service[V]) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

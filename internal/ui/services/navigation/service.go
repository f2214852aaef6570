package navigation

import (
	"listkit/internal/domain"
	"listkit/internal/ui/services/events"
	"listkit/internal/ui/services/focus"
)

// Service moves the active item through the focus service
type Service[V comparable] struct {
	focus  *focus.Service[V]
	bus    events.EventBus
	wrapFn func() bool
}

// NewService creates a new navigation service
func NewService[V comparable](bus events.EventBus, fm *focus.Service[V]) *Service[V] {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service[V]{
		focus: fm,
		bus:   bus,
	}
}

// SetWrapFunction sets the function deciding whether next/prev wrap at the ends
func (s *Service[V]) SetWrapFunction(fn func() bool) {
	s.wrapFn = fn
}

// Goto makes item the active item if it can take focus
func (s *Service[V]) Goto(item domain.Item[V]) bool {
	return s.move(DirectionGoto, item)
}

// First moves to the first focusable item
func (s *Service[V]) First() bool {
	for _, item := range s.focus.Items() {
		if s.focus.IsFocusable(item) {
			return s.move(DirectionFirst, item)
		}
	}
	return false
}

// Last moves to the last focusable item
func (s *Service[V]) Last() bool {
	items := s.focus.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if s.focus.IsFocusable(items[i]) {
			return s.move(DirectionLast, items[i])
		}
	}
	return false
}

// Next moves one focusable item forward
func (s *Service[V]) Next() bool {
	item, ok := s.PeekNext()
	if !ok {
		return false
	}
	return s.move(DirectionNext, item)
}

// Prev moves one focusable item back
func (s *Service[V]) Prev() bool {
	item, ok := s.PeekPrev()
	if !ok {
		return false
	}
	return s.move(DirectionPrev, item)
}

// PeekNext returns the item Next would move to
func (s *Service[V]) PeekNext() (domain.Item[V], bool) {
	return s.peek(1)
}

// PeekPrev returns the item Prev would move to
func (s *Service[V]) PeekPrev() (domain.Item[V], bool) {
	return s.peek(-1)
}

func (s *Service[V]) wrap() bool {
	return s.wrapFn != nil && s.wrapFn()
}

// peek walks from the active item in steps of delta, skipping items that
// cannot take focus. The walk stops at the ends unless wrapping, and never
// revisits the start.
func (s *Service[V]) peek(delta int) (domain.Item[V], bool) {
	items := s.focus.Items()
	count := len(items)
	if count == 0 {
		return nil, false
	}

	start := s.focus.ActiveIndex()
	if start == focus.NoIndex {
		// Nothing active yet: step in from the matching end.
		if delta > 0 {
			start = -1
		} else {
			start = count
		}
		for i := start + delta; i >= 0 && i < count; i += delta {
			if s.focus.IsFocusable(items[i]) {
				return items[i], true
			}
		}
		return nil, false
	}

	wrap := s.wrap()
	step := func(i int) int {
		if wrap {
			return (i + delta + count) % count
		}
		return i + delta
	}

	for i := step(start); i != start && i >= 0 && i < count; i = step(i) {
		if s.focus.IsFocusable(items[i]) {
			return items[i], true
		}
	}
	return nil, false
}

func (s *Service[V]) move(direction Direction, item domain.Item[V]) bool {
	oldIndex := s.focus.ActiveIndex()
	if !s.focus.Focus(item) {
		return false
	}

	s.bus.Publish(CursorMovedEvent{
		Direction: direction,
		OldIndex:  oldIndex,
		NewIndex:  s.focus.ActiveIndex(),
	})
	return true
}

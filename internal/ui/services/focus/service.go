package focus

import (
	"listkit/internal/domain"
)

// Service tracks which item of the list currently has logical focus
type Service[V comparable] struct {
	state      *State
	itemsFn    func() []domain.Item[V]
	disabledFn func() bool
	modeFn     func() Mode
}

// NewService creates a focus service reading items from itemsFn on every call
func NewService[V comparable](itemsFn func() []domain.Item[V]) *Service[V] {
	return &Service[V]{
		state: &State{
			ActiveIndex:     0,
			PrevActiveIndex: NoIndex,
		},
		itemsFn: itemsFn,
	}
}

// SetDisabledFunction sets the function reporting whether the host disabled the list
func (s *Service[V]) SetDisabledFunction(fn func() bool) {
	s.disabledFn = fn
}

// SetModeFunction sets the function reporting the focus mode
func (s *Service[V]) SetModeFunction(fn func() Mode) {
	s.modeFn = fn
}

// Items returns the current item sequence
func (s *Service[V]) Items() []domain.Item[V] {
	if s.itemsFn == nil {
		return nil
	}
	return s.itemsFn()
}

// Mode returns the current focus mode
func (s *Service[V]) Mode() Mode {
	if s.modeFn == nil {
		return ModeRoving
	}
	return s.modeFn()
}

// IndexOf returns the position of item, or NoIndex
func (s *Service[V]) IndexOf(item domain.Item[V]) int {
	if item == nil {
		return NoIndex
	}
	return indexOfValue(s.Items(), item.Value())
}

// ActiveIndex returns the active position. A stored index past the end of a
// shrunken sequence clamps to the last item.
func (s *Service[V]) ActiveIndex() int {
	count := len(s.Items())
	if count == 0 || s.state.ActiveIndex < 0 {
		return NoIndex
	}
	if s.state.ActiveIndex >= count {
		return count - 1
	}
	return s.state.ActiveIndex
}

// ActiveItem returns the active item
func (s *Service[V]) ActiveItem() (domain.Item[V], bool) {
	index := s.ActiveIndex()
	if index == NoIndex {
		return nil, false
	}
	return s.Items()[index], true
}

// PrevActiveIndex returns the active index from before the last focus change
func (s *Service[V]) PrevActiveIndex() int {
	return s.state.PrevActiveIndex
}

// IsFocusable reports whether item may receive focus
func (s *Service[V]) IsFocusable(item domain.Item[V]) bool {
	return item != nil && !item.Disabled()
}

// IsListDisabled is true when the host disabled the list or no item can take focus
func (s *Service[V]) IsListDisabled() bool {
	if s.disabledFn != nil && s.disabledFn() {
		return true
	}
	for _, item := range s.Items() {
		if s.IsFocusable(item) {
			return false
		}
	}
	return true
}

// Focus makes item the active item. It reports false, leaving state untouched,
// when the list is disabled or the item cannot take focus.
func (s *Service[V]) Focus(item domain.Item[V]) bool {
	if s.IsListDisabled() || !s.IsFocusable(item) {
		return false
	}
	index := s.IndexOf(item)
	if index == NoIndex {
		return false
	}

	s.state.PrevActiveIndex = s.ActiveIndex()
	s.state.ActiveIndex = index
	return true
}

// Activate sets the active index without recording a previous index.
// Used to establish the initial state; out of range requests clamp.
func (s *Service[V]) Activate(index int) {
	count := len(s.Items())
	if count == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	s.state.ActiveIndex = index
}

// Unfocus clears the active item
func (s *Service[V]) Unfocus() {
	s.state.PrevActiveIndex = s.ActiveIndex()
	s.state.ActiveIndex = NoIndex
}

// ItemTabindex returns the roving tabindex of item. Only the active focusable
// item is reachable by Tab, and only in roving mode.
func (s *Service[V]) ItemTabindex(item domain.Item[V]) int {
	if s.IsListDisabled() || s.Mode() == ModeActiveDescendant {
		return TabIndexInactive
	}
	if !s.IsFocusable(item) {
		return TabIndexInactive
	}
	index := s.IndexOf(item)
	if index != NoIndex && index == s.ActiveIndex() {
		return TabIndexActive
	}
	return TabIndexInactive
}

// ListTabindex returns the tabindex of the list element itself
func (s *Service[V]) ListTabindex() int {
	if s.IsListDisabled() {
		return TabIndexInactive
	}
	if s.Mode() == ModeActiveDescendant {
		return TabIndexActive
	}
	return TabIndexInactive
}

// ActiveDescendant returns the id of the active item in active descendant
// mode, and "" otherwise.
func (s *Service[V]) ActiveDescendant() string {
	if s.IsListDisabled() || s.Mode() == ModeRoving {
		return ""
	}
	item, ok := s.ActiveItem()
	if !ok {
		return ""
	}
	return domain.ItemID(item)
}

func indexOfValue[V comparable](items []domain.Item[V], value V) int {
	for i, item := range items {
		if item.Value() == value {
			return i
		}
	}
	return NoIndex
}

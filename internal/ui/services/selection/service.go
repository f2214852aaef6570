package selection

import (
	"slices"

	"listkit/internal/domain"
	"listkit/internal/ui/services/events"
	"listkit/internal/ui/services/focus"
)

// Service handles selection logic
type Service[V comparable] struct {
	state   *State
	bus     events.EventBus
	focus   *focus.Service[V]
	store   Store[V]
	multiFn func() bool
}

// NewService creates a new selection service writing into store
func NewService[V comparable](bus events.EventBus, fm *focus.Service[V], store Store[V]) *Service[V] {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if store == nil {
		store = NewSet[V]()
	}
	return &Service[V]{
		state: &State{},
		bus:   bus,
		focus: fm,
		store: store,
	}
}

// SetMultiFunction sets the function reporting whether multi-select is enabled
func (s *Service[V]) SetMultiFunction(fn func() bool) {
	s.multiFn = fn
}

// RangeStartIndex returns where the current range gesture began
func (s *Service[V]) RangeStartIndex() int {
	return s.state.RangeStartIndex
}

// SetRangeStartIndex moves the start of the range without touching its end
func (s *Service[V]) SetRangeStartIndex(index int) {
	s.state.RangeStartIndex = index
}

// RangeEndIndex returns the current extent of the range gesture
func (s *Service[V]) RangeEndIndex() int {
	return s.state.RangeEndIndex
}

// Values returns the selected values
func (s *Service[V]) Values() []V {
	return s.store.Get()
}

// IsSelected reports whether item's value is selected
func (s *Service[V]) IsSelected(item domain.Item[V]) bool {
	return item != nil && s.includes(item.Value())
}

// SelectedItems returns the items whose values are selected, in list order
func (s *Service[V]) SelectedItems() []domain.Item[V] {
	var selected []domain.Item[V]
	for _, item := range s.focus.Items() {
		if s.includes(item.Value()) {
			selected = append(selected, item)
		}
	}
	return selected
}

// Select adds item to the selection. A nil item means the active item.
// With anchor set a new range begins at the item.
func (s *Service[V]) Select(item domain.Item[V], anchor bool) {
	item = s.resolve(item)
	if item == nil || item.Disabled() || s.includes(item.Value()) {
		return
	}

	if !s.multi() {
		s.DeselectAll()
	}

	if anchor {
		s.BeginRangeSelection(s.focus.IndexOf(item))
	}

	value := item.Value()
	s.store.Set(append(slices.Clone(s.store.Get()), value))
	s.publish([]V{value}, nil)
}

// Deselect removes item from the selection. A nil item means the active item.
func (s *Service[V]) Deselect(item domain.Item[V]) {
	item = s.resolve(item)
	if item == nil || item.Disabled() {
		return
	}
	s.remove(item.Value())
}

// Toggle flips the selection state of item. A nil item means the active item.
func (s *Service[V]) Toggle(item domain.Item[V]) {
	item = s.resolve(item)
	if item == nil {
		return
	}
	if s.includes(item.Value()) {
		s.Deselect(item)
	} else {
		s.Select(item, true)
	}
}

// ToggleOne flips the active item, clearing everything else when selecting
func (s *Service[V]) ToggleOne() {
	item, ok := s.focus.ActiveItem()
	if !ok {
		return
	}
	if s.includes(item.Value()) {
		s.Deselect(item)
	} else {
		s.SelectOne()
	}
}

// SelectAll selects every focusable item and anchors the range at the active item.
// It does nothing unless multi-select is enabled.
func (s *Service[V]) SelectAll() {
	if !s.multi() {
		return
	}
	for _, item := range s.focus.Items() {
		s.Select(item, false)
	}
	s.BeginRangeSelectionAtActive()
}

// DeselectAll clears the selection. Values whose item left the list are
// dropped unconditionally since their disabled state can no longer be checked.
func (s *Service[V]) DeselectAll() {
	items := s.focus.Items()
	for _, value := range slices.Clone(s.store.Get()) {
		idx := slices.IndexFunc(items, func(item domain.Item[V]) bool {
			return item.Value() == value
		})
		if idx >= 0 {
			s.Deselect(items[idx])
		} else {
			s.remove(value)
		}
	}
}

// ToggleAll selects everything selectable unless it already is, in which
// case it clears the selection
func (s *Service[V]) ToggleAll() {
	for _, item := range s.focus.Items() {
		if !item.Disabled() && !s.includes(item.Value()) {
			s.SelectAll()
			return
		}
	}
	s.DeselectAll()
}

// SelectOne makes the active item the only selected item
func (s *Service[V]) SelectOne() {
	item, ok := s.focus.ActiveItem()
	if !ok || item.Disabled() {
		return
	}

	s.DeselectAll()

	// A disabled item that could not be cleared keeps a single selection occupied.
	if len(s.store.Get()) > 0 && !s.multi() {
		return
	}
	s.Select(item, true)
}

// SelectRange selects the items between the range start and the active item,
// deselecting whatever the previous extent covered beyond the new one.
func (s *Service[V]) SelectRange(anchor bool) {
	prev := s.focus.PrevActiveIndex()
	if anchor && prev == s.state.RangeStartIndex {
		s.BeginRangeSelection(prev)
	}

	inRange := s.itemsFromIndex(s.state.RangeStartIndex)
	previous := s.itemsFromIndex(s.state.RangeEndIndex)

	for _, item := range previous {
		if !containsItem(inRange, item) {
			s.Deselect(item)
		}
	}
	for _, item := range inRange {
		s.Select(item, false)
	}

	if len(inRange) > 0 {
		last := inRange[len(inRange)-1]
		s.state.RangeEndIndex = s.focus.IndexOf(last)
	}
}

// BeginRangeSelection resets both range bounds to index
func (s *Service[V]) BeginRangeSelection(index int) {
	s.state.RangeStartIndex = index
	s.state.RangeEndIndex = index
}

// BeginRangeSelectionAtActive resets both range bounds to the active index
func (s *Service[V]) BeginRangeSelectionAtActive() {
	s.BeginRangeSelection(s.focus.ActiveIndex())
}

// itemsFromIndex returns the items between index and the active index,
// inclusive, ordered so that the active item comes last.
func (s *Service[V]) itemsFromIndex(index int) []domain.Item[V] {
	items := s.focus.Items()
	active := s.focus.ActiveIndex()
	if index < 0 || active < 0 {
		return nil
	}

	lower, upper := min(index, active), max(index, active)
	if upper >= len(items) {
		upper = len(items) - 1
	}
	if lower > upper {
		return nil
	}

	out := slices.Clone(items[lower : upper+1])
	if active < index {
		slices.Reverse(out)
	}
	return out
}

func (s *Service[V]) resolve(item domain.Item[V]) domain.Item[V] {
	if item != nil {
		return item
	}
	active, ok := s.focus.ActiveItem()
	if !ok {
		return nil
	}
	return active
}

func (s *Service[V]) multi() bool {
	return s.multiFn != nil && s.multiFn()
}

func (s *Service[V]) includes(value V) bool {
	if set, ok := s.store.(interface{ Has(V) bool }); ok {
		return set.Has(value)
	}
	return slices.Contains(s.store.Get(), value)
}

func (s *Service[V]) remove(value V) {
	if !s.includes(value) {
		return
	}
	s.store.Set(slices.DeleteFunc(slices.Clone(s.store.Get()), func(v V) bool {
		return v == value
	}))
	s.publish(nil, []V{value})
}

func (s *Service[V]) publish(added, removed []V) {
	s.bus.Publish(ChangedEvent[V]{
		Added:   added,
		Removed: removed,
		Total:   len(s.store.Get()),
	})
}

func containsItem[V comparable](items []domain.Item[V], item domain.Item[V]) bool {
	return slices.ContainsFunc(items, func(other domain.Item[V]) bool {
		return other.Value() == item.Value()
	})
}

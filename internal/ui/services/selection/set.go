package selection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Set is an insertion ordered Store with constant time membership checks
type Set[V comparable] struct {
	values *orderedmap.OrderedMap[V, struct{}]
}

// NewSet creates a set holding initial in order, dropping duplicates
func NewSet[V comparable](initial ...V) *Set[V] {
	s := &Set[V]{values: orderedmap.New[V, struct{}]()}
	s.Set(initial)
	return s
}

// Get returns the selected values in insertion order
func (s *Set[V]) Get() []V {
	out := make([]V, 0, s.values.Len())
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Set replaces the contents of the set
func (s *Set[V]) Set(values []V) {
	next := orderedmap.New[V, struct{}](orderedmap.WithCapacity[V, struct{}](len(values)))
	for _, v := range values {
		next.Set(v, struct{}{})
	}
	s.values = next
}

// Has reports whether v is selected
func (s *Set[V]) Has(v V) bool {
	_, ok := s.values.Get(v)
	return ok
}

// Len returns the number of selected values
func (s *Set[V]) Len() int {
	return s.values.Len()
}

package domain

import "fmt"

// Item is a single entry of an ordered list supplied by the host.
// The list never creates, destroys or reorders items; it only indexes into
// the sequence it is given. Two items are the same item when their values
// are equal.
type Item[V comparable] interface {
	Value() V
	Disabled() bool
	SearchTerm() string
}

// Identified is implemented by items that carry their own element id.
type Identified interface {
	ID() string
}

// ItemID returns the id surfaced as the active descendant for item.
func ItemID[V comparable](item Item[V]) string {
	if identified, ok := item.(Identified); ok {
		return identified.ID()
	}
	return fmt.Sprintf("%v", item.Value())
}

// Option is the string valued item used by the listbox host
type Option struct {
	OptionID string
	Label    string
	Key      string
	Inactive bool
}

func (o *Option) Value() string      { return o.Key }
func (o *Option) Disabled() bool     { return o.Inactive }
func (o *Option) SearchTerm() string { return o.Label }
func (o *Option) ID() string         { return o.OptionID }

// Items converts options into the item sequence consumed by the list.
func Items(options []*Option) []Item[string] {
	items := make([]Item[string], len(options))
	for i, opt := range options {
		items[i] = opt
	}
	return items
}

package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the listbox key bindings for one orientation.
// It implements help.KeyMap.
type KeyMap struct {
	Prev       key.Binding
	Next       key.Binding
	RangePrev  key.Binding
	RangeNext  key.Binding
	MovePrev   key.Binding
	MoveNext   key.Binding
	First      key.Binding
	Last       key.Binding
	RangeFirst key.Binding
	RangeLast  key.Binding
	Toggle     key.Binding
	RangeTo    key.Binding
	ToggleAll  key.Binding
	Clear      key.Binding
	Help       key.Binding
	Pager      key.Binding
	Quit       key.Binding
}

// NewKeyMap returns the bindings for orientation
func NewKeyMap(orientation Orientation) KeyMap {
	prev, next := "up", "down"
	prevHelp, nextHelp := "↑", "↓"
	if orientation == Horizontal {
		prev, next = "left", "right"
		prevHelp, nextHelp = "←", "→"
	}

	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys(prev),
			key.WithHelp(prevHelp, "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys(next),
			key.WithHelp(nextHelp, "next"),
		),
		RangePrev: key.NewBinding(
			key.WithKeys("shift+"+prev),
			key.WithHelp("shift+"+prevHelp, "extend range"),
		),
		RangeNext: key.NewBinding(
			key.WithKeys("shift+"+next),
			key.WithHelp("shift+"+nextHelp, "extend range"),
		),
		MovePrev: key.NewBinding(
			key.WithKeys("ctrl+"+prev),
			key.WithHelp("ctrl+"+prevHelp, "move without selecting"),
		),
		MoveNext: key.NewBinding(
			key.WithKeys("ctrl+"+next),
			key.WithHelp("ctrl+"+nextHelp, "move without selecting"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		RangeFirst: key.NewBinding(
			key.WithKeys("ctrl+shift+home"),
			key.WithHelp("ctrl+shift+home", "select to first"),
		),
		RangeLast: key.NewBinding(
			key.WithKeys("ctrl+shift+end"),
			key.WithHelp("ctrl+shift+end", "select to last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "toggle"),
		),
		// Terminals cannot tell shift+space from space; ctrl+space arrives as ctrl+@.
		RangeTo: key.NewBinding(
			key.WithKeys("ctrl+@"),
			key.WithHelp("ctrl+space", "select range to here"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "toggle all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Pager: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "help pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped by concern
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.MovePrev, k.MoveNext, k.First, k.Last},
		{k.RangePrev, k.RangeNext, k.RangeFirst, k.RangeLast, k.RangeTo},
		{k.Toggle, k.ToggleAll, k.Clear},
		{k.Help, k.Pager, k.Quit},
	}
}

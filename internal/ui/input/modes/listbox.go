package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listkit/internal/ui/input/types"
	"listkit/internal/ui/list"
	"listkit/internal/ui/services/navigation"
)

// ListboxMode maps keys onto list operations for both selection modes
type ListboxMode struct {
	keys types.KeyMap

	// shiftRun is set while consecutive shift gestures extend one range
	shiftRun bool
}

func NewListboxMode(keys types.KeyMap) *ListboxMode {
	return &ListboxMode{keys: keys}
}

func (m *ListboxMode) Name() string {
	return "listbox"
}

func (m *ListboxMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListboxMode) Exit(ctx types.Context) []types.Action {
	m.shiftRun = false
	return nil
}

func (m *ListboxMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	multi := ctx.Multi()
	follow := ctx.SelectionMode() == types.SelectionFollow

	// Terminals report no bare shift press, so a shift run starts with its first key.
	if !key.Matches(msg, k.RangePrev, k.RangeNext, k.RangeFirst, k.RangeLast) {
		m.shiftRun = false
	}

	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case key.Matches(msg, k.Clear):
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, true

	case key.Matches(msg, k.RangePrev):
		if !multi {
			return nil, false
		}
		return m.extend(ctx, navigation.DirectionPrev, false), true

	case key.Matches(msg, k.RangeNext):
		if !multi {
			return nil, false
		}
		return m.extend(ctx, navigation.DirectionNext, false), true

	// Jumps to an end keep the anchor of the shift run, so shift+arrows after
	// them shrink or grow the same range.
	case key.Matches(msg, k.RangeFirst):
		if !multi {
			return nil, false
		}
		return m.extend(ctx, navigation.DirectionFirst, true), true

	case key.Matches(msg, k.RangeLast):
		if !multi {
			return nil, false
		}
		return m.extend(ctx, navigation.DirectionLast, true), true

	case key.Matches(msg, k.MovePrev):
		if !multi || !follow {
			return nil, false
		}
		return navigate(navigation.DirectionPrev, list.NavOptions{}), true

	case key.Matches(msg, k.MoveNext):
		if !multi || !follow {
			return nil, false
		}
		return navigate(navigation.DirectionNext, list.NavOptions{}), true

	case key.Matches(msg, k.Prev):
		return navigate(navigation.DirectionPrev, followOptions(follow)), true

	case key.Matches(msg, k.Next):
		return navigate(navigation.DirectionNext, followOptions(follow)), true

	case key.Matches(msg, k.First):
		return navigate(navigation.DirectionFirst, followOptions(follow)), true

	case key.Matches(msg, k.Last):
		return navigate(navigation.DirectionLast, followOptions(follow)), true

	case key.Matches(msg, k.RangeTo):
		if !multi {
			return nil, false
		}
		// Committing the range does not move the anchor; it stays where the last
		// shift run set it.
		return []types.Action{types.UpdateSelectionAction{
			Options: list.NavOptions{SelectRange: true, KeepAnchor: true},
		}}, true

	case key.Matches(msg, k.ToggleAll):
		if !multi {
			return nil, false
		}
		return []types.Action{types.ToggleAllAction{}}, true

	case key.Matches(msg, k.Toggle):
		// A space typed mid-search belongs to the query.
		if msg.Type == tea.KeySpace && ctx.IsTyping() {
			return []types.Action{types.SearchAction{Char: " ", Options: followOptions(follow)}}, true
		}
		switch {
		case multi:
			return []types.Action{types.ToggleAction{}}, true
		case !follow:
			return []types.Action{types.ToggleOneAction{}}, true
		}
		return nil, false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt && !msg.Paste {
		return []types.Action{types.SearchAction{
			Char:    string(msg.Runes),
			Options: followOptions(follow),
		}}, true
	}

	return nil, false
}

// extend moves with a range selection, anchoring the range at the active
// item when this key starts a shift run
func (m *ListboxMode) extend(ctx types.Context, dir navigation.Direction, keepAnchor bool) []types.Action {
	var actions []types.Action
	if !m.shiftRun {
		m.shiftRun = true
		actions = append(actions, types.AnchorAction{Index: ctx.ActiveIndex()})
	}
	return append(actions, types.NavigateAction{
		Direction: dir,
		Options:   list.NavOptions{SelectRange: true, KeepAnchor: keepAnchor},
	})
}

func navigate(dir navigation.Direction, opts list.NavOptions) []types.Action {
	return []types.Action{types.NavigateAction{Direction: dir, Options: opts}}
}

func followOptions(follow bool) list.NavOptions {
	return list.NavOptions{SelectOne: follow}
}

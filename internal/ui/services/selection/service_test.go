package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkit/internal/domain"
	"listkit/internal/ui/services/events"
	"listkit/internal/ui/services/focus"
)

type fixture struct {
	options []*domain.Option
	focus   *focus.Service[string]
	sel     *Service[string]
	store   *Set[string]
	bus     *events.Bus
	multi   bool
}

func newFixture(multi bool, labels ...string) *fixture {
	f := &fixture{bus: events.NewBus(), store: NewSet[string](), multi: multi}
	for _, label := range labels {
		f.options = append(f.options, &domain.Option{Label: label, Key: label})
	}
	f.focus = focus.NewService(func() []domain.Item[string] { return domain.Items(f.options) })
	f.sel = NewService(f.bus, f.focus, f.store)
	f.sel.SetMultiFunction(func() bool { return f.multi })
	return f
}

func (f *fixture) focusAt(t *testing.T, index int) {
	t.Helper()
	require.True(t, f.focus.Focus(f.options[index]))
}

func TestSelectActiveItem(t *testing.T) {
	f := newFixture(false, "a", "b", "c")
	f.focusAt(t, 1)

	f.sel.Select(nil, true)

	assert.Equal(t, []string{"b"}, f.store.Get())
	assert.Equal(t, 1, f.sel.RangeStartIndex())
	assert.Equal(t, 1, f.sel.RangeEndIndex())
}

func TestSelectWithoutAnchorKeepsRange(t *testing.T) {
	f := newFixture(true, "a", "b", "c")
	f.sel.BeginRangeSelection(2)

	f.sel.Select(f.options[0], false)

	assert.Equal(t, 2, f.sel.RangeStartIndex())
	assert.Equal(t, 2, f.sel.RangeEndIndex())
}

func TestSingleSelectExclusivity(t *testing.T) {
	f := newFixture(false, "a", "b", "c")

	for _, opt := range f.options {
		f.sel.Select(opt, true)
		assert.LessOrEqual(t, f.store.Len(), 1)
	}
	assert.Equal(t, []string{"c"}, f.store.Get())
}

func TestMultiSelectAccumulates(t *testing.T) {
	f := newFixture(true, "a", "b", "c")

	f.sel.Select(f.options[0], true)
	f.sel.Select(f.options[2], true)
	f.sel.Select(f.options[2], true)

	assert.Equal(t, []string{"a", "c"}, f.store.Get())
}

func TestDisabledItemImmunity(t *testing.T) {
	f := newFixture(true, "a", "b", "c")
	f.store.Set([]string{"b"})
	f.options[1].Inactive = true

	f.sel.Deselect(f.options[1])
	assert.Equal(t, []string{"b"}, f.store.Get(), "deselect of a disabled item is ignored")

	f.options[2].Inactive = true
	f.sel.Select(f.options[2], true)
	assert.Equal(t, []string{"b"}, f.store.Get(), "select of a disabled item is ignored")

	f.sel.Toggle(f.options[1])
	assert.Equal(t, []string{"b"}, f.store.Get())
}

func TestToggle(t *testing.T) {
	f := newFixture(true, "a", "b")

	f.sel.Toggle(nil)
	assert.Equal(t, []string{"a"}, f.store.Get())
	f.sel.Toggle(nil)
	assert.Empty(t, f.store.Get())
}

func TestToggleOne(t *testing.T) {
	f := newFixture(true, "a", "b", "c")
	f.store.Set([]string{"a", "c"})
	f.focusAt(t, 1)

	f.sel.ToggleOne()
	assert.Equal(t, []string{"b"}, f.store.Get(), "selecting clears the others")

	f.sel.ToggleOne()
	assert.Empty(t, f.store.Get())
}

func TestSelectAll(t *testing.T) {
	t.Run("single select is a no-op", func(t *testing.T) {
		f := newFixture(false, "a", "b")
		f.sel.SelectAll()
		assert.Empty(t, f.store.Get())
	})

	t.Run("skips disabled and anchors at active", func(t *testing.T) {
		f := newFixture(true, "a", "b", "c")
		f.options[1].Inactive = true
		f.focusAt(t, 2)

		f.sel.SelectAll()

		assert.Equal(t, []string{"a", "c"}, f.store.Get())
		assert.Equal(t, 2, f.sel.RangeStartIndex())
		assert.Equal(t, 2, f.sel.RangeEndIndex())
	})
}

func TestDeselectAll(t *testing.T) {
	t.Run("respects disabled items", func(t *testing.T) {
		f := newFixture(true, "a", "b", "c")
		f.store.Set([]string{"a", "b", "c"})
		f.options[1].Inactive = true

		f.sel.DeselectAll()
		assert.Equal(t, []string{"b"}, f.store.Get())
	})

	t.Run("force drops orphaned values", func(t *testing.T) {
		f := newFixture(true, "a", "b", "c")
		f.store.Set([]string{"a", "gone", "c"})

		f.sel.DeselectAll()
		assert.Empty(t, f.store.Get())
	})
}

func TestToggleAllIdempotence(t *testing.T) {
	f := newFixture(true, "a", "b", "c")
	f.options[2].Inactive = true

	f.sel.ToggleAll()
	assert.Equal(t, []string{"a", "b"}, f.store.Get())

	f.sel.ToggleAll()
	assert.Empty(t, f.store.Get(), "a second toggle restores the empty selection")
}

func TestToggleAllPartialSelectsEverything(t *testing.T) {
	f := newFixture(true, "a", "b", "c")
	f.store.Set([]string{"b"})

	f.sel.ToggleAll()
	assert.ElementsMatch(t, []string{"a", "b", "c"}, f.store.Get())
}

func TestSelectOne(t *testing.T) {
	t.Run("replaces selection", func(t *testing.T) {
		f := newFixture(true, "a", "b", "c")
		f.store.Set([]string{"a", "c"})
		f.focusAt(t, 1)

		f.sel.SelectOne()
		assert.Equal(t, []string{"b"}, f.store.Get())
	})

	t.Run("disabled active item is a no-op", func(t *testing.T) {
		f := newFixture(true, "a", "b")
		f.store.Set([]string{"b"})
		f.options[0].Inactive = true

		f.sel.SelectOne()
		assert.Equal(t, []string{"b"}, f.store.Get())
	})

	t.Run("stuck disabled selection blocks single select", func(t *testing.T) {
		f := newFixture(false, "a", "b", "c")
		f.store.Set([]string{"c"})
		f.options[2].Inactive = true
		f.focusAt(t, 1)

		f.sel.SelectOne()
		assert.Equal(t, []string{"c"}, f.store.Get())
	})
}

func TestSelectRangeExtendAndRetract(t *testing.T) {
	f := newFixture(true, "A", "B", "C", "D", "E")
	f.focusAt(t, 1)
	f.sel.SetRangeStartIndex(1)

	f.focusAt(t, 2)
	f.sel.SelectRange(true)
	f.focusAt(t, 3)
	f.sel.SelectRange(true)
	assert.ElementsMatch(t, []string{"B", "C", "D"}, f.store.Get())
	assert.Equal(t, 1, f.sel.RangeStartIndex())
	assert.Equal(t, 3, f.sel.RangeEndIndex())

	f.focusAt(t, 2)
	f.sel.SelectRange(true)
	assert.ElementsMatch(t, []string{"B", "C"}, f.store.Get())
	assert.Equal(t, 2, f.sel.RangeEndIndex())
}

func TestSelectRangeAcrossAnchor(t *testing.T) {
	f := newFixture(true, "A", "B", "C", "D", "E")
	f.focusAt(t, 2)
	f.sel.BeginRangeSelection(2)

	f.focusAt(t, 3)
	f.sel.SelectRange(true)
	f.focusAt(t, 4)
	f.sel.SelectRange(true)
	assert.ElementsMatch(t, []string{"C", "D", "E"}, f.store.Get())

	// Jump above the anchor: the old extent below it is released.
	f.focusAt(t, 0)
	f.sel.SelectRange(true)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, f.store.Get())
	assert.Equal(t, 0, f.sel.RangeEndIndex())
}

func TestSelectRangeSkipsDisabled(t *testing.T) {
	f := newFixture(true, "A", "B", "C", "D")
	f.options[2].Inactive = true
	f.focusAt(t, 0)
	f.sel.BeginRangeSelection(0)

	f.focusAt(t, 3)
	f.sel.SelectRange(true)
	assert.ElementsMatch(t, []string{"A", "B", "D"}, f.store.Get())
}

func TestSelectRangeReanchorsFreshGesture(t *testing.T) {
	f := newFixture(true, "A", "B", "C", "D")
	f.focusAt(t, 2)
	f.sel.BeginRangeSelection(2)
	f.focusAt(t, 3)

	// The pre-move index equals the range start, so the range is rebased there.
	f.sel.SelectRange(true)
	assert.Equal(t, 2, f.sel.RangeStartIndex())
	assert.ElementsMatch(t, []string{"C", "D"}, f.store.Get())
}

func TestSelectedItemsInListOrder(t *testing.T) {
	f := newFixture(true, "a", "b", "c")
	f.store.Set([]string{"c", "a"})

	items := f.sel.SelectedItems()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Value())
	assert.Equal(t, "c", items[1].Value())
	assert.True(t, f.sel.IsSelected(f.options[2]))
	assert.False(t, f.sel.IsSelected(f.options[1]))
}

func TestSelectionSubsetInvariant(t *testing.T) {
	f := newFixture(true, "a", "b", "c", "d")
	f.options[3].Inactive = true

	ops := []func(){
		func() { f.sel.Select(f.options[0], true) },
		func() { f.sel.Toggle(f.options[1]) },
		func() { f.sel.Select(f.options[3], true) },
		func() { f.sel.Deselect(f.options[0]) },
		func() { f.sel.ToggleAll() },
		func() { f.sel.Toggle(f.options[2]) },
	}

	for _, op := range ops {
		op()
		for _, v := range f.store.Get() {
			idx := f.focus.IndexOf(&domain.Option{Key: v})
			assert.NotEqual(t, focus.NoIndex, idx, "selected value %q has no item", v)
		}
	}
}

func TestSelectionPublishesChanges(t *testing.T) {
	f := newFixture(true, "a", "b")

	var got []ChangedEvent[string]
	events.On(f.bus, func(e ChangedEvent[string]) { got = append(got, e) })

	f.sel.Select(f.options[0], true)
	f.sel.Deselect(f.options[0])
	f.sel.Deselect(f.options[0])

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a"}, got[0].Added)
	assert.Equal(t, 1, got[0].Total)
	assert.Equal(t, []string{"a"}, got[1].Removed)
	assert.Equal(t, 0, got[1].Total)
}

type sliceStore struct{ values []string }

func (s *sliceStore) Get() []string  { return s.values }
func (s *sliceStore) Set(v []string) { s.values = v }

func TestPlainStore(t *testing.T) {
	options := []*domain.Option{{Key: "a"}, {Key: "b"}}
	fm := focus.NewService(func() []domain.Item[string] { return domain.Items(options) })
	store := &sliceStore{}
	s := NewService(nil, fm, store)
	s.SetMultiFunction(func() bool { return true })

	s.Select(options[1], true)
	s.Select(options[0], true)
	assert.Equal(t, []string{"b", "a"}, store.values)

	s.Deselect(options[1])
	assert.Equal(t, []string{"a"}, store.values)
}

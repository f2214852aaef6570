package types

import (
	"listkit/internal/ui/list"
	"listkit/internal/ui/services/navigation"
)

// Navigation actions
type NavigateAction struct {
	Direction navigation.Direction // first, last, next or prev
	Options   list.NavOptions
}

func (a NavigateAction) Type() string { return "navigate" }

type SearchAction struct {
	Char    string
	Options list.NavOptions
}

func (a SearchAction) Type() string { return "search" }

// AnchorAction marks where a shift gesture began
type AnchorAction struct {
	Index int
}

func (a AnchorAction) Type() string { return "anchor" }

// Selection actions
type UpdateSelectionAction struct {
	Options list.NavOptions
}

func (a UpdateSelectionAction) Type() string { return "update_selection" }

type ToggleAction struct{}

func (a ToggleAction) Type() string { return "toggle" }

type ToggleOneAction struct{}

func (a ToggleOneAction) Type() string { return "toggle_one" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Host actions
type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }

package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeListbox Mode = iota
	ModeHelp
)

// SelectionMode decides whether selection follows focus
type SelectionMode string

const (
	SelectionFollow   SelectionMode = "follow"
	SelectionExplicit SelectionMode = "explicit"
)

// ParseSelectionMode returns the mode named by s, defaulting to follow
func ParseSelectionMode(s string) SelectionMode {
	if SelectionMode(s) == SelectionExplicit {
		return SelectionExplicit
	}
	return SelectionFollow
}

// Orientation decides which arrow keys move through the list
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// ParseOrientation returns the orientation named by s, defaulting to vertical
func ParseOrientation(s string) Orientation {
	if Orientation(s) == Horizontal {
		return Horizontal
	}
	return Vertical
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to list state needed for input handling
type Context interface {
	ActiveIndex() int
	IsTyping() bool
	HasSelection() bool
	Multi() bool
	SelectionMode() SelectionMode
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

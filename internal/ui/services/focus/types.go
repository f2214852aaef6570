package focus

// NoIndex is the active index of a list with no active item
const NoIndex = -1

// Tab indices handed to the rendering layer
const (
	TabIndexActive   = 0
	TabIndexInactive = -1
)

// Mode selects how the active item is exposed to assistive technology
type Mode int

const (
	// ModeRoving moves the tab stop onto the active item.
	ModeRoving Mode = iota
	// ModeActiveDescendant keeps the tab stop on the list and reports the
	// active item through the active descendant id.
	ModeActiveDescendant
)

func (m Mode) String() string {
	switch m {
	case ModeActiveDescendant:
		return "activedescendant"
	default:
		return "roving"
	}
}

// ParseMode maps a config string onto a Mode. Unknown values are roving.
func ParseMode(s string) Mode {
	if s == "activedescendant" {
		return ModeActiveDescendant
	}
	return ModeRoving
}

// State holds focus state
type State struct {
	ActiveIndex     int
	PrevActiveIndex int
}

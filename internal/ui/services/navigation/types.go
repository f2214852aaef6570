package navigation

// Direction represents movement directions
type Direction string

const (
	DirectionFirst Direction = "first"
	DirectionLast  Direction = "last"
	DirectionNext  Direction = "next"
	DirectionPrev  Direction = "prev"
	DirectionGoto  Direction = "goto"
)

// CursorMovedEvent is published after the active item changed
type CursorMovedEvent struct {
	Direction Direction
	OldIndex  int
	NewIndex  int
}

package core

import "fmt"

// EventKind identifies the variant of an input Event.
type EventKind int

const (
	EventTick        EventKind = iota // Advance the simulation by one step
	EventKeyDown                      // A key was pressed
	EventKeyUp                        // A key was released
	EventPointerMove                  // Pointer moved to a canvas x coordinate
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "Tick"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventPointerMove:
		return "PointerMove"
	default:
		return "Unknown"
	}
}

// Key identifiers understood by games. Both the short and the long form
// name the same direction.
const (
	KeyLeft       = "Left"
	KeyRight      = "Right"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// IsLeftKey reports whether key names the "move left" control.
func IsLeftKey(key string) bool {
	return key == KeyLeft || key == KeyArrowLeft
}

// IsRightKey reports whether key names the "move right" control.
func IsRightKey(key string) bool {
	return key == KeyRight || key == KeyArrowRight
}

// Event is a single discrete input fed to a game.
// Only the field matching Kind is meaningful.
type Event struct {
	Kind EventKind
	Key  string  // KeyDown / KeyUp
	X    float64 // PointerMove, canvas units
}

// Tick returns a simulation step event.
func Tick() Event {
	return Event{Kind: EventTick}
}

// KeyDown returns a key press event.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// KeyUp returns a key release event.
func KeyUp(key string) Event {
	return Event{Kind: EventKeyUp, Key: key}
}

// PointerMove returns a pointer motion event at canvas x.
func PointerMove(x float64) Event {
	return Event{Kind: EventPointerMove, X: x}
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	case EventPointerMove:
		return fmt.Sprintf("%s(%.1f)", e.Kind, e.X)
	default:
		return e.Kind.String()
	}
}

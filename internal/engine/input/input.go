// Package input provides window-agnostic input events and the camera
// control panel they drive.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Key is a physical key, independent of the window backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyW
	KeyS
	KeyA
	KeyD
	KeyQ
	KeyE
	KeyR
	KeyF
	KeyH
	KeyL
	KeyN
	KeyTab
	KeyHome
	KeyF5
	KeyF12
)

// Mouse buttons.
const (
	ButtonLeft   uint8 = 1
	ButtonMiddle uint8 = 2
	ButtonRight  uint8 = 3
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	WheelY float32
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Reset clears the events of the previous frame.
func (i *Input) Reset() {
	i.events = i.events[:0]
}

// Push records an event for this frame.
func (i *Input) Push(e Event) {
	i.events = append(i.events, e)
}

// Events returns the events recorded since the last Reset.
func (i *Input) Events() []Event {
	return i.events
}

// Quit reports whether a quit was requested this frame.
func (i *Input) Quit() bool {
	for _, e := range i.events {
		if e.Type == EventQuit {
			return true
		}
	}
	return false
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key Key) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}

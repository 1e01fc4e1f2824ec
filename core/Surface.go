package core

type Scancode int

const (
	ScancodeW Scancode = iota
	ScancodeS
	ScancodeUp
	ScancodeDown
)

type EventType int

const (
	EventQuit EventType = iota + 1
	EventResize
)

type Event struct {
	Type EventType
}

type Color struct {
	R, G, B, A uint8
}

var ColorBlack = Color{0, 0, 0, 255}
var ColorWhite = Color{255, 255, 255, 255}

// KeyState is the keyboard snapshot the input step reads.
type KeyState interface {
	KeyPressed(sc Scancode) bool
}

// Announcer shows a blocking information dialog.
type Announcer interface {
	ShowMessage(title, message string) error
}

// Renderer is the drawing context handed to Render.
type Renderer interface {
	SetDrawColor(c Color)
	Clear()
	FillRect(r Rect)
	Present()
}

// Surface is the window plus drawing context the game loop runs against.
type Surface interface {
	KeyState
	Announcer
	Renderer

	// PollEvents drains pending events without blocking.
	PollEvents() []Event
	Close() error
}

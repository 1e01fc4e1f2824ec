package core

import "fmt"

type message struct {
	title, text string
}

// fakeSurface records every draw call and replays scripted events.
type fakeSurface struct {
	keys     map[Scancode]bool
	polls    [][]Event
	pollN    int
	ops      []string
	messages []message
	closed   bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{keys: make(map[Scancode]bool)}
}

func (f *fakeSurface) KeyPressed(sc Scancode) bool {
	return f.keys[sc]
}

func (f *fakeSurface) ShowMessage(title, text string) error {
	f.messages = append(f.messages, message{title, text})
	return nil
}

func (f *fakeSurface) SetDrawColor(c Color) {
	f.ops = append(f.ops, fmt.Sprintf("color %d,%d,%d,%d", c.R, c.G, c.B, c.A))
}

func (f *fakeSurface) Clear() {
	f.ops = append(f.ops, "clear")
}

func (f *fakeSurface) FillRect(r Rect) {
	f.ops = append(f.ops, fmt.Sprintf("fill %d,%d,%d,%d", r.X, r.Y, r.W, r.H))
}

func (f *fakeSurface) Present() {
	f.ops = append(f.ops, "present")
}

func (f *fakeSurface) PollEvents() []Event {
	defer func() { f.pollN++ }()
	if f.pollN < len(f.polls) {
		return f.polls[f.pollN]
	}
	return nil
}

func (f *fakeSurface) Close() error {
	f.closed = true
	return nil
}

type keys map[Scancode]bool

func (k keys) KeyPressed(sc Scancode) bool {
	return k[sc]
}

package core

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const PaddleSymbol = 0x2588 // 球拍符號

const eventBuffer = 64

type TerminalOptions struct {
	// KeyHold is how long a key counts as held after its last press or
	// auto-repeat event. Terminals never report key releases.
	KeyHold time.Duration
	Now     func() time.Time
}

// TerminalSurface draws the 640x480 arena scaled onto the terminal cell
// grid. The top row carries the title.
type TerminalSurface struct {
	screen  tcell.Screen
	title   string
	style   tcell.Style
	keyHold time.Duration
	now     func() time.Time

	events  chan tcell.Event
	pressed map[Scancode]time.Time
	quit    bool

	done      chan struct{}
	pumpDone  chan struct{}
	closeOnce sync.Once
}

func NewTerminalSurface(title string, opts TerminalOptions) (*TerminalSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	return newTerminalSurface(screen, title, opts)
}

func newTerminalSurface(screen tcell.Screen, title string, opts TerminalOptions) (*TerminalSurface, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}

	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHoldMs * time.Millisecond
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	t := &TerminalSurface{
		screen:   screen,
		title:    title,
		style:    defaultStyle,
		keyHold:  opts.KeyHold,
		now:      opts.Now,
		events:   make(chan tcell.Event, eventBuffer),
		pressed:  make(map[Scancode]time.Time),
		done:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
	go t.pumpEvents()
	return t, nil
}

// pumpEvents forwards screen events until the screen is finalized or
// the surface is closed.
func (t *TerminalSurface) pumpEvents() {
	defer close(t.pumpDone)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *TerminalSurface) PollEvents() []Event {
	var out []Event
	if t.quit {
		t.quit = false
		out = append(out, Event{Type: EventQuit})
	}

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(out, Event{Type: EventQuit})
			}
			if e, ok := t.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (t *TerminalSurface) translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return Event{Type: EventQuit}, true
		}
		if sc, ok := scancodeOf(ev); ok {
			t.pressed[sc] = t.now()
		}
	case *tcell.EventResize:
		t.screen.Sync()
		return Event{Type: EventResize}, true
	}
	return Event{}, false
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}

func scancodeOf(ev *tcell.EventKey) (Scancode, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ScancodeUp, true
	case tcell.KeyDown:
		return ScancodeDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return ScancodeW, true
		case 's', 'S':
			return ScancodeS, true
		}
	}
	return 0, false
}

func (t *TerminalSurface) KeyPressed(sc Scancode) bool {
	at, ok := t.pressed[sc]
	return ok && t.now().Sub(at) < t.keyHold
}

func (t *TerminalSurface) SetDrawColor(c Color) {
	t.style = tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func (t *TerminalSurface) Clear() {
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()
}

// FillRect fills every cell the rectangle covers, at least one cell for
// any non-empty rectangle inside the arena.
func (t *TerminalSurface) FillRect(r Rect) {
	if r.Empty() {
		return
	}
	cols, rows := t.arenaSize()
	if cols <= 0 || rows <= 0 {
		return
	}

	x0, x1 := scaleSpan(r.X, r.W, cols, ScreenWidth)
	y0, y1 := scaleSpan(r.Y, r.H, rows, ScreenHeight)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y+1, PaddleSymbol, nil, t.style)
		}
	}
}

// scaleSpan maps [pos, pos+size) in arena units onto [0, cells) cells.
func scaleSpan(pos, size, cells, arena int) (int, int) {
	start := floorDiv(pos*cells, arena)
	end := ceilDiv((pos+size)*cells, arena)
	if end <= start {
		end = start + 1
	}
	if start < 0 {
		start = 0
	}
	if end > cells {
		end = cells
	}
	return start, end
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func (t *TerminalSurface) arenaSize() (int, int) {
	cols, rows := t.screen.Size()
	return cols, rows - 1
}

func (t *TerminalSurface) Present() {
	cols, _ := t.screen.Size()
	x := (cols - runewidth.StringWidth(t.title)) / 2
	t.drawText(x, 0, t.title, tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Show()
}

func (t *TerminalSurface) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// ShowMessage draws a centred dialog and blocks until Enter or Space is
// pressed after it appeared. Keys queued before that, held paddle keys
// included, are dropped. A quit key dismisses it and requests quit on the
// next poll.
func (t *TerminalSurface) ShowMessage(title, message string) error {
	shown := time.Now()
	if closed := t.dropPending(); closed {
		t.quit = true
		return errors.New("screen closed while showing message")
	}
	defer func() { t.pressed = make(map[Scancode]time.Time) }()
	if t.quit {
		return nil
	}

	t.drawDialog(title, message)
	t.screen.Show()

	for ev := range t.events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				t.quit = true
				return nil
			}
			if ev.When().Before(shown) || !isDismissKey(ev) {
				continue
			}
			return nil
		case *tcell.EventResize:
			t.screen.Sync()
			t.drawDialog(title, message)
			t.screen.Show()
		}
	}

	t.quit = true
	return errors.New("screen closed while showing message")
}

// dropPending discards queued events, keeping only quit requests. It
// reports whether the event stream has ended.
func (t *TerminalSurface) dropPending() bool {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					t.quit = true
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return false
		}
	}
}

func isDismissKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}

func (t *TerminalSurface) drawDialog(title, message string) {
	const hint = "Press Enter"
	boxStyle := tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)

	width := runewidth.StringWidth(message)
	if w := runewidth.StringWidth(title); w > width {
		width = w
	}
	if w := runewidth.StringWidth(hint); w > width {
		width = w
	}
	width += 4
	height := 5

	cols, rows := t.screen.Size()
	left := (cols - width) / 2
	top := (rows - height) / 2

	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			t.screen.SetContent(x, y, ' ', nil, boxStyle)
		}
	}

	center := func(y int, text string, style tcell.Style) {
		t.drawText(left+(width-runewidth.StringWidth(text))/2, y, text, style)
	}
	center(top+1, title, boxStyle.Bold(true))
	center(top+2, message, boxStyle)
	center(top+3, hint, boxStyle.Dim(true))
}

func (t *TerminalSurface) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
	return nil
}

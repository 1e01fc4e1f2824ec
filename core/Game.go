package core

import (
	"Pong/logger"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

type Game struct {
	State      *GameState
	Surface    Surface
	FrameDelay time.Duration

	frames uint64
	quit   bool
}

func NewGame(surface Surface, frameDelay time.Duration) *Game {
	return &Game{
		State:      NewGameState(),
		Surface:    surface,
		FrameDelay: frameDelay,
	}
}

// Run repeats poll, input, update, render and delay until a quit event
// arrives. The quit flag is checked at the top of each iteration.
func (g *Game) Run() {
	for !g.quit {
		g.pollEvents()
		g.Frame()
		if g.FrameDelay > 0 {
			time.Sleep(g.FrameDelay)
		}
	}
	logger.Log.Info(fmt.Sprintf(logger.GameOverMsg, humanize.Comma(int64(g.frames))))
}

// Frame runs input, update and render once.
func (g *Game) Frame() {
	g.State.HandleInput(g.Surface)
	g.State.Update(g.Surface)
	Render(g.Surface, g.State)
	g.frames++
}

func (g *Game) Frames() uint64 {
	return g.frames
}

func (g *Game) pollEvents() {
	for _, ev := range g.Surface.PollEvents() {
		if ev.Type == EventQuit {
			logger.Log.Debug(logger.QuitRequestedMsg)
			g.quit = true
		}
	}
}

var newSurface = func(title string, opts TerminalOptions) (Surface, error) {
	return NewTerminalSurface(title, opts)
}

// Start opens the terminal surface, plays until quit and tears down. It
// returns the process exit code.
func Start(cfg Config) int {
	surface, err := newSurface(cfg.Title, TerminalOptions{KeyHold: cfg.KeyHold})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize! %v\n", err)
		logger.Log.Error(fmt.Sprintf(logger.SurfaceInitFailedMsg, err))
		return 1
	}

	logger.Log.Info(fmt.Sprintf(logger.GameStartMsg, cfg.Title, ScreenWidth, ScreenHeight))
	game := NewGame(surface, cfg.FrameDelay)
	game.Run()

	if err := surface.Close(); err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.SurfaceCloseFailedMsg, err))
	}
	return 0
}

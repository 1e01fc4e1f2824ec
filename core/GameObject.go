package core

import "fmt"

const ScreenWidth = 640  // 場地寬度
const ScreenHeight = 480 // 場地高度

const PaddleWidth = 15  // 球拍寬度
const PaddleHeight = 60 // 球拍高度
const PaddleMargin = 20 // 球拍與邊界距離
const PaddleSpeed = 10

const BallSize = 10
const BallSpeed = 5

const FinalScore = 10 // 遊戲結束分數

type Rect struct {
	X, Y, W, H int
}

// Intersects reports whether the two rectangles share any area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

type Paddle struct {
	Rect
	Vel int
}

type Ball struct {
	Rect
	VelX, VelY int
}

type Score struct {
	Player1, Player2 int
}

// Text is the score line for player 1 or 2.
func (s Score) Text(player int) string {
	if player == 1 {
		return fmt.Sprintf("Player 1: %d", s.Player1)
	}
	return fmt.Sprintf("Player 2: %d", s.Player2)
}

func (s *Score) Reset() {
	s.Player1 = 0
	s.Player2 = 0
}

type GameState struct {
	Paddle1 Paddle
	Paddle2 Paddle
	Ball    Ball
	Score   Score
}

func NewGameState() *GameState {
	paddleStart := ScreenHeight/2 - PaddleHeight/2

	return &GameState{
		Paddle1: Paddle{
			Rect: Rect{X: PaddleMargin, Y: paddleStart, W: PaddleWidth, H: PaddleHeight},
		},
		Paddle2: Paddle{
			Rect: Rect{X: ScreenWidth - PaddleMargin - PaddleWidth, Y: paddleStart, W: PaddleWidth, H: PaddleHeight},
		},
		Ball: Ball{
			Rect: Rect{X: ScreenWidth/2 - BallSize/2, Y: ScreenHeight/2 - BallSize/2, W: BallSize, H: BallSize},
			VelX: BallSpeed, VelY: BallSpeed,
		},
	}
}

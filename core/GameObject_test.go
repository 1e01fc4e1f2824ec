package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, true},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"apart", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, false},
		{"empty width", Rect{0, 0, 0, 10}, Rect{0, 0, 10, 10}, false},
		{"negative height", Rect{0, 0, 10, -1}, Rect{0, 0, 10, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestNewGameStateLayout(t *testing.T) {
	g := NewGameState()

	if g.Paddle1.Rect != (Rect{20, 210, 15, 60}) {
		t.Errorf("paddle1 = %v", g.Paddle1.Rect)
	}
	if g.Paddle2.Rect != (Rect{605, 210, 15, 60}) {
		t.Errorf("paddle2 = %v", g.Paddle2.Rect)
	}
	if g.Ball.Rect != (Rect{315, 235, 10, 10}) {
		t.Errorf("ball = %v", g.Ball.Rect)
	}
	if g.Ball.VelX != 5 || g.Ball.VelY != 5 {
		t.Errorf("ball velocity = (%d,%d), want (5,5)", g.Ball.VelX, g.Ball.VelY)
	}
	if g.Paddle1.Vel != 0 || g.Paddle2.Vel != 0 {
		t.Errorf("paddles should start at rest")
	}
	if g.Score != (Score{}) {
		t.Errorf("score = %+v, want zero", g.Score)
	}
}

func TestScoreText(t *testing.T) {
	s := Score{Player1: 3, Player2: 7}
	if got := s.Text(1); got != "Player 1: 3" {
		t.Errorf("Text(1) = %q", got)
	}
	if got := s.Text(2); got != "Player 2: 7" {
		t.Errorf("Text(2) = %q", got)
	}
}

package core

// Render draws one frame. It only reads the state.
func Render(r Renderer, g *GameState) {
	r.SetDrawColor(ColorBlack)
	r.Clear()

	r.SetDrawColor(ColorWhite)
	//兩個球拍
	r.FillRect(g.Paddle1.Rect)
	r.FillRect(g.Paddle2.Rect)
	//球
	r.FillRect(g.Ball.Rect)

	r.Present()
}

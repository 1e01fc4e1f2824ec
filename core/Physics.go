package core

import (
	"Pong/logger"
	"fmt"
)

const winTitle = "Player %d Wins!"
const winMessage = "Player %d is the first to %d!"

// HandleInput sets both paddle velocities from the held keys. The edge
// check uses the current position, so a paddle resting on a border can
// only move away from it.
func (g *GameState) HandleInput(keys KeyState) {
	g.Paddle1.Vel = paddleVelocity(&g.Paddle1, keys.KeyPressed(ScancodeW), keys.KeyPressed(ScancodeS))
	g.Paddle2.Vel = paddleVelocity(&g.Paddle2, keys.KeyPressed(ScancodeUp), keys.KeyPressed(ScancodeDown))
}

func paddleVelocity(paddle *Paddle, up, down bool) int {
	if up && canMoveUp(paddle) {
		return -PaddleSpeed
	}
	if down && canMoveDown(paddle) {
		return PaddleSpeed
	}
	return 0
}

func canMoveUp(paddle *Paddle) bool {
	return paddle.Y > 0
}

func canMoveDown(paddle *Paddle) bool {
	return paddle.Y < ScreenHeight-PaddleHeight
}

// Update advances one frame. Positions are never clamped: a paddle may
// overshoot a border by one step and the ball may sink into a wall or a
// paddle before its velocity flips.
func (g *GameState) Update(announcer Announcer) {
	//兩個球拍
	g.Paddle1.Y += g.Paddle1.Vel
	g.Paddle2.Y += g.Paddle2.Vel

	//球
	g.Ball.X += g.Ball.VelX
	g.Ball.Y += g.Ball.VelY

	//檢查有沒有撞到上下牆壁
	if isCollidesWithWall(&g.Ball) {
		g.Ball.VelY = -g.Ball.VelY
	}

	//檢查是否有碰到球拍
	if g.isTouchPaddle() {
		g.Ball.VelX = -g.Ball.VelX
	}

	g.calculateScore()

	if over, winner := g.isGameOver(); over {
		logger.Log.WithField("winner", winner).Info(fmt.Sprintf(logger.PlayerWinMsg, winner, FinalScore))
		if announcer != nil {
			title := fmt.Sprintf(winTitle, winner)
			message := fmt.Sprintf(winMessage, winner, FinalScore)
			if err := announcer.ShowMessage(title, message); err != nil {
				logger.Log.Warn(fmt.Sprintf(logger.AnnounceFailedMsg, err))
			}
		}
		g.Score.Reset()
	}
}

func isCollidesWithWall(ball *Ball) bool {
	return ball.Y <= 0 || ball.Y >= ScreenHeight-BallSize
}

func (g *GameState) isTouchPaddle() bool {
	return g.Ball.Intersects(g.Paddle1.Rect) || g.Ball.Intersects(g.Paddle2.Rect)
}

func (g *GameState) calculateScore() {
	if g.Ball.X <= 0 {
		g.Score.Player2 += 1
	} else if g.Ball.X >= ScreenWidth-BallSize {
		g.Score.Player1 += 1
	} else {
		return
	}
	logger.Log.WithField("score", g.Score).Debug(fmt.Sprintf(logger.PlayerScoredMsg, g.Score.Text(1), g.Score.Text(2)))
	g.ResetBall()
}

// ResetBall puts the ball back at the centre of the arena. Velocity signs
// are kept, magnitudes go back to BallSpeed.
func (g *GameState) ResetBall() {
	g.Ball.X = ScreenWidth/2 - BallSize/2
	g.Ball.Y = ScreenHeight/2 - BallSize/2
	g.Ball.VelX = normalize(g.Ball.VelX)
	g.Ball.VelY = normalize(g.Ball.VelY)
}

func normalize(vel int) int {
	if vel > 0 {
		return BallSpeed
	}
	return -BallSpeed
}

// isGameOver checks player 1 first, so player 1 wins a tie.
func (g *GameState) isGameOver() (bool, int) {
	if g.Score.Player1 >= FinalScore {
		return true, 1
	}
	if g.Score.Player2 >= FinalScore {
		return true, 2
	}
	return false, 0
}

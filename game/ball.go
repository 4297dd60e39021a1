package game

// Ball is the moving square. Velocity components are in pixels per
// simulation step and stay nonzero at game start and after every reset.
type Ball struct {
	Rect Rect    `json:"rect"`
	Vx   float64 `json:"vx"`
	Vy   float64 `json:"vy"`
}

// NewBall creates a ball of the given size centered at (cx, cy).
func NewBall(cx, cy, size, vx, vy float64) *Ball {
	ball := &Ball{
		Rect: NewRect(0, 0, size, size),
		Vx:   vx,
		Vy:   vy,
	}
	ball.Rect.SetCenter(cx, cy)
	return ball
}

// Move advances the ball by its velocity scaled by the number of elapsed
// simulation steps. Plain Euler integration at constant velocity.
func (b *Ball) Move(dtSteps float64) {
	b.Rect.X += b.Vx * dtSteps
	b.Rect.Y += b.Vy * dtSteps
}

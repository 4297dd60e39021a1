// File: game/paddle.go
package game

// Paddle is one of the two vertical paddles. Both players share the same
// structure; the only difference is who assigns Vy each tick (input adapter
// or the tracking controller).
type Paddle struct {
	Rect  Rect    `json:"rect"`
	Vy    float64 `json:"vy"`
	Score int     `json:"score"`
}

// NewPaddle creates a stationary paddle with its top-left corner at (x, y).
func NewPaddle(x, y, width, height float64) *Paddle {
	return &Paddle{Rect: NewRect(x, y, width, height)}
}

// Move advances the paddle by its velocity scaled by the number of elapsed
// simulation steps. The paddle is not clamped to the field: input can drive
// it off-screen, which the simulation accepts.
func (p *Paddle) Move(dtSteps float64) {
	p.Rect.Y += p.Vy * dtSteps
}

package game

// SteerPaddle drives a paddle toward the ball with a bang-bang rule: ball
// below the paddle's top edge moves it down at full speed, above moves it up,
// exactly level stops it. The comparison uses the top-left corners of both
// rectangles, not their centers, giving the controller a built-in
// half-paddle-height bias. It has no hysteresis and may flip direction every
// tick when the ball straddles the paddle's Y, which is accepted behavior.
func SteerPaddle(p *Paddle, ball *Ball, speed float64) {
	switch {
	case ball.Rect.Y > p.Rect.Y:
		p.Vy = speed
	case ball.Rect.Y < p.Rect.Y:
		p.Vy = -speed
	default:
		p.Vy = 0
	}
}

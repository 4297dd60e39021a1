package game

import (
	"math/rand"
	"time"

	"duelpong/utils"
)

// World is the aggregate of the two paddles, the ball, and the field bounds.
// It is exclusively owned by whoever calls Tick; no internal locking is done.
// In a multi-threaded host, Tick and Snapshot must be serialized by the
// caller (the GameActor does this by construction).
type World struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Paddle1 *Paddle `json:"paddle1"` // Left, player-controlled
	Paddle2 *Paddle `json:"paddle2"` // Right, AI-controlled in the baseline
	Ball    *Ball   `json:"ball"`

	Ticks uint64 `json:"ticks"`

	cfg utils.Config
	rng *rand.Rand
}

// NewWorld builds a world from the session configuration: paddles at fixed
// left/right margins vertically centered, ball centered with the configured
// nonzero velocity.
func NewWorld(cfg utils.Config) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	paddleY := (cfg.FieldHeight - cfg.PaddleHeight) / 2
	w := &World{
		Width:  cfg.FieldWidth,
		Height: cfg.FieldHeight,
		Paddle1: NewPaddle(
			cfg.PaddleMargin, paddleY,
			cfg.PaddleWidth, cfg.PaddleHeight,
		),
		Paddle2: NewPaddle(
			cfg.FieldWidth-cfg.PaddleMargin-cfg.PaddleWidth, paddleY,
			cfg.PaddleWidth, cfg.PaddleHeight,
		),
		Ball: NewBall(
			cfg.FieldWidth/2, cfg.FieldHeight/2,
			cfg.BallSize, cfg.BallVelocityX, cfg.BallVelocityY,
		),
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	return w
}

// Tick advances the simulation by dtSteps fixed steps (normally 1). Both
// paddles and the ball integrate first, then exactly one boundary or
// obstacle event resolves. The chain is mutually exclusive on the assumption
// that one step is too small for the ball to cross two boundaries at once;
// a dt too large for the object speeds breaks that assumption (tunneling)
// and is a host configuration responsibility, not checked here.
func (w *World) Tick(dtSteps float64) {
	w.Ticks++

	w.Paddle1.Move(dtSteps)
	w.Paddle2.Move(dtSteps)
	w.Ball.Move(dtSteps)

	ball := w.Ball
	switch {
	case ball.Rect.Bottom() >= w.Height:
		ball.Rect.SetBottom(w.Height)
		ball.Vy = -ball.Vy

	case ball.Rect.Top() <= 0:
		ball.Rect.SetTop(0)
		ball.Vy = -ball.Vy

	case ball.Rect.Right() >= w.Width:
		w.Paddle1.Score++
		w.resetBall()

	case ball.Rect.Left() <= 0:
		w.Paddle2.Score++
		w.resetBall()

	case Intersects(ball.Rect, w.Paddle1.Rect):
		ball.Rect.SetLeft(w.Paddle1.Rect.Right())
		ball.Vx = -ball.Vx

	case Intersects(ball.Rect, w.Paddle2.Rect):
		ball.Vx = -ball.Vx
		ball.Rect.SetRight(w.Paddle2.Rect.Left())
	}
}

// resetBall recenters the ball after a scoring event. In ResetPreserve mode
// the velocity carries over unchanged; in ResetRandom mode each axis is
// re-seeded independently to a random magnitude with a random sign. The two
// modes are separate code paths on purpose.
func (w *World) resetBall() {
	w.Ball.Rect.SetCenter(w.Width/2, w.Height/2)

	if w.cfg.ResetMode != utils.ResetRandom {
		return
	}
	w.Ball.Vx = w.randomAxisSpeed()
	w.Ball.Vy = w.randomAxisSpeed()
}

func (w *World) randomAxisSpeed() float64 {
	speed := w.cfg.ResetMinSpeed + w.rng.Float64()*(w.cfg.ResetMaxSpeed-w.cfg.ResetMinSpeed)
	if w.rng.Intn(2) == 0 {
		return -speed
	}
	return speed
}

// Snapshot is the read-only view handed to renderers and the network layer.
// It is a value copy: holding one never aliases live world state.
type Snapshot struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Paddle1 Rect    `json:"paddle1"`
	Paddle2 Rect    `json:"paddle2"`
	Ball    Rect    `json:"ball"`
	Score1  int     `json:"score1"`
	Score2  int     `json:"score2"`
	Ticks   uint64  `json:"ticks"`
}

// Snapshot copies the render contract out of the world. Must not run
// concurrently with Tick; callers go through the GameActor for that.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Width:   w.Width,
		Height:  w.Height,
		Paddle1: w.Paddle1.Rect,
		Paddle2: w.Paddle2.Rect,
		Ball:    w.Ball.Rect,
		Score1:  w.Paddle1.Score,
		Score2:  w.Paddle2.Score,
		Ticks:   w.Ticks,
	}
}

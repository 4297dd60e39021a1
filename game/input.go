package game

// EventKind distinguishes key presses from key releases.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
)

// Key identifies the two paddle movement keys.
type Key int

const (
	KeyMoveUp Key = iota
	KeyMoveDown
)

// KeyEvent is one discrete input event delivered by the host between ticks.
type KeyEvent struct {
	Kind EventKind `json:"kind"`
	Key  Key       `json:"key"`
}

// ApplyKeyEvent translates a key event into a velocity assignment on the
// paddle. Assignment is last-writer-wins: a key-down sets the full speed in
// that direction (repeats are idempotent), any key-up stops the paddle.
func ApplyKeyEvent(p *Paddle, ev KeyEvent, speed float64) {
	switch ev.Kind {
	case KeyDown:
		if ev.Key == KeyMoveUp {
			p.Vy = -speed
		} else {
			p.Vy = speed
		}
	case KeyUp:
		p.Vy = 0
	}
}

package game

import "testing"

func TestNewBall_Centered(t *testing.T) {
	ball := NewBall(250, 250, 10, 2, 1.5)

	if ball.Rect.X != 245 || ball.Rect.Y != 245 {
		t.Errorf("Expected top-left (245, 245) but got (%g, %g)", ball.Rect.X, ball.Rect.Y)
	}
	if ball.Rect.Width != 10 || ball.Rect.Height != 10 {
		t.Errorf("Expected size 10x10 but got %gx%g", ball.Rect.Width, ball.Rect.Height)
	}
	if ball.Vx != 2 || ball.Vy != 1.5 {
		t.Errorf("Expected velocity (2, 1.5) but got (%g, %g)", ball.Vx, ball.Vy)
	}
}

func TestBall_Move(t *testing.T) {
	testCases := []struct {
		name      string
		vx, vy    float64
		dtSteps   float64
		expectedX float64
		expectedY float64
	}{
		{"one step", 3, -2, 1, 103, 98},
		{"two steps", 3, -2, 2, 106, 96},
		{"half step", 3, -2, 0.5, 101.5, 99},
		{"stationary", 0, 0, 1, 100, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := Ball{Rect: NewRect(100, 100, 10, 10), Vx: tc.vx, Vy: tc.vy}
			ball.Move(tc.dtSteps)
			if ball.Rect.X != tc.expectedX || ball.Rect.Y != tc.expectedY {
				t.Errorf("Expected position (%g, %g) but got (%g, %g)",
					tc.expectedX, tc.expectedY, ball.Rect.X, ball.Rect.Y)
			}
		})
	}
}

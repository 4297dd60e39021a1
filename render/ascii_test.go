package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duelpong/game"
)

func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Width:   500,
		Height:  500,
		Paddle1: game.NewRect(20, 230, 10, 40),
		Paddle2: game.NewRect(470, 230, 10, 40),
		Ball:    game.NewRect(245, 245, 10, 10),
		Score1:  3,
		Score2:  1,
	}
}

func TestFrame_Dimensions(t *testing.T) {
	frame := Frame(testSnapshot(), 50, 25)
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")

	// Score line, top border, 25 rows, bottom border.
	require.Len(t, lines, 28)
	assert.Equal(t, "+"+strings.Repeat("-", 50)+"+", lines[1])
	assert.Equal(t, "+"+strings.Repeat("-", 50)+"+", lines[27])
	for _, row := range lines[2:27] {
		assert.Len(t, row, 52)
		assert.True(t, strings.HasPrefix(row, "|"))
		assert.True(t, strings.HasSuffix(row, "|"))
	}
}

func TestFrame_ScoreLine(t *testing.T) {
	frame := Frame(testSnapshot(), 50, 25)
	assert.Equal(t, "  3 : 1", strings.Split(frame, "\n")[0])
}

func TestFrame_DrawsObjects(t *testing.T) {
	frame := Frame(testSnapshot(), 50, 25)
	assert.Contains(t, frame, "#", "paddles are drawn")
	assert.Contains(t, frame, "O", "ball is drawn")
}

func TestFrame_BallPosition(t *testing.T) {
	// Ball centered in a 500x500 field lands mid-grid.
	frame := Frame(testSnapshot(), 50, 25)
	lines := strings.Split(frame, "\n")

	found := false
	for y, line := range lines {
		x := strings.IndexRune(line, 'O')
		if x < 0 {
			continue
		}
		found = true
		// Grid rows start at line 2, columns at 1 (border offset).
		assert.InDelta(t, 25, x-1, 2, "ball column near the middle")
		assert.InDelta(t, 12, y-2, 2, "ball row near the middle")
	}
	assert.True(t, found)
}

func TestFrame_ClipsOffscreenObjects(t *testing.T) {
	snap := testSnapshot()
	snap.Paddle1.Y = -100 // Driven off-screen by input; rendering clips it.

	frame := Frame(snap, 50, 25)
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	require.Len(t, lines, 28)
}

func TestFrame_DegenerateSizes(t *testing.T) {
	assert.Empty(t, Frame(testSnapshot(), 0, 25))
	assert.Empty(t, Frame(testSnapshot(), 50, 0))
	assert.Empty(t, Frame(game.Snapshot{}, 50, 25))
}

// Package render draws world snapshots as text frames for terminal output.
package render

import (
	"fmt"
	"strings"

	"duelpong/game"
)

const (
	paddleChar = '#'
	ballChar   = 'O'
	emptyChar  = ' '
	borderH    = '-'
	borderV    = '|'
	corner     = '+'
)

// Frame renders a snapshot into a text grid of cols x rows cells, with a
// border and a score line on top. Field coordinates scale down to cells;
// objects partially outside the field are clipped, not wrapped.
func Frame(snap game.Snapshot, cols, rows int) string {
	if cols < 2 || rows < 2 || snap.Width <= 0 || snap.Height <= 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = emptyChar
		}
	}

	scaleX := float64(cols) / snap.Width
	scaleY := float64(rows) / snap.Height

	blit(grid, snap.Paddle1, scaleX, scaleY, paddleChar)
	blit(grid, snap.Paddle2, scaleX, scaleY, paddleChar)
	blit(grid, snap.Ball, scaleX, scaleY, ballChar)

	var frame strings.Builder
	frame.WriteString(fmt.Sprintf("  %d : %d\n", snap.Score1, snap.Score2))

	frame.WriteRune(corner)
	for x := 0; x < cols; x++ {
		frame.WriteRune(borderH)
	}
	frame.WriteRune(corner)
	frame.WriteRune('\n')

	for y := 0; y < rows; y++ {
		frame.WriteRune(borderV)
		frame.WriteString(string(grid[y]))
		frame.WriteRune(borderV)
		frame.WriteRune('\n')
	}

	frame.WriteRune(corner)
	for x := 0; x < cols; x++ {
		frame.WriteRune(borderH)
	}
	frame.WriteRune(corner)
	frame.WriteRune('\n')

	return frame.String()
}

// blit stamps a field-space rectangle onto the cell grid.
func blit(grid [][]rune, r game.Rect, scaleX, scaleY float64, ch rune) {
	rows := len(grid)
	cols := len(grid[0])

	x0 := int(r.Left() * scaleX)
	x1 := int(r.Right() * scaleX)
	y0 := int(r.Top() * scaleY)
	y1 := int(r.Bottom() * scaleY)

	// A thin object still occupies at least one cell.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		if y < 0 || y >= rows {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= cols {
				continue
			}
			grid[y][x] = ch
		}
	}
}

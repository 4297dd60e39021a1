package game

// Rect is an axis-aligned rectangle. X,Y is the top-left corner in a
// coordinate system where Y grows downward. Width and Height are fixed after
// construction; only the position is mutated.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }
func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }

// SetTop moves the rectangle so its top edge sits at v.
func (r *Rect) SetTop(v float64) { r.Y = v }

// SetBottom moves the rectangle so its bottom edge sits at v.
func (r *Rect) SetBottom(v float64) { r.Y = v - r.Height }

// SetLeft moves the rectangle so its left edge sits at v.
func (r *Rect) SetLeft(v float64) { r.X = v }

// SetRight moves the rectangle so its right edge sits at v.
func (r *Rect) SetRight(v float64) { r.X = v - r.Width }

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// SetCenter moves the rectangle so its center sits at (x, y).
func (r *Rect) SetCenter(x, y float64) {
	r.X = x - r.Width/2
	r.Y = y - r.Height/2
}

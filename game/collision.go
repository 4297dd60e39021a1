package game

// Intersects reports whether two axis-aligned rectangles overlap. It is the
// separating-axis test specialized to rectangles: the pair is disjoint only
// if one lies entirely beyond a cardinal side of the other. Touching edges
// count as intersecting, which keeps the clamp-to-boundary bounce logic from
// letting a coordinate drift past the wall.
func Intersects(a, b Rect) bool {
	if a.Bottom() < b.Top() ||
		a.Top() > b.Bottom() ||
		a.Right() < b.Left() ||
		a.Left() > b.Right() {
		return false
	}
	return true
}

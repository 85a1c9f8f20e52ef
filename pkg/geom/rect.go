package geom

import "fmt"

// Rect is an axis-aligned integer rectangle.
// X2, Y2 and Centre are derived from the origin and size; build rects with
// NewRect or Merge rather than setting fields directly.
type Rect struct {
	X, Y          int
	X2, Y2        int
	Width, Height int
	Centre        Point
}

// NewRect creates a rect with its far corner and centre computed.
func NewRect(x, y, width, height int) Rect {
	return Rect{
		X:      x,
		Y:      y,
		X2:     x + width,
		Y2:     y + height,
		Width:  width,
		Height: height,
		Centre: Point{x + width/2, y + height/2},
	}
}

// Area returns width * height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Contains reports whether the tile at (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X2 && y >= r.Y && y < r.Y2
}

// Intersects reports whether r and other overlap or touch.
// Rects that only share an edge count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X2 && r.X2 >= other.X && r.Y <= other.Y2 && r.Y2 >= other.Y
}

// CanMerge reports whether r and other share a full edge of equal length.
func (r Rect) CanMerge(other Rect) bool {
	sameCols := r.X == other.X && r.X2 == other.X2 && (r.Y == other.Y2 || r.Y2 == other.Y)
	sameRows := r.Y == other.Y && r.Y2 == other.Y2 && (r.X == other.X2 || r.X2 == other.X)
	return sameCols || sameRows
}

// Merge returns the union of r and other along their shared axis.
// It panics if the rects cannot be merged; check CanMerge first.
func (r Rect) Merge(other Rect) Rect {
	if !r.CanMerge(other) {
		panic(fmt.Sprintf("geom: cannot merge %v with %v", r, other))
	}
	x, y := min(r.X, other.X), min(r.Y, other.Y)
	x2, y2 := max(r.X2, other.X2), max(r.Y2, other.Y2)
	return NewRect(x, y, x2-x, y2-y)
}

// String returns the rect as "[x,y wxh]".
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.Width, r.Height)
}

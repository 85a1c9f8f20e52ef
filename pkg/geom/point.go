// Package geom provides integer grid geometry for level generation.
package geom

import "fmt"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Manhattan returns the taxicab distance to other.
func (p Point) Manhattan(other Point) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// Chebyshev returns the king-move distance to other.
func (p Point) Chebyshev(other Point) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

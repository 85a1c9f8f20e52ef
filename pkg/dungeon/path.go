package dungeon

import (
	"iter"
	"slices"

	astar "github.com/beefsack/go-astar"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// Directions: 8-way movement, straight moves first.
var directions = [8]geom.Point{
	{X: 0, Y: -1},  // N
	{X: 1, Y: 0},   // E
	{X: 0, Y: 1},   // S
	{X: -1, Y: 0},  // W
	{X: 1, Y: -1},  // NE
	{X: 1, Y: 1},   // SE
	{X: -1, Y: 1},  // SW
	{X: -1, Y: -1}, // NW
}

// neighbours yields the floor cells reachable from p in one move.
// A diagonal move needs both orthogonal cells beside it to be floor so
// paths never cut a solid corner.
func (l *Level) neighbours(p geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for _, d := range directions {
			q := p.Add(d)
			if !l.IsFloor(q.X, q.Y) {
				continue
			}
			if d.X != 0 && d.Y != 0 && (!l.IsFloor(p.X+d.X, p.Y) || !l.IsFloor(p.X, p.Y+d.Y)) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// pathNode adapts a level cell to astar.Pather.
type pathNode struct {
	level *Level
	p     geom.Point
}

func (n pathNode) PathNeighbors() []astar.Pather {
	var out []astar.Pather
	for q := range n.level.neighbours(n.p) {
		out = append(out, pathNode{level: n.level, p: q})
	}
	return out
}

// PathNeighborCost is uniform: diagonal steps cost the same as straight ones.
func (n pathNode) PathNeighborCost(astar.Pather) float64 {
	return 1
}

// PathEstimatedCost uses Chebyshev distance, exact on an open unit-cost
// 8-connected grid and therefore admissible.
func (n pathNode) PathEstimatedCost(to astar.Pather) float64 {
	return float64(n.p.Chebyshev(to.(pathNode).p))
}

// FindPath finds a shortest path from one floor cell to another.
// The returned path excludes from and ends at to; it is empty when
// from == to. Returns false if either end is not floor or no path exists.
// FindPath only reads the level and may run concurrently.
func (l *Level) FindPath(from, to geom.Point) ([]geom.Point, bool) {
	if !l.IsFloor(from.X, from.Y) || !l.IsFloor(to.X, to.Y) {
		return nil, false
	}
	if from == to {
		return []geom.Point{}, true
	}

	steps, _, found := astar.Path(pathNode{level: l, p: from}, pathNode{level: l, p: to})
	if !found || len(steps) == 0 {
		return nil, false
	}

	path := make([]geom.Point, 0, len(steps))
	for _, s := range steps {
		path = append(path, s.(pathNode).p)
	}
	// Orient start first regardless of how the solver orders its result
	if path[0] != from {
		slices.Reverse(path)
	}
	return path[1:], true
}

package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// Reachable returns every floor cell reachable from start using the same
// moves as FindPath. The set is empty if start is not floor.
func (l *Level) Reachable(start geom.Point) mapset.Set[geom.Point] {
	seen := mapset.New[geom.Point]()
	if !l.IsFloor(start.X, start.Y) {
		return seen
	}

	seen.Put(start)
	queue := []geom.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for q := range l.neighbours(p) {
			if seen.Has(q) {
				continue
			}
			seen.Put(q)
			queue = append(queue, q)
		}
	}
	return seen
}

// unreachableFloor counts floor tiles not connected to the player start.
func (l *Level) unreachableFloor() int {
	seen := l.Reachable(l.playerStart)
	n := 0
	for i := range l.tiles {
		if l.tiles[i].TileType.IsFloor() && !seen.Has(l.tiles[i].Position) {
			n++
		}
	}
	return n
}

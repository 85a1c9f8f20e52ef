package dungeon

import (
	"github.com/solarlune/resolv"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// SolidTag marks collision objects built from the level's shapes.
const SolidTag = "solid"

// CollisionSpace loads the collision shapes into a resolv space measured in
// sub-tile units, one unit per cell.
func (l *Level) CollisionSpace() *resolv.Space {
	space := resolv.NewSpace(int(l.width)*SubtileScale, int(l.height)*SubtileScale, 1, 1)
	for _, r := range l.collisionShapes {
		w, h := float64(r.Width), float64(r.Height)
		obj := resolv.NewObject(float64(r.X), float64(r.Y), w, h, SolidTag)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		space.Add(obj)
	}
	return space
}

// SubtileBlocked reports whether the sub-tile unit at p is covered by a
// solid object in space. It only reads the space's cells, so goroutines may
// probe a shared space as long as nothing adds or removes objects.
func SubtileBlocked(space *resolv.Space, p geom.Point) bool {
	return space.CheckCells(p.X, p.Y, 1, 1, SolidTag) != nil
}

// TileCentre returns the sub-tile unit at the middle of tile (x, y).
func TileCentre(x, y int) geom.Point {
	return geom.Point{X: x*SubtileScale + 1, Y: y*SubtileScale + 1}
}

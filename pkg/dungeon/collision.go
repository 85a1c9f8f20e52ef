package dungeon

import "github.com/Faultbox/dungeongen/pkg/geom"

// SubtileScale is the number of collision units per tile edge.
const SubtileScale = 3

// calculateCollisionShapes expands every tile into sub-tile rectangles and
// merges them into a smaller covering set.
func (l *Level) calculateCollisionShapes(passes int) {
	var rects []geom.Rect
	for x := 0; x < int(l.width); x++ {
		for y := 0; y < int(l.height); y++ {
			rects = appendTileShapes(rects, x, y, l.TileType(x, y), l.WallType(x, y))
		}
	}
	l.collisionShapes = reduceRects(rects, passes)
}

// appendTileShapes appends the solid parts of one tile in sub-tile units.
// A solid tile is one 3x3 block. The centre unit of a floor tile is never
// covered.
func appendTileShapes(dst []geom.Rect, x, y int, t TileType, w WallType) []geom.Rect {
	sx, sy := x*SubtileScale, y*SubtileScale

	if t == TileNothing {
		return append(dst, geom.NewRect(sx, sy, 3, 3))
	}

	switch w {
	case WallWest, WallWestInnerCorner:
		dst = append(dst, geom.NewRect(sx, sy, 1, 3))
	case WallEast, WallEastInnerCorner:
		dst = append(dst, geom.NewRect(sx+2, sy, 1, 3))
	case WallSouth:
		dst = append(dst, geom.NewRect(sx, sy, 3, 1))
	case WallSoutheast:
		dst = append(dst, geom.NewRect(sx, sy, 3, 1), geom.NewRect(sx+2, sy+1, 1, 2))
	case WallSouthwest:
		dst = append(dst, geom.NewRect(sx, sy, 3, 1), geom.NewRect(sx, sy+1, 1, 2))
	}
	return dst
}

// reduceRects runs greedy merge passes. passes <= 0 keeps going until a
// pass merges nothing.
func reduceRects(rects []geom.Rect, passes int) []geom.Rect {
	for pass := 0; passes <= 0 || pass < passes; pass++ {
		var n int
		rects, n = mergePass(rects)
		if n == 0 {
			break
		}
	}
	return rects
}

// mergePass merges each live rect with the first later rect it can absorb,
// at most once per rect, then drops the absorbed ones.
func mergePass(rects []geom.Rect) ([]geom.Rect, int) {
	merged := make([]bool, len(rects))
	n := 0
	for i := range rects {
		if merged[i] {
			continue
		}
		for j := i + 1; j < len(rects); j++ {
			if merged[j] || !rects[i].CanMerge(rects[j]) {
				continue
			}
			rects[i] = rects[i].Merge(rects[j])
			merged[j] = true
			n++
			break
		}
	}

	out := rects[:0]
	for i, r := range rects {
		if !merged[i] {
			out = append(out, r)
		}
	}
	return out, n
}

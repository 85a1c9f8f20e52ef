package dungeon

import "github.com/Faultbox/dungeongen/pkg/geom"

// levelFromRows builds a level from text rows: '.' is dirt, '>' is the exit,
// anything else is empty. Row 0 is y = 0.
func levelFromRows(rows ...string) *Level {
	l := newLevel(uint32(len(rows[0])), uint32(len(rows)))
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case '.':
				l.setTile(x, y, TileDirt)
			case '>':
				l.setTile(x, y, TileExit)
			}
		}
	}
	return l
}

func isStep(a, b geom.Point) bool {
	return a != b && a.Chebyshev(b) == 1
}

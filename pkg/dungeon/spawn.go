package dungeon

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// calculateSpawnPoints picks the start and exit rooms and scatters spawn
// points through the rooms between them.
//
// Rooms are ordered by centre row: the first is the start, the last holds
// the exit. With a single room both points share its centre and no spawn
// points are placed.
func (l *Level) calculateSpawnPoints(rng *rand.Rand, opts Options) {
	if len(l.rooms) == 0 {
		return
	}

	sorted := slices.Clone(l.rooms)
	slices.SortStableFunc(sorted, func(a, b geom.Rect) int {
		return cmp.Compare(a.Centre.Y, b.Centre.Y)
	})

	first, last := sorted[0], sorted[len(sorted)-1]
	l.playerStart = first.Centre
	l.exitPoint = last.Centre
	l.setTile(l.exitPoint.X, l.exitPoint.Y, TileExit)

	if len(sorted) < 3 {
		return
	}
	for _, room := range sorted[1 : len(sorted)-1] {
		l.scatterSpawns(rng, room, opts)
	}
}

func (l *Level) scatterSpawns(rng *rand.Rand, room geom.Rect, opts Options) {
	x0, x1 := room.X+opts.SpawnMargin, room.X2-opts.SpawnMargin
	y0, y1 := room.Y+opts.SpawnMargin, room.Y2-opts.SpawnMargin
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for range room.Area() {
		p := geom.Pt(x0+rng.IntN(x1-x0), y0+rng.IntN(y1-y0))
		if l.TileType(p.X, p.Y) != TileDirt {
			continue
		}
		tooClose := slices.ContainsFunc(l.spawnPoints, func(q geom.Point) bool {
			return q.Manhattan(p) <= opts.SpawnMinDistance
		})
		if tooClose {
			continue
		}
		l.spawnPoints = append(l.spawnPoints, p)
		l.tiles[l.index(p.X, p.Y)].IsSpawnPoint = true
	}
}

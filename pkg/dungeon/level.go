// Package dungeon generates tile-based dungeon levels: rooms, corridors,
// wall classification, collision shapes, spawn points and pathfinding.
package dungeon

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// Level is a generated dungeon. Its geometry is fixed once generation
// returns; only the per-tile Spawned flag changes afterwards.
type Level struct {
	width  uint32
	height uint32
	tiles  []LevelTile // row-major, index y*width+x

	rooms           []geom.Rect // placement order
	collisionShapes []geom.Rect // 3x sub-tile units
	spawnPoints     []geom.Point
	playerStart     geom.Point
	exitPoint       geom.Point

	mu sync.RWMutex // guards LevelTile.Spawned
}

func newLevel(width, height uint32) *Level {
	l := &Level{
		width:  width,
		height: height,
		tiles:  make([]LevelTile, int(width)*int(height)),
	}
	for i := range l.tiles {
		l.tiles[i].Position = geom.Point{X: i % int(width), Y: i / int(width)}
	}
	return l
}

// Width returns the grid width in tiles.
func (l *Level) Width() uint32 { return l.width }

// Height returns the grid height in tiles.
func (l *Level) Height() uint32 { return l.height }

// InBounds reports whether (x, y) is a cell of the grid.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(l.width) && y < int(l.height)
}

// index panics on out-of-bounds coordinates; callers that probe neighbours
// go through TileType/WallType instead.
func (l *Level) index(x, y int) int {
	if !l.InBounds(x, y) {
		panic(fmt.Sprintf("dungeon: cell (%d,%d) outside %dx%d grid", x, y, l.width, l.height))
	}
	return y*int(l.width) + x
}

// TileType returns the tile type at (x, y), or TileNothing outside the grid.
func (l *Level) TileType(x, y int) TileType {
	if !l.InBounds(x, y) {
		return TileNothing
	}
	return l.tiles[y*int(l.width)+x].TileType
}

// WallType returns the wall type at (x, y), or WallNothing outside the grid.
func (l *Level) WallType(x, y int) WallType {
	if !l.InBounds(x, y) {
		return WallNothing
	}
	return l.tiles[y*int(l.width)+x].WallType
}

// IsFloor reports whether (x, y) is a walkable tile.
func (l *Level) IsFloor(x, y int) bool {
	return l.TileType(x, y).IsFloor()
}

// Tile returns a copy of the tile at (x, y).
// Returns false if the coordinates are outside the grid.
func (l *Level) Tile(x, y int) (LevelTile, bool) {
	if !l.InBounds(x, y) {
		return LevelTile{Position: geom.Point{X: x, Y: y}}, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tiles[y*int(l.width)+x], true
}

func (l *Level) setTile(x, y int, t TileType) {
	l.tiles[l.index(x, y)].TileType = t
}

func (l *Level) setWall(x, y int, w WallType) {
	l.tiles[l.index(x, y)].WallType = w
}

// Rooms returns the placed rooms in placement order.
func (l *Level) Rooms() []geom.Rect {
	return slices.Clone(l.rooms)
}

// CollisionShapes returns the reduced collision rectangles in 3x sub-tile
// units. Divide by 3 and multiply by the tile size to get world units.
func (l *Level) CollisionShapes() []geom.Rect {
	return slices.Clone(l.collisionShapes)
}

// PlayerStart returns the centre of the lowest room.
func (l *Level) PlayerStart() geom.Point { return l.playerStart }

// ExitPoint returns the position of the single Exit tile.
func (l *Level) ExitPoint() geom.Point { return l.exitPoint }

// Tiles iterates every tile in row-major order.
func (l *Level) Tiles() iter.Seq[LevelTile] {
	return func(yield func(LevelTile) bool) {
		for i := range l.tiles {
			l.mu.RLock()
			t := l.tiles[i]
			l.mu.RUnlock()
			if !yield(t) {
				return
			}
		}
	}
}

// SpawnPoints iterates the spawn-point tiles in placement order.
func (l *Level) SpawnPoints() iter.Seq[LevelTile] {
	return func(yield func(LevelTile) bool) {
		for _, p := range l.spawnPoints {
			t, _ := l.Tile(p.X, p.Y)
			if !yield(t) {
				return
			}
		}
	}
}

// SpawnPointCount returns the number of spawn points.
func (l *Level) SpawnPointCount() int {
	return len(l.spawnPoints)
}

// SetSpawned marks whether an enemy occupies the spawn point at p.
// Returns false if p is not a spawn point.
func (l *Level) SetSpawned(p geom.Point, spawned bool) bool {
	if !l.InBounds(p.X, p.Y) {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	t := &l.tiles[p.Y*int(l.width)+p.X]
	if !t.IsSpawnPoint {
		return false
	}
	t.Spawned = spawned
	return true
}

// CountTiles returns how many tiles have the given type.
func (l *Level) CountTiles(t TileType) int {
	n := 0
	for i := range l.tiles {
		if l.tiles[i].TileType == t {
			n++
		}
	}
	return n
}

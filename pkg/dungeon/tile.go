package dungeon

import (
	"fmt"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// TileType is the floor classification of a grid cell.
type TileType uint8

// Tile type constants.
const (
	TileNothing TileType = 0 // Solid, not walkable
	TileDirt    TileType = 1 // Floor
	TileExit    TileType = 2 // Floor holding the level exit
)

// String returns a human-readable tile type name.
func (t TileType) String() string {
	switch t {
	case TileNothing:
		return "Nothing"
	case TileDirt:
		return "Dirt"
	case TileExit:
		return "Exit"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// IsFloor returns true if the tile can be walked on.
func (t TileType) IsFloor() bool {
	return t == TileDirt || t == TileExit
}

// WallType is the boundary classification of a cell, derived from the
// floor/empty pattern around it. Decreasing y is north.
type WallType uint8

// Wall type constants.
const (
	WallNothing WallType = iota
	WallNorth
	WallSouth
	WallEast
	WallEastInnerCorner
	WallWest
	WallWestInnerCorner
	WallNortheast
	WallNorthwest
	WallSoutheast
	WallSouthwest
)

var wallNames = [...]string{
	WallNothing:         "Nothing",
	WallNorth:           "North",
	WallSouth:           "South",
	WallEast:            "East",
	WallEastInnerCorner: "EastInnerCorner",
	WallWest:            "West",
	WallWestInnerCorner: "WestInnerCorner",
	WallNortheast:       "Northeast",
	WallNorthwest:       "Northwest",
	WallSoutheast:       "Southeast",
	WallSouthwest:       "Southwest",
}

// String returns a human-readable wall type name.
func (w WallType) String() string {
	if int(w) < len(wallNames) {
		return wallNames[w]
	}
	return fmt.Sprintf("Unknown(%d)", w)
}

// LevelTile is the per-cell record of a level.
type LevelTile struct {
	Position     geom.Point
	TileType     TileType
	WallType     WallType
	IsSpawnPoint bool
	// Spawned marks a spawn point currently occupied by an enemy.
	// Gameplay code owns it; the generator never sets it.
	Spawned bool
}

package dungeon

// calculateWalls classifies every cell from the tile types around it.
// Only tile types are read, so scan order does not matter.
func (l *Level) calculateWalls() {
	for x := 0; x < int(l.width); x++ {
		for y := 0; y < int(l.height); y++ {
			l.setWall(x, y, l.classifyWall(x, y))
		}
	}
}

func (l *Level) classifyWall(x, y int) WallType {
	empty := func(x, y int) bool { return l.TileType(x, y) == TileNothing }

	if empty(x, y) {
		if empty(x, y-1) {
			return WallNothing
		}
		switch {
		case empty(x-1, y-1):
			return WallNorthwest
		case empty(x+1, y-1):
			return WallNortheast
		default:
			return WallNorth
		}
	}

	switch {
	case empty(x-1, y):
		switch {
		case empty(x, y-1):
			return WallSouthwest
		case !empty(x-1, y-1):
			return WallWestInnerCorner
		default:
			return WallWest
		}
	case empty(x+1, y):
		switch {
		case empty(x, y-1):
			return WallSoutheast
		case !empty(x+1, y-1):
			return WallEastInnerCorner
		default:
			return WallEast
		}
	case empty(x, y-1):
		return WallSouth
	}
	return WallNothing
}

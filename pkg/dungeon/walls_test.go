package dungeon

import "testing"

func TestCalculateWalls(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		x, y int
		want WallType
	}{
		{"north", []string{"     ", " ... ", " ... ", "     "}, 2, 3, WallNorth},
		{"northwest", []string{"     ", " ... ", " ... ", "     "}, 1, 3, WallNorthwest},
		{"northeast", []string{"     ", " ... ", " ... ", "     "}, 3, 3, WallNortheast},
		{"empty corner", []string{"     ", " ... ", " ... ", "     "}, 0, 3, WallNothing},
		{"southwest", []string{"     ", " ... ", " ... ", "     "}, 1, 1, WallSouthwest},
		{"west", []string{"     ", " ... ", " ... ", "     "}, 1, 2, WallWest},
		{"southeast", []string{"     ", " ... ", " ... ", "     "}, 3, 1, WallSoutheast},
		{"east", []string{"     ", " ... ", " ... ", "     "}, 3, 2, WallEast},
		{"south", []string{"     ", " ... ", " ... ", "     "}, 2, 1, WallSouth},
		{"interior", []string{"     ", " ... ", " ... ", "     "}, 2, 2, WallNothing},
		{"far from floor", []string{"     ", " ... ", " ... ", "     "}, 0, 0, WallNothing},
		{"east inner corner", []string{"....", "..  "}, 1, 1, WallEastInnerCorner},
		{"west inner corner", []string{"....", "  .."}, 2, 1, WallWestInnerCorner},
		{"north under inner corner", []string{"....", "  .."}, 1, 1, WallNorth},
		{"grid edge west", []string{"....", "..  "}, 0, 1, WallWest},
		{"grid edge northeast", []string{"....", "..  "}, 3, 1, WallNortheast},
		{"exit counts as floor", []string{"   ", " > ", "   "}, 1, 2, WallNorthwest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := levelFromRows(tt.rows...)
			l.calculateWalls()
			if got := l.WallType(tt.x, tt.y); got != tt.want {
				t.Errorf("WallType(%d,%d) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCalculateWalls_OnlyBesideFloor(t *testing.T) {
	l := GenerateFromSeedString("walls", 96, 48)
	for tile := range l.Tiles() {
		if tile.TileType != TileNothing || tile.WallType == WallNothing {
			continue
		}
		x, y := tile.Position.X, tile.Position.Y
		if !l.IsFloor(x, y-1) {
			t.Fatalf("wall %s at %v has no floor to the north", tile.WallType, tile.Position)
		}
	}
}

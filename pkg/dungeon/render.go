package dungeon

import "strings"

// Render draws the level as text, one row per line:
//
//	' ' empty   '#' wall   '.' floor   '>' exit   '@' start   'e' spawn point
func (l *Level) Render() string {
	var b strings.Builder
	b.Grow(int(l.width+1) * int(l.height))

	for y := 0; y < int(l.height); y++ {
		for x := 0; x < int(l.width); x++ {
			b.WriteByte(l.glyph(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Level) glyph(x, y int) byte {
	t := &l.tiles[y*int(l.width)+x]
	switch {
	case t.Position == l.playerStart && t.TileType.IsFloor():
		return '@'
	case t.TileType == TileExit:
		return '>'
	case t.IsSpawnPoint:
		return 'e'
	case t.TileType == TileDirt:
		return '.'
	case t.WallType != WallNothing:
		return '#'
	default:
		return ' '
	}
}

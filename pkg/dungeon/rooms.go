package dungeon

import (
	"math/rand/v2"
	"slices"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// placeRooms tries opts.MaxRooms random rooms and keeps those that do not
// touch an already placed room. Rejected candidates are not retried.
func (l *Level) placeRooms(rng *rand.Rand, opts Options) {
	w, h := int(l.width), int(l.height)
	span := opts.MaxRoomSize - opts.MinRoomSize + 1

	for range opts.MaxRooms {
		x := rng.IntN(w)
		y := rng.IntN(h - 1)
		rw := min(opts.MinRoomSize+rng.IntN(span), w)
		rh := min(opts.MinRoomSize+rng.IntN(span), h-1)

		// Shift back onto the board
		if x+rw > w {
			x = w - rw
		}
		if y+rh > h {
			y = h - rh - 1
		}

		room := geom.NewRect(x, y, rw, rh)
		if slices.ContainsFunc(l.rooms, room.Intersects) {
			continue
		}
		l.addRoom(room)
	}
}

func (l *Level) addRoom(room geom.Rect) {
	for y := room.Y; y < room.Y2; y++ {
		for x := room.X; x < room.X2; x++ {
			l.setTile(x, y, TileDirt)
		}
	}
	l.rooms = append(l.rooms, room)
}

// placeCorridors joins each room to the next one in placement order with a
// three tile wide L-shaped corridor between their centres.
func (l *Level) placeCorridors(rng *rand.Rand) {
	for i := 1; i < len(l.rooms); i++ {
		a, b := l.rooms[i-1].Centre, l.rooms[i].Centre
		if rng.IntN(2) == 0 {
			l.horzCorridor(a.X, b.X, a.Y)
			l.vertCorridor(a.Y, b.Y, b.X)
		} else {
			l.vertCorridor(a.Y, b.Y, a.X)
			l.horzCorridor(a.X, b.X, b.Y)
		}
	}
}

func (l *Level) horzCorridor(x1, x2, y int) {
	for row := y - 1; row <= y+1; row++ {
		for col := min(x1, x2); col <= max(x1, x2); col++ {
			l.carve(col, row)
		}
	}
}

func (l *Level) vertCorridor(y1, y2, x int) {
	for col := x - 1; col <= x+1; col++ {
		for row := min(y1, y2); row <= max(y1, y2); row++ {
			l.carve(col, row)
		}
	}
}

// carve turns (x, y) into floor. Corridor edges that fall off the grid are
// skipped.
func (l *Level) carve(x, y int) {
	if l.InBounds(x, y) {
		l.setTile(x, y, TileDirt)
	}
}

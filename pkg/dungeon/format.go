package dungeon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/dungeongen/pkg/geom"
)

// Level file errors.
var (
	ErrInvalidLevelMagic       = errors.New("invalid level magic: expected 'DLVL'")
	ErrUnsupportedLevelVersion = errors.New("unsupported level version")
	ErrTruncatedLevelData      = errors.New("truncated level data")
)

const (
	levelMagic        = "DLVL"
	levelVersionMajor = 1
	levelVersionMinor = 0

	// Tile flag bits
	flagSpawnPoint = 1 << 0
)

// Encode serializes the level geometry and spawn points.
// The runtime Spawned flags are not stored.
func (l *Level) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.Grow(14 + len(l.tiles)*3 + (len(l.rooms)+len(l.collisionShapes))*16 + 24)

	buf.WriteString(levelMagic)
	buf.WriteByte(levelVersionMinor)
	buf.WriteByte(levelVersionMajor)

	// bytes.Buffer writes never fail
	_ = binary.Write(buf, binary.LittleEndian, l.width)
	_ = binary.Write(buf, binary.LittleEndian, l.height)

	for i := range l.tiles {
		t := &l.tiles[i]
		var flags byte
		if t.IsSpawnPoint {
			flags |= flagSpawnPoint
		}
		buf.Write([]byte{byte(t.TileType), byte(t.WallType), flags})
	}

	writeRects(buf, l.rooms)
	writeRects(buf, l.collisionShapes)
	writePoint(buf, l.playerStart)
	writePoint(buf, l.exitPoint)

	return buf.Bytes()
}

func writeRects(buf *bytes.Buffer, rects []geom.Rect) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(rects)))
	for _, r := range rects {
		_ = binary.Write(buf, binary.LittleEndian, [4]int32{int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)})
	}
}

func writePoint(buf *bytes.Buffer, p geom.Point) {
	_ = binary.Write(buf, binary.LittleEndian, [2]int32{int32(p.X), int32(p.Y)})
}

// ParseLevel parses a level from raw bytes.
func ParseLevel(data []byte) (*Level, error) {
	if len(data) < 14 {
		return nil, ErrTruncatedLevelData
	}

	if string(data[0:4]) != levelMagic {
		return nil, ErrInvalidLevelMagic
	}

	// Version is stored as [minor, major]
	major, minor := data[5], data[4]
	if major != levelVersionMajor {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedLevelVersion, major, minor)
	}

	r := bytes.NewReader(data[6:])

	var width, height uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: reading width", ErrTruncatedLevelData)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: reading height", ErrTruncatedLevelData)
	}
	if width < MinWidth || height < MinHeight || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", width, height)
	}

	if r.Len() < int(width)*int(height)*3 {
		return nil, fmt.Errorf("%w: reading tiles", ErrTruncatedLevelData)
	}

	l := newLevel(width, height)

	cell := make([]byte, 3)
	for i := range l.tiles {
		if _, err := io.ReadFull(r, cell); err != nil {
			return nil, fmt.Errorf("%w: reading tile %d", ErrTruncatedLevelData, i)
		}
		t := &l.tiles[i]
		t.TileType = TileType(cell[0])
		t.WallType = WallType(cell[1])
		t.IsSpawnPoint = cell[2]&flagSpawnPoint != 0
		if t.TileType > TileExit || t.WallType > WallSouthwest {
			return nil, fmt.Errorf("invalid tile %d: type %d wall %d", i, cell[0], cell[1])
		}
		if t.IsSpawnPoint {
			l.spawnPoints = append(l.spawnPoints, t.Position)
		}
	}

	var err error
	if l.rooms, err = readRects(r, "rooms"); err != nil {
		return nil, err
	}
	if l.collisionShapes, err = readRects(r, "collision shapes"); err != nil {
		return nil, err
	}
	if l.playerStart, err = readPoint(r, "player start"); err != nil {
		return nil, err
	}
	if l.exitPoint, err = readPoint(r, "exit point"); err != nil {
		return nil, err
	}

	return l, nil
}

func readRects(r *bytes.Reader, what string) ([]geom.Rect, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading %s count", ErrTruncatedLevelData, what)
	}
	// Each rect takes 16 bytes; reject counts the data cannot hold
	if int64(count)*16 > int64(r.Len()) {
		return nil, fmt.Errorf("%w: %d %s", ErrTruncatedLevelData, count, what)
	}

	rects := make([]geom.Rect, 0, count)
	for i := uint32(0); i < count; i++ {
		var v [4]int32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, fmt.Errorf("%w: reading %s %d", ErrTruncatedLevelData, what, i)
		}
		rects = append(rects, geom.NewRect(int(v[0]), int(v[1]), int(v[2]), int(v[3])))
	}
	return rects, nil
}

func readPoint(r *bytes.Reader, what string) (geom.Point, error) {
	var v [2]int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return geom.Point{}, fmt.Errorf("%w: reading %s", ErrTruncatedLevelData, what)
	}
	return geom.Point{X: int(v[0]), Y: int(v[1])}, nil
}

// ParseLevelFile parses a level file from disk.
func ParseLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level file: %w", err)
	}
	return ParseLevel(data)
}

// WriteFile encodes the level to path.
func (l *Level) WriteFile(path string) error {
	if err := os.WriteFile(path, l.Encode(), 0644); err != nil {
		return fmt.Errorf("writing level file: %w", err)
	}
	return nil
}

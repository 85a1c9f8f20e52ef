package dungeon

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	mrand "math/rand/v2"

	"go.uber.org/zap"
)

// Grid dimensions accepted by the generator and the level codec.
const (
	MinWidth     = 3
	MinHeight    = 3
	MaxDimension = 4096
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid generator options")

// Options tunes the generation pipeline.
type Options struct {
	MaxRooms         int // Room candidates tried; colliding ones are dropped
	MinRoomSize      int // Inclusive lower bound for room width and height
	MaxRoomSize      int // Inclusive upper bound for room width and height
	SpawnMargin      int // Border kept free of spawn points inside a room
	SpawnMinDistance int // Spawn points closer than this (Manhattan) are rejected
	MergePasses      int // Collision merge passes; 0 repeats until nothing merges
}

// DefaultOptions returns the standard generation settings.
func DefaultOptions() Options {
	return Options{
		MaxRooms:         20,
		MinRoomSize:      8,
		MaxRoomSize:      20,
		SpawnMargin:      2,
		SpawnMinDistance: 2,
		MergePasses:      0,
	}
}

// Validate checks that the options describe a usable generator.
func (o Options) Validate() error {
	switch {
	case o.MaxRooms < 1:
		return fmt.Errorf("%w: max rooms %d < 1", ErrInvalidOptions, o.MaxRooms)
	case o.MinRoomSize < 1:
		return fmt.Errorf("%w: min room size %d < 1", ErrInvalidOptions, o.MinRoomSize)
	case o.MaxRoomSize < o.MinRoomSize:
		return fmt.Errorf("%w: max room size %d < min room size %d", ErrInvalidOptions, o.MaxRoomSize, o.MinRoomSize)
	case o.SpawnMargin < 0:
		return fmt.Errorf("%w: negative spawn margin", ErrInvalidOptions)
	case o.SpawnMinDistance < 0:
		return fmt.Errorf("%w: negative spawn distance", ErrInvalidOptions)
	case o.MergePasses < 0:
		return fmt.Errorf("%w: negative merge passes", ErrInvalidOptions)
	}
	return nil
}

// Generator builds levels with a fixed set of options.
// A Generator holds no random state and is safe for concurrent use.
type Generator struct {
	opts Options
	log  *zap.Logger
}

// NewGenerator creates a generator after validating opts.
func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{opts: opts, log: zap.NewNop()}, nil
}

// WithLogger returns a copy of g that logs pipeline progress to log.
func (g *Generator) WithLogger(log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{opts: g.opts, log: log}
}

// Options returns the generator settings.
func (g *Generator) Options() Options {
	return g.opts
}

var defaultGenerator = &Generator{opts: DefaultOptions(), log: zap.NewNop()}

// SeedFromString derives a 32-byte seed from the SHA-256 digest of s.
func SeedFromString(s string) [32]byte {
	return sha256.Sum256([]byte(s))
}

// RandomSeed returns a seed drawn from the OS entropy source.
func RandomSeed() [32]byte {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic("dungeon: failed to read random seed: " + err.Error())
	}
	return seed
}

// GenerateFromSeedBytes generates a level with the default options.
// The same seed and dimensions always produce the same level.
func GenerateFromSeedBytes(seed [32]byte, width, height uint32) *Level {
	return defaultGenerator.FromSeedBytes(seed, width, height)
}

// GenerateFromSeedString generates a level seeded by the hash of seed.
func GenerateFromSeedString(seed string, width, height uint32) *Level {
	return defaultGenerator.FromSeedString(seed, width, height)
}

// GenerateRandom generates a non-reproducible level.
func GenerateRandom(width, height uint32) *Level {
	return defaultGenerator.Random(width, height)
}

// FromSeedString generates a level seeded by the hash of seed.
func (g *Generator) FromSeedString(seed string, width, height uint32) *Level {
	return g.FromSeedBytes(SeedFromString(seed), width, height)
}

// Random generates a level from a fresh entropy seed.
func (g *Generator) Random(width, height uint32) *Level {
	return g.FromSeedBytes(RandomSeed(), width, height)
}

// FromSeedBytes runs the full pipeline: rooms, corridors, walls, collision
// shapes and spawn points. It panics if width < MinWidth or
// height < MinHeight.
func (g *Generator) FromSeedBytes(seed [32]byte, width, height uint32) *Level {
	if width < MinWidth || height < MinHeight {
		panic(fmt.Sprintf("dungeon: level size %dx%d below minimum %dx%d", width, height, MinWidth, MinHeight))
	}

	rng := mrand.New(mrand.NewChaCha8(seed))
	l := newLevel(width, height)

	l.placeRooms(rng, g.opts)
	l.placeCorridors(rng)
	g.log.Debug("rooms placed",
		zap.Int("rooms", len(l.rooms)),
		zap.Int("candidates", g.opts.MaxRooms))

	l.calculateWalls()
	l.calculateCollisionShapes(g.opts.MergePasses)
	g.log.Debug("collision shapes reduced", zap.Int("shapes", len(l.collisionShapes)))

	l.calculateSpawnPoints(rng, g.opts)

	if n := l.unreachableFloor(); n > 0 {
		g.log.Warn("floor tiles unreachable from start",
			zap.Int("tiles", n),
			zap.Stringer("start", l.playerStart))
	}

	g.log.Debug("level generated",
		zap.Uint32("width", width),
		zap.Uint32("height", height),
		zap.Int("spawn_points", len(l.spawnPoints)),
		zap.Stringer("start", l.playerStart),
		zap.Stringer("exit", l.exitPoint))
	return l
}

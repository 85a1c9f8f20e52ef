// dungeongen is a CLI for generating, inspecting and archiving dungeon levels.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/dungeongen/internal/config"
	"github.com/Faultbox/dungeongen/internal/logger"
	"github.com/Faultbox/dungeongen/internal/store"
	"github.com/Faultbox/dungeongen/pkg/dungeon"
	"github.com/Faultbox/dungeongen/pkg/geom"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := logger.Options{Level: cfg.Logging.Level, Console: true, JSON: cfg.Logging.JSON}
	if cfg.Logging.LogFile != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithOptions(opts); err != nil {
		logger.Warn("unknown log level, using info", zap.String("level", cfg.Logging.Level))
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "generate", "gen":
		err = cmdGenerate(cfg)
	case "info":
		err = cmdInfo(cfg)
	case "path":
		err = cmdPath(cfg, args)
	case "export":
		err = cmdExport(cfg, args)
	case "inspect":
		err = cmdInspect(args)
	case "save":
		err = cmdSave(cfg, args)
	case "load":
		err = cmdLoad(cfg, args)
	case "list", "ls":
		err = cmdList(cfg)
	case "delete", "rm":
		err = cmdDelete(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dungeongen - procedural dungeon level generator

Usage:
  dungeongen [flags] <command> [args]

Commands:
  generate                   Print the level as ASCII
  info                       Show rooms, shapes and spawn points
  path <x1> <y1> <x2> <y2>   Find a path between two floor tiles
  export <file>              Write the level in DLVL format
  inspect <file>             Summarise a DLVL file
  save <name>                Store the level in the archive
  load <name>                Print a level from the archive
  list                       List archived levels
  delete <name>              Remove a level from the archive

Flags:
  -config <file>   Config file (default ./dungeongen.yaml)
  -seed <string>   Level seed (random when empty)
  -width <n>       Level width in tiles
  -height <n>      Level height in tiles
  -debug           Debug logging
  -log-file <file> Also log to a rotated file
  -json-logs       Log as JSON

Examples:
  dungeongen -seed test-seed-1 generate
  dungeongen -seed crypt -width 64 -height 32 path 10 5 40 20
  dungeongen -seed crypt save crypt`)
}

// generate builds the level described by cfg. The returned seed is the
// configured string, or the hex of the random seed when none is set.
func generate(cfg *config.Config) (*dungeon.Level, string, error) {
	gen, err := dungeon.NewGenerator(cfg.Generator.Options())
	if err != nil {
		return nil, "", err
	}
	gen = gen.WithLogger(logger.Named("generator"))

	g := cfg.Generator
	if g.Seed != "" {
		return gen.FromSeedString(g.Seed, g.Width, g.Height), g.Seed, nil
	}

	seed := dungeon.RandomSeed()
	seedHex := hex.EncodeToString(seed[:])
	logger.Info("generating random level", zap.String("seed", seedHex))
	return gen.FromSeedBytes(seed, g.Width, g.Height), seedHex, nil
}

func cmdGenerate(cfg *config.Config) error {
	level, _, err := generate(cfg)
	if err != nil {
		return err
	}
	fmt.Print(level.Render())
	return nil
}

func cmdInfo(cfg *config.Config) error {
	level, seed, err := generate(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Seed:   %s\n", seed)
	printSummary(level)
	return nil
}

func printSummary(level *dungeon.Level) {
	rooms := level.Rooms()
	shapes := level.CollisionShapes()
	space := level.CollisionSpace()
	reachable := level.Reachable(level.PlayerStart())

	floor := level.CountTiles(dungeon.TileDirt) + level.CountTiles(dungeon.TileExit)

	fmt.Printf("Size:   %dx%d\n", level.Width(), level.Height())
	fmt.Printf("Rooms:  %d\n", len(rooms))
	fmt.Printf("Floor:  %d tiles (%d reachable)\n", floor, reachable.Size())
	fmt.Printf("Shapes: %d (%d space objects)\n", len(shapes), len(space.Objects()))
	fmt.Printf("Spawns: %d\n", level.SpawnPointCount())
	fmt.Printf("Start:  %s\n", level.PlayerStart())
	fmt.Printf("Exit:   %s\n", level.ExitPoint())
	fmt.Println()
	fmt.Println("Rooms:")
	for i, r := range rooms {
		fmt.Printf("  %2d  %s\n", i, r)
	}
}

func cmdPath(cfg *config.Config, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: dungeongen path <x1> <y1> <x2> <y2>")
	}

	coords := make([]int, 4)
	for i, a := range args[:4] {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		coords[i] = v
	}
	from, to := geom.Pt(coords[0], coords[1]), geom.Pt(coords[2], coords[3])

	level, _, err := generate(cfg)
	if err != nil {
		return err
	}

	path, ok := level.FindPath(from, to)
	if !ok {
		fmt.Printf("No path from %s to %s\n", from, to)
		return nil
	}

	steps := make([]string, len(path))
	for i, p := range path {
		steps[i] = p.String()
	}
	fmt.Printf("Path %s -> %s: %d steps\n", from, to, len(path))
	if len(steps) > 0 {
		fmt.Println(strings.Join(steps, " "))
	}
	return nil
}

func cmdExport(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: dungeongen export <file>")
	}

	level, seed, err := generate(cfg)
	if err != nil {
		return err
	}
	if err := level.WriteFile(args[0]); err != nil {
		return err
	}
	logger.Info("level exported", zap.String("file", args[0]), zap.String("seed", seed))
	return nil
}

func cmdInspect(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: dungeongen inspect <file>")
	}

	level, err := dungeon.ParseLevelFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("File:   %s\n", args[0])
	printSummary(level)
	return nil
}

func openArchive(cfg *config.Config) (*store.Archive, error) {
	return store.Open(cfg.Store.AppName)
}

func cmdSave(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: dungeongen save <name>")
	}

	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	level, seed, err := generate(cfg)
	if err != nil {
		return err
	}
	if err := archive.Save(args[0], level, store.Entry{Seed: seed}); err != nil {
		return err
	}
	logger.Info("level saved", zap.String("name", args[0]), zap.String("seed", seed))
	return nil
}

func cmdLoad(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: dungeongen load <name>")
	}

	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	level, err := archive.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Print(level.Render())
	return nil
}

func cmdList(cfg *config.Config) error {
	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	entries, err := archive.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No saved levels")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("  %-20s %4dx%-4d %3d rooms  %s  %s\n",
			e.Name, e.Width, e.Height, e.Rooms, e.SavedAt.Format("2006-01-02 15:04"), e.Seed)
	}
	return nil
}

func cmdDelete(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: dungeongen delete <name>")
	}

	archive, err := openArchive(cfg)
	if err != nil {
		return err
	}
	return archive.Delete(args[0])
}

package config

import (
	"flag"
	"fmt"

	"github.com/Faultbox/dungeongen/pkg/dungeon"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagSeed     = flag.String("seed", "", "Level seed (empty for random)")
	flagWidth    = flag.Uint("width", 0, "Level width in tiles")
	flagHeight   = flag.Uint("height", 0, "Level height in tiles")
	flagLogFile  = flag.String("log-file", "", "Also write logs to this file")
	flagJSONLogs = flag.Bool("json-logs", false, "Write logs as JSON")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
// Sizes that do not fit a level are rejected before they are narrowed.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != "" {
		cfg.Generator.Seed = *flagSeed
	}
	if *flagWidth > dungeon.MaxDimension || *flagHeight > dungeon.MaxDimension {
		return fmt.Errorf("%w: -width %d -height %d exceed %d",
			ErrInvalidConfig, *flagWidth, *flagHeight, dungeon.MaxDimension)
	}
	if *flagWidth > 0 {
		cfg.Generator.Width = uint32(*flagWidth)
	}
	if *flagHeight > 0 {
		cfg.Generator.Height = uint32(*flagHeight)
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagJSONLogs {
		cfg.Logging.JSON = true
	}
	return nil
}

package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagResolution = flag.Int("resolution", 0, "Vertices per chunk edge")
	flagScale      = flag.Float64("scale", 0, "Vertex spacing")
	flagWorldX     = flag.Float64("world-x", 0, "World size along X")
	flagWorldY     = flag.Float64("world-y", 0, "World size along Y")
	flagFlat       = flag.Bool("flat", false, "Disable noise (height multiplier 0)")
	flagLogFile    = flag.String("log-file", "", "Write logs to a rotating file")
)

// seedFlag remembers whether --seed was given, so an explicit 0 still
// overrides the configured seed.
type seedFlag struct {
	value int64
	set   bool
}

func (s *seedFlag) String() string {
	return strconv.FormatInt(s.value, 10)
}

func (s *seedFlag) Set(v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	s.value, s.set = n, true
	return nil
}

var flagSeed = &seedFlag{}

func init() {
	flag.Var(flagSeed, "seed", "Noise seed (overrides the configured seed when given)")
}

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
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if flagSeed.set {
		cfg.Terrain.Seed = flagSeed.value
	}
	if *flagResolution > 0 {
		cfg.Terrain.ChunkResolution = *flagResolution
	}
	if *flagScale > 0 {
		cfg.Terrain.Scale = float32(*flagScale)
	}
	if *flagWorldX > 0 {
		cfg.Terrain.WorldSizeX = float32(*flagWorldX)
	}
	if *flagWorldY > 0 {
		cfg.Terrain.WorldSizeY = float32(*flagWorldY)
	}
	if *flagFlat {
		cfg.Terrain.HeightMultiplier = 0
	}
}

// terrainctl generates procedural terrain in memory and applies digs to it.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/logger"
	"github.com/Faultbox/midgard-terrain/pkg/math"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.InitWithFileConfig(cfg.Logging.Level, cfg.Logging.FileConfig(), true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(os.Stdout, cfg, args[0], args[1:]); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `terrainctl - procedural terrain utility

Usage:
  terrainctl [flags] <command> [args]

Commands:
  info                              Show chunk layout for the configuration
  generate                          Generate terrain and report height range
  dig <x> <y> [radius] [strength]   Generate, dig at world (x,y), report sections
  sample <x> <y>                    Print the procedural height at world (x,y)
  save-config <path>                Write the effective configuration as YAML

Flags:
  --config <file>   --seed <n>   --resolution <n>   --scale <f>
  --world-x <f>     --world-y <f>   --flat   --debug   --log-file <file>`)
}

func run(w io.Writer, cfg *config.Config, command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(w, cfg)
	case "generate", "gen":
		return cmdGenerate(w, cfg)
	case "dig":
		return cmdDig(w, cfg, args)
	case "sample":
		return cmdSample(w, cfg, args)
	case "save-config":
		return cmdSaveConfig(w, cfg, args)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		printUsage(w)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func generate(cfg *config.Config) (*terrain.Grid, *terrain.SectionStore, error) {
	store := terrain.NewSectionStore()
	grid := terrain.NewGrid(store)
	if err := grid.Generate(cfg.TerrainSettings(), nil); err != nil {
		return nil, nil, err
	}
	return grid, store, nil
}

func cmdInfo(w io.Writer, cfg *config.Config) error {
	t := cfg.TerrainSettings()
	if err := t.Validate(); err != nil {
		return err
	}

	size := t.ChunkWorldSize()
	nx, ny := t.ChunkCounts()
	res := t.ChunkResolution

	fmt.Fprintf(w, "World:      %.1f x %.1f\n", t.WorldSizeX, t.WorldSizeY)
	fmt.Fprintf(w, "Chunk size: %.1f (%d vertices per edge)\n", size, res)
	fmt.Fprintf(w, "Chunks:     %d x %d = %d\n", nx, ny, nx*ny)
	fmt.Fprintf(w, "Covered:    %.1f x %.1f\n", float32(nx)*size, float32(ny)*size)
	fmt.Fprintf(w, "Vertices:   %d per chunk, %d total\n", res*res, nx*ny*res*res)
	fmt.Fprintf(w, "Triangles:  %d per chunk\n", 2*(res-1)*(res-1))
	return nil
}

func cmdGenerate(w io.Writer, cfg *config.Config) error {
	grid, store, err := generate(cfg)
	if err != nil {
		return err
	}

	lo, hi := heightRange(grid)
	nx, ny := grid.ChunkCount()
	fmt.Fprintf(w, "Chunks:   %d x %d\n", nx, ny)
	fmt.Fprintf(w, "Sections: %d\n", store.Len())
	fmt.Fprintf(w, "Height:   %.3f .. %.3f\n", lo, hi)
	return nil
}

func cmdDig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: terrainctl dig <x> <y> [radius] [strength]")
	}
	vals, err := parseFloats(args)
	if err != nil {
		return err
	}

	radius, strength := cfg.Dig.Radius, cfg.Dig.Strength
	if len(vals) > 2 {
		radius = vals[2]
	}
	if len(vals) > 3 {
		strength = vals[3]
	}

	grid, store, err := generate(cfg)
	if err != nil {
		return err
	}

	at := math.Vec3{X: vals[0], Y: vals[1]}
	result := grid.Modify(at, radius, strength)

	fmt.Fprintf(w, "Dig at (%.1f, %.1f) radius %.1f strength %.1f\n", at.X, at.Y, radius, strength)
	fmt.Fprintf(w, "Chunks tested:     %d\n", result.ChunksTested)
	fmt.Fprintf(w, "Chunks modified:   %d\n", result.ChunksModified)
	fmt.Fprintf(w, "Vertices modified: %d\n", result.VerticesModified)
	fmt.Fprintf(w, "Sections updated:  %v (%d uploads)\n", result.Sections, store.Updates)

	lo, hi := heightRange(grid)
	fmt.Fprintf(w, "Height:            %.3f .. %.3f\n", lo, hi)
	return nil
}

func cmdSample(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: terrainctl sample <x> <y>")
	}
	vals, err := parseFloats(args[:2])
	if err != nil {
		return err
	}

	field := terrain.NewHeightField(cfg.TerrainSettings())
	fmt.Fprintf(w, "%.4f\n", field.Sample(vals[0], vals[1]))
	return nil
}

func cmdSaveConfig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: terrainctl save-config <path>")
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s\n", args[0])
	return nil
}

func heightRange(grid *terrain.Grid) (float32, float32) {
	var lo, hi float32
	first := true
	for _, c := range grid.Chunks() {
		for _, v := range c.Vertices {
			if first {
				lo, hi = v.Z, v.Z
				first = false
				continue
			}
			lo = min(lo, v.Z)
			hi = max(hi, v.Z)
		}
	}
	return lo, hi
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

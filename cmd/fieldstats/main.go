// Headless field evaluation tool: evaluates a hierarchical Worley field and
// reports distance statistics, optionally writing CSV artifacts.
//
// Usage: go run ./cmd/fieldstats -output-dir out
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/cellfield/config"
	"github.com/pthm-cable/cellfield/field"
	"github.com/pthm-cable/cellfield/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Uint64("seed", 0, "Field seed (0 = config value, time-based if that is also 0)")
	width := flag.Int("width", 0, "Sample grid width override (0 = config value)")
	height := flag.Int("height", 0, "Sample grid height override (0 = config value)")
	depth := flag.Int("depth", -1, "Composition depth override (-1 = config value)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	writeSamples := flag.Bool("write-samples", false, "Write per-sample CSV (one row per pixel, large)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if *width > 0 {
		cfg.Resolution.Width = *width
	}
	if *height > 0 {
		cfg.Resolution.Height = *height
	}
	if *depth >= 0 {
		cfg.Field.Depth = *depth
	}

	params, err := field.FromConfig(cfg)
	if err != nil {
		slog.Error("invalid field parameters", "error", err)
		os.Exit(1)
	}

	ev, err := field.New(params)
	if err != nil {
		slog.Error("failed to build evaluator", "error", err)
		os.Exit(1)
	}
	defer ev.Close()

	slog.Info("evaluating field",
		"seed", cfg.Seed,
		"width", cfg.Resolution.Width,
		"height", cfg.Resolution.Height,
		"policy", cfg.Field.Policy,
		"depth", cfg.Field.Depth,
		"growth", cfg.Field.Growth,
		"boundary", cfg.Field.Boundary,
		"warp", cfg.Warp.Enabled,
	)

	start := time.Now()
	buf := ev.Evaluate()
	elapsed := time.Since(start)

	stats := telemetry.Collect(buf)
	slog.Info("evaluation complete",
		"elapsed", elapsed.Round(time.Millisecond).String(),
		"samples", stats.Samples,
		"unique_cells", stats.UniqueCells,
		"dist_min", stats.DistMin,
		"dist_max", stats.DistMax,
		"dist_mean", stats.DistMean,
		"dist_std", stats.DistStdDev,
		"dist_p50", stats.DistP50,
	)

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	if om == nil {
		return
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}
	if err := om.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
		os.Exit(1)
	}
	if *writeSamples {
		if err := om.WriteSamples(buf, cfg.Falloff.MaxDist, cfg.Falloff.DistPower); err != nil {
			slog.Error("failed to write samples", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("output written", "dir", om.Dir())
}

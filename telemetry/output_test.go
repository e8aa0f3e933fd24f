package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/cellfield/config"
	"github.com/pthm-cable/cellfield/field"
	"github.com/pthm-cable/cellfield/worley"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatalf("expected nil manager for empty dir")
	}

	// All writes on a nil manager are no-ops.
	if err := om.WriteStats(FieldStats{}); err != nil {
		t.Errorf("nil WriteStats returned %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close returned %v", err)
	}
}

func TestOutputManagerWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatal(err)
	}

	stats := FieldStats{Samples: 4, UniqueCells: 2, DistMean: 1.5}
	if err := om.WriteStats(stats); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteStats(stats); err != nil {
		t.Fatal(err)
	}

	buf := field.NewBuffer[field.Sample](2, 2)
	buf.Set(1, 1, field.Sample{Cell: worley.IntVec2{X: 1, Y: 1}, Distance: 3})
	if err := om.WriteSamples(buf, 70, 1.5); err != nil {
		t.Fatal(err)
	}

	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	statsData, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(statsData)), "\n")
	if len(lines) != 3 {
		t.Errorf("stats.csv has %d lines, want header + 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "dist_mean") {
		t.Errorf("stats.csv header missing dist_mean: %q", lines[0])
	}
	if strings.Contains(lines[1], "dist_mean") {
		t.Errorf("header repeated in record line: %q", lines[1])
	}

	samplesData, err := os.ReadFile(filepath.Join(dir, "samples.csv"))
	if err != nil {
		t.Fatal(err)
	}
	sampleLines := strings.Split(strings.TrimSpace(string(samplesData)), "\n")
	if len(sampleLines) != 5 {
		t.Errorf("samples.csv has %d lines, want header + 4 records", len(sampleLines))
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot not written: %v", err)
	}
}

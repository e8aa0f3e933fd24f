package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/cellfield/config"
	"github.com/pthm-cable/cellfield/field"
)

// SampleRecord is one row of samples.csv.
type SampleRecord struct {
	X        int     `csv:"x"`
	Y        int     `csv:"y"`
	CellX    int     `csv:"cell_x"`
	CellY    int     `csv:"cell_y"`
	Distance float64 `csv:"distance"`
	Shade    float64 `csv:"shade"`
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir         string
	statsFile   *os.File
	samplesFile *os.File

	statsHeaderWritten   bool
	samplesHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	f, err = os.Create(filepath.Join(dir, "samples.csv"))
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating samples.csv: %w", err)
	}
	om.samplesFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteStats appends a field stats record to stats.csv.
func (om *OutputManager) WriteStats(stats FieldStats) error {
	if om == nil {
		return nil
	}

	records := []FieldStats{stats}
	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}
	return nil
}

// WriteSamples appends every sample in the buffer to samples.csv, shading
// distances with the given falloff.
func (om *OutputManager) WriteSamples(buf *field.Buffer[field.Sample], maxDist, distPower float64) error {
	if om == nil {
		return nil
	}

	records := make([]SampleRecord, 0, len(buf.Data))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			s := buf.At(x, y)
			records = append(records, SampleRecord{
				X:        x,
				Y:        y,
				CellX:    s.Cell.X,
				CellY:    s.Cell.Y,
				Distance: s.Distance,
				Shade:    field.Shade(s.Distance, maxDist, distPower),
			})
		}
	}

	if !om.samplesHeaderWritten {
		if err := gocsv.Marshal(records, om.samplesFile); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
		om.samplesHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.samplesFile); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.statsFile, om.samplesFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Package telemetry computes summary statistics over evaluated fields and
// hash quality measurements, and writes structured CSV output.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/cellfield/field"
	"github.com/pthm-cable/cellfield/worley"
)

// FieldStats summarizes the distance distribution of one evaluated field.
type FieldStats struct {
	Samples     int     `csv:"samples"`
	UniqueCells int     `csv:"unique_cells"`
	DistMin     float64 `csv:"dist_min"`
	DistMax     float64 `csv:"dist_max"`
	DistMean    float64 `csv:"dist_mean"`
	DistStdDev  float64 `csv:"dist_std"`
	DistP10     float64 `csv:"dist_p10"`
	DistP50     float64 `csv:"dist_p50"`
	DistP90     float64 `csv:"dist_p90"`
}

// Collect computes summary statistics over every sample in the buffer.
func Collect(buf *field.Buffer[field.Sample]) FieldStats {
	dists := make([]float64, len(buf.Data))
	cells := make(map[worley.IntVec2]struct{})
	for i, s := range buf.Data {
		dists[i] = s.Distance
		cells[s.Cell] = struct{}{}
	}
	sort.Float64s(dists)

	mean, std := stat.MeanStdDev(dists, nil)
	if len(dists) < 2 {
		std = 0
	}

	return FieldStats{
		Samples:     len(dists),
		UniqueCells: len(cells),
		DistMin:     dists[0],
		DistMax:     dists[len(dists)-1],
		DistMean:    mean,
		DistStdDev:  std,
		DistP10:     stat.Quantile(0.1, stat.Empirical, dists, nil),
		DistP50:     stat.Quantile(0.5, stat.Empirical, dists, nil),
		DistP90:     stat.Quantile(0.9, stat.Empirical, dists, nil),
	}
}

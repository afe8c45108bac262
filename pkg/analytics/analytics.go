package analytics

import (
	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
)

// Resolve computes footprint and congestion figures for a campus on an n
// by n grid. Sample problems are reported, not fixed.
func Resolve(buildings []campus.Building, n int) (*CampusStats, *validation.Report) {
	report := validation.NewReport()
	stats := &CampusStats{Buildings: len(buildings)}

	for _, b := range buildings {
		stats.Cells += len(b.Cells())
		if len(b.Merged) > 0 {
			stats.MergedBuildings++
		}
		stats.Doors += len(b.Doors)
		open := false
		for _, d := range b.Doors {
			if d.Accessible {
				stats.AccessibleDoors++
				open = true
			}
		}
		if open {
			stats.OpenBuildings++
		}

		if len(b.Congestion) == 0 {
			continue
		}
		validateSamples(b, report)
		stats.Congestion = append(stats.Congestion, summarize(b))
	}
	if n > 0 {
		stats.FootprintRatio = float64(stats.Cells) / float64(n*n)
	}
	stats.CampusPeak = campusPeak(buildings)
	return stats, report
}

func summarize(b campus.Building) BuildingCongestion {
	bc := BuildingCongestion{BuildingID: b.ID, Samples: len(b.Congestion)}
	total := 0.0
	for i, s := range b.Congestion {
		total += s.Avg
		if i == 0 || s.Avg > bc.Peak.Avg {
			bc.Peak = Window{Index: i, Timestep: s.Timestep, Avg: s.Avg}
		}
	}
	bc.DailyMean = total / float64(len(b.Congestion))

	hours := (len(b.Congestion) + WindowsPerHour - 1) / WindowsPerHour
	for h := 0; h < hours; h++ {
		lo := h * WindowsPerHour
		hi := min(lo+WindowsPerHour, len(b.Congestion))
		sum := 0.0
		for _, s := range b.Congestion[lo:hi] {
			sum += s.Avg
		}
		mean := sum / float64(hi-lo)
		if h == 0 || mean > bc.HourMean {
			bc.BusiestHour, bc.HourMean = h, mean
		}
	}
	return bc
}

// campusPeak sums the averages of every full-day building per window.
func campusPeak(buildings []campus.Building) *Window {
	var sums [campus.Windows]float64
	var steps [campus.Windows]string
	found := false
	for _, b := range buildings {
		if len(b.Congestion) != campus.Windows {
			continue
		}
		found = true
		for i, s := range b.Congestion {
			sums[i] += s.Avg
			if steps[i] == "" {
				steps[i] = s.Timestep
			}
		}
	}
	if !found {
		return nil
	}
	best := 0
	for i := 1; i < campus.Windows; i++ {
		if sums[i] > sums[best] {
			best = i
		}
	}
	return &Window{Index: best, Timestep: steps[best], Avg: sums[best]}
}

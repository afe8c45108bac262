package analytics

import (
	"fmt"
	"testing"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daySamples(peakAt int) []campus.CongestionSample {
	out := make([]campus.CongestionSample, campus.Windows)
	for i := range out {
		avg := 1.0
		if i == peakAt {
			avg = 10
		}
		out[i] = campus.CongestionSample{
			ID:       i,
			Timestep: fmt.Sprintf("%02d:%02d", i/12, (i%12)*5),
			Lower:    0, Upper: 20,
			Min: 0, Max: 20,
			Avg: avg,
		}
	}
	return out
}

func building(id int, c campus.Cell, accessible bool) campus.Building {
	return campus.Building{
		ID:     id,
		Anchor: c,
		Doors:  []campus.Door{{ID: 0, X: float64(c.X) + 0.9, Y: float64(c.Y) + 0.5, Accessible: accessible}},
	}
}

func TestResolveCounts(t *testing.T) {
	a := building(1, campus.Cell{X: 0, Y: 0}, true)
	a.Merged = []campus.Cell{{X: 1, Y: 0}}
	b := building(2, campus.Cell{X: 3, Y: 3}, false)

	stats, report := Resolve([]campus.Building{a, b}, 5)
	require.True(t, report.Valid)
	assert.Equal(t, 2, stats.Buildings)
	assert.Equal(t, 1, stats.MergedBuildings)
	assert.Equal(t, 3, stats.Cells)
	assert.Equal(t, 2, stats.Doors)
	assert.Equal(t, 1, stats.AccessibleDoors)
	assert.Equal(t, 1, stats.OpenBuildings)
	assert.InDelta(t, 3.0/25.0, stats.FootprintRatio, 1e-9)
	assert.Empty(t, stats.Congestion)
	assert.Nil(t, stats.CampusPeak)
}

func TestResolveCongestion(t *testing.T) {
	a := building(1, campus.Cell{X: 0, Y: 0}, true)
	a.Congestion = daySamples(100)

	stats, report := Resolve([]campus.Building{a}, 5)
	require.Empty(t, report.Warnings)
	require.Len(t, stats.Congestion, 1)

	bc := stats.Congestion[0]
	assert.Equal(t, 1, bc.BuildingID)
	assert.Equal(t, campus.Windows, bc.Samples)
	assert.Equal(t, 100, bc.Peak.Index)
	assert.Equal(t, "08:20", bc.Peak.Timestep)
	assert.Equal(t, 8, bc.BusiestHour)
	assert.InDelta(t, 21.0/12.0, bc.HourMean, 1e-9)
	assert.InDelta(t, (287.0+10.0)/288.0, bc.DailyMean, 1e-9)
}

func TestCampusPeakSumsBuildings(t *testing.T) {
	a := building(1, campus.Cell{X: 0, Y: 0}, true)
	a.Congestion = daySamples(40)
	b := building(2, campus.Cell{X: 2, Y: 2}, true)
	b.Congestion = daySamples(40)
	c := building(3, campus.Cell{X: 4, Y: 4}, true)
	c.Congestion = daySamples(200)[:10]

	stats, _ := Resolve([]campus.Building{a, b, c}, 5)
	require.NotNil(t, stats.CampusPeak)
	assert.Equal(t, 40, stats.CampusPeak.Index)
	assert.InDelta(t, 20.0, stats.CampusPeak.Avg, 1e-9)
	assert.Len(t, stats.Congestion, 3)
}

func TestPartialDayHours(t *testing.T) {
	b := building(1, campus.Cell{X: 0, Y: 0}, true)
	b.Congestion = daySamples(0)[:14]
	bc := summarize(b)
	assert.Equal(t, 14, bc.Samples)
	assert.Equal(t, 0, bc.BusiestHour)
	assert.Equal(t, 0, bc.Peak.Index)
}

func TestValidateSamples(t *testing.T) {
	b := building(7, campus.Cell{X: 0, Y: 0}, true)
	b.Congestion = []campus.CongestionSample{
		{Timestep: "00:00", Lower: 5, Upper: 1, Min: 0, Max: 4, Avg: 2},
		{Timestep: "00:05", Min: 5, Max: 1, Avg: 3},
		{Timestep: "00:10", Min: 0, Max: 2, Avg: 9},
		{Timestep: "00:15", Min: 0, Max: 2, Avg: 1, StdDev: -1},
	}

	_, report := Resolve([]campus.Building{b}, 5)
	assert.True(t, report.Valid, "sample problems are warnings")
	require.Len(t, report.Warnings, 4)
	paths := make([]string, 0, len(report.Warnings))
	for _, w := range report.Warnings {
		assert.Equal(t, validation.LevelAnalytic, w.Level)
		assert.Equal(t, 7, w.BuildingID)
		paths = append(paths, w.Path)
	}
	assert.Equal(t, []string{
		"congestion[0].lower",
		"congestion[1].min",
		"congestion[2].avg",
		"congestion[3].stdDev",
	}, paths)
}

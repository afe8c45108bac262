package campus

import "github.com/ChicagoDave/campusgrid/pkg/geo"

// Windows is the number of five-minute congestion samples in a day.
const Windows = 288

// Door is an entrance on a building perimeter, in 0-indexed grid units.
type Door struct {
	ID         int     `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Accessible bool    `json:"accessible"`
}

// Point returns the door position.
func (d Door) Point() geo.Point {
	return geo.Point{X: d.X, Y: d.Y}
}

// CongestionSample is one five-minute window of foot traffic at a building.
type CongestionSample struct {
	ID       int     `json:"id"`
	Timestep string  `json:"timestep"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Avg      float64 `json:"avg"`
	StdDev   float64 `json:"stdDev"`
}

// Cell addresses one grid cell.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ID returns the flat row-major id of the cell on an n by n grid.
func (c Cell) ID(n int) int {
	return c.Y*n + c.X
}

// Center returns the middle of the cell.
func (c Cell) Center() geo.Point {
	return geo.Point{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Touches reports whether c and o share an edge.
func (c Cell) Touches(o Cell) bool {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx*dx+dy*dy == 1
}

// CellOf returns the cell with the given flat id.
func CellOf(id, n int) Cell {
	return Cell{X: id % n, Y: id / n}
}

// Building is one footprint on the grid with its doors and congestion.
// Coordinates are 0-indexed; Merged lists the fused cells beyond Anchor.
type Building struct {
	ID         int                `json:"id"`
	Anchor     Cell               `json:"anchor"`
	Doors      []Door             `json:"doors"`
	Congestion []CongestionSample `json:"congestion,omitempty"`
	Merged     []Cell             `json:"merged,omitempty"`
}

// Cells returns the anchor followed by every merged cell.
func (b Building) Cells() []Cell {
	return append([]Cell{b.Anchor}, b.Merged...)
}

// Connected reports, for every cell of the footprint, whether an
// edge-to-edge walk from the anchor reaches it without leaving the
// footprint. The order of Merged does not matter.
func (b Building) Connected() []bool {
	cells := b.Cells()
	seen := make([]bool, len(cells))
	seen[0] = true
	queue := []int{0}
	for len(queue) > 0 {
		cur := cells[queue[0]]
		queue = queue[1:]
		for i, c := range cells {
			if !seen[i] && c.Touches(cur) {
				seen[i] = true
				queue = append(queue, i)
			}
		}
	}
	return seen
}

// PeakWindow returns the sample with the highest average, or false when
// there are no samples.
func PeakWindow(samples []CongestionSample) (CongestionSample, bool) {
	if len(samples) == 0 {
		return CongestionSample{}, false
	}
	peak := samples[0]
	for _, s := range samples[1:] {
		if s.Avg > peak.Avg {
			peak = s
		}
	}
	return peak, true
}

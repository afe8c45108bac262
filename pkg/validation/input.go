package validation

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// ValidateSettings checks engine settings before any computation.
func ValidateSettings(s config.Settings) *Report {
	r := NewReport()
	if s.GridSize <= 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "grid size must be greater than 0",
			Path:        "grid_size",
			ActualValue: s.GridSize,
			Expected:    "> 0",
		})
	}
	positive := map[string]float64{
		"door_length":     s.DoorLength,
		"tolerance":       s.Tolerance,
		"probe_offset":    s.ProbeOffset,
		"merge_gap_ratio": s.MergeGapRatio,
		"pole_precision":  s.PolePrecision,
	}
	for name, v := range positive {
		if v <= 0 {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("%s must be greater than 0", name),
				Path:        name,
				ActualValue: v,
				Expected:    "> 0",
			})
		}
	}
	if s.MergeGapRatio >= 0.5 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "merge gap ratio leaves no overlap to join",
			Path:        "merge_gap_ratio",
			ActualValue: s.MergeGapRatio,
			Expected:    "< 0.5",
		})
	}
	if s.InsetDistance()*2 >= 1 {
		r.AddWarning(Result{
			Level:       LevelInput,
			Message:     "door inset swallows a whole cell edge; doors will not snap",
			Path:        "door_length",
			ActualValue: s.InsetDistance(),
		})
	}
	if s.DefaultDoorInset <= 0 || s.DefaultDoorInset >= 0.5 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "default door inset must keep new doors inside the cell",
			Path:        "default_door_inset",
			ActualValue: s.DefaultDoorInset,
			Expected:    "(0, 0.5)",
		})
	}
	if s.RouteInset < 0 || s.RouteInset >= 0.5 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "route inset must keep routes inside the cell",
			Path:        "route_inset",
			ActualValue: s.RouteInset,
			Expected:    "[0, 0.5)",
		})
	}
	return r
}

// ValidateBuildings pre-validates an input graph. Errors mark buildings the
// engine cannot accept; warnings mark inputs it will accept but reshape.
func ValidateBuildings(buildings []campus.Building, n int) *Report {
	r := NewReport()
	owner := make(map[campus.Cell]int)
	ids := make(map[int]bool)

	for i, b := range buildings {
		path := fmt.Sprintf("buildings[%d]", i)
		if ids[b.ID] {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     "duplicate building id",
				Path:        path + ".id",
				BuildingID:  b.ID,
				ActualValue: b.ID,
			})
		}
		ids[b.ID] = true

		validateDoors(b, path, r)
		validateFootprint(b, path, n, owner, r)
		validateCongestion(b, path, r)
	}
	return r
}

func validateDoors(b campus.Building, path string, r *Report) {
	if len(b.Doors) == 0 {
		r.AddError(Result{
			Level:      LevelInput,
			Message:    "building has no doors",
			Path:       path + ".entrances",
			BuildingID: b.ID,
			Expected:   ">= 1 door",
		})
		return
	}
	if len(b.Doors) < 3 && len(b.Merged) == 0 {
		r.AddWarning(Result{
			Level:       LevelInput,
			Message:     "fewer than 3 doors give a degenerate outline",
			Path:        path + ".entrances",
			BuildingID:  b.ID,
			ActualValue: len(b.Doors),
		})
	}
	seen := make(map[int]bool)
	for j, d := range b.Doors {
		if seen[d.ID] {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     "duplicate door id",
				Path:        fmt.Sprintf("%s.entrances[%d].id", path, j),
				BuildingID:  b.ID,
				ActualValue: d.ID,
			})
		}
		seen[d.ID] = true
		if !inFootprint(b, d) {
			r.AddWarning(Result{
				Level:       LevelInput,
				Message:     "door lies outside the building footprint",
				Path:        fmt.Sprintf("%s.entrances[%d]", path, j),
				BuildingID:  b.ID,
				ActualValue: fmt.Sprintf("(%.3f, %.3f)", d.X, d.Y),
			})
		}
	}
}

func validateFootprint(b campus.Building, path string, n int, owner map[campus.Cell]int, r *Report) {
	cells := b.Cells()
	for j, c := range cells {
		cellPath := path + ".anchor"
		if j > 0 {
			cellPath = fmt.Sprintf("%s.merged[%d]", path, j-1)
		}
		if c.X < 0 || c.Y < 0 || c.X >= n || c.Y >= n {
			r.AddError(Result{
				Level:       LevelInput,
				Message:     "cell outside the grid",
				Path:        cellPath,
				BuildingID:  b.ID,
				ActualValue: fmt.Sprintf("(%d, %d)", c.X, c.Y),
				Expected:    fmt.Sprintf("0..%d", n-1),
			})
			continue
		}
		if other, taken := owner[c]; taken {
			r.AddError(Result{
				Level:        LevelInput,
				Message:      "cell already belongs to another building",
				Path:         cellPath,
				BuildingID:   b.ID,
				ActualValue:  fmt.Sprintf("(%d, %d)", c.X, c.Y),
				ConflictWith: fmt.Sprintf("building %d", other),
			})
			continue
		}
		owner[c] = b.ID
	}

	for j, ok := range b.Connected() {
		if ok {
			continue
		}
		c := cells[j]
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "merged cell is not connected to the anchor through the footprint",
			Path:        fmt.Sprintf("%s.merged[%d]", path, j-1),
			BuildingID:  b.ID,
			ActualValue: fmt.Sprintf("(%d, %d)", c.X, c.Y),
		})
	}
}

func validateCongestion(b campus.Building, path string, r *Report) {
	if len(b.Congestion) == 0 || len(b.Congestion) == campus.Windows {
		return
	}
	r.AddWarning(Result{
		Level:       LevelInput,
		Message:     "congestion does not cover a full day of five-minute windows",
		Path:        path + ".congestion",
		BuildingID:  b.ID,
		ActualValue: len(b.Congestion),
		Expected:    fmt.Sprintf("%d", campus.Windows),
	})
}

func inFootprint(b campus.Building, d campus.Door) bool {
	for _, c := range b.Cells() {
		if d.X >= float64(c.X)-geo.Eps && d.X <= float64(c.X+1)+geo.Eps &&
			d.Y >= float64(c.Y)-geo.Eps && d.Y <= float64(c.Y+1)+geo.Eps {
			return true
		}
	}
	return false
}

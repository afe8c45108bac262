package analytics

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
)

// validateSamples flags congestion windows whose bounds contradict each
// other.
func validateSamples(b campus.Building, report *validation.Report) {
	for i, s := range b.Congestion {
		path := fmt.Sprintf("congestion[%d]", i)
		if s.Lower > s.Upper {
			report.AddWarning(validation.Result{
				Level:        validation.LevelAnalytic,
				Message:      fmt.Sprintf("window %s: lower bound above upper bound", s.Timestep),
				Path:         path + ".lower",
				BuildingID:   b.ID,
				ActualValue:  s.Lower,
				ConflictWith: fmt.Sprintf("upper = %g", s.Upper),
			})
		}
		if s.Min > s.Max {
			report.AddWarning(validation.Result{
				Level:        validation.LevelAnalytic,
				Message:      fmt.Sprintf("window %s: min above max", s.Timestep),
				Path:         path + ".min",
				BuildingID:   b.ID,
				ActualValue:  s.Min,
				ConflictWith: fmt.Sprintf("max = %g", s.Max),
			})
			continue
		}
		if s.Avg < s.Min || s.Avg > s.Max {
			report.AddWarning(validation.Result{
				Level:       validation.LevelAnalytic,
				Message:     fmt.Sprintf("window %s: average outside min..max", s.Timestep),
				Path:        path + ".avg",
				BuildingID:  b.ID,
				ActualValue: s.Avg,
				Expected:    fmt.Sprintf("%g..%g", s.Min, s.Max),
			})
		}
		if s.StdDev < 0 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelAnalytic,
				Message:     fmt.Sprintf("window %s: negative standard deviation", s.Timestep),
				Path:        path + ".stdDev",
				BuildingID:  b.ID,
				ActualValue: s.StdDev,
				Expected:    ">= 0",
			})
		}
	}
}

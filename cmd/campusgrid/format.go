package main

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/analytics"
	"github.com/ChicagoDave/campusgrid/pkg/engine"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res validation.Result) {
	if res.BuildingID != 0 {
		fmt.Printf("  [%s] building %d: %s\n", res.Level, res.BuildingID, res.Message)
	} else {
		fmt.Printf("  [%s] %s\n", res.Level, res.Message)
	}
	if res.Path != "" {
		fmt.Printf("    -> %s = %v\n", res.Path, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	if res.ConflictWith != "" {
		fmt.Printf("    conflicts with: %s\n", res.ConflictWith)
	}
}

func printRoute(from, to string, res engine.RouteResult) {
	kind := "across the grid"
	if res.Indoor {
		kind = "indoor"
	}
	status := "reached"
	if !res.Reached {
		status = "NOT reached (path ends at the closest explored wall)"
	}
	fmt.Printf("Route %s -> %s (%s): %s\n", from, to, kind, status)
	fmt.Println()

	fmt.Printf("%-6s %10s %10s\n", "Point", "X", "Y")
	fmt.Printf("%-6s %10s %10s\n", "------", "----------", "----------")
	for i, p := range res.Points {
		fmt.Printf("%-6d %10.4f %10.4f\n", i, p.X, p.Y)
	}
	if len(res.Walls) > 0 {
		fmt.Println()
		fmt.Printf("Walls: %d\n", len(res.Walls))
		for _, w := range res.Walls {
			fmt.Printf("  %s\n", w)
		}
	}
}

func printAnalytics(s *analytics.CampusStats) {
	fmt.Printf("Buildings: %d (%d merged), cells: %d, footprint: %.1f%%\n",
		s.Buildings, s.MergedBuildings, s.Cells, s.FootprintRatio*100)
	fmt.Printf("Doors: %d (%d accessible), open buildings: %d\n",
		s.Doors, s.AccessibleDoors, s.OpenBuildings)
	if s.CampusPeak != nil {
		fmt.Printf("Campus peak: %s (sum avg %.2f)\n", s.CampusPeak.Timestep, s.CampusPeak.Avg)
	}
	if len(s.Congestion) > 0 {
		fmt.Println()
		fmt.Printf("%-9s %8s %10s %8s %10s\n", "Building", "Mean", "Peak", "PeakAvg", "BusyHour")
		for _, c := range s.Congestion {
			fmt.Printf("%-9d %8.2f %10s %8.2f %10d\n",
				c.BuildingID, c.DailyMean, c.Peak.Timestep, c.Peak.Avg, c.BusiestHour)
		}
	}
	fmt.Println()
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
)

func squareBuilding(id int, c campus.Cell) campus.Building {
	cx, cy := float64(c.X)+0.5, float64(c.Y)+0.5
	return campus.Building{
		ID:     id,
		Anchor: c,
		Doors: []campus.Door{
			{ID: 0, X: cx + 0.4, Y: cy},
			{ID: 1, X: cx, Y: cy - 0.4},
			{ID: 2, X: cx - 0.4, Y: cy},
			{ID: 3, X: cx, Y: cy + 0.4},
		},
	}
}

func assertHasError(t *testing.T, r *Report, path string) {
	t.Helper()
	for _, e := range r.Errors {
		if e.Path == path {
			return
		}
	}
	t.Errorf("expected error with path %q, got errors: %v", path, r.Errors)
}

func TestValidateSettingsDefaults(t *testing.T) {
	r := ValidateSettings(config.Default())
	assert.True(t, r.Valid, r.Summary)
}

func TestValidateSettingsRejectsBadValues(t *testing.T) {
	s := config.Default()
	s.GridSize = 0
	s.MergeGapRatio = 0.7
	s.DefaultDoorInset = 0.6
	s.RouteInset = 0.5
	r := ValidateSettings(s)
	assert.False(t, r.Valid)
	assertHasError(t, r, "grid_size")
	assertHasError(t, r, "merge_gap_ratio")
	assertHasError(t, r, "default_door_inset")
	assertHasError(t, r, "route_inset")
}

func TestValidateBuildingsValid(t *testing.T) {
	r := ValidateBuildings([]campus.Building{
		squareBuilding(1, campus.Cell{X: 0, Y: 0}),
		squareBuilding(2, campus.Cell{X: 2, Y: 1}),
	}, 5)
	assert.True(t, r.Valid, "%v", r.Errors)
	assert.Empty(t, r.Warnings)
}

func TestValidateBuildingsNoDoors(t *testing.T) {
	b := squareBuilding(1, campus.Cell{})
	b.Doors = nil
	r := ValidateBuildings([]campus.Building{b}, 5)
	assertHasError(t, r, "buildings[0].entrances")
}

func TestValidateBuildingsOutOfGrid(t *testing.T) {
	r := ValidateBuildings([]campus.Building{squareBuilding(1, campus.Cell{X: 5, Y: 0})}, 5)
	assertHasError(t, r, "buildings[0].anchor")
}

func TestValidateBuildingsSharedCell(t *testing.T) {
	r := ValidateBuildings([]campus.Building{
		squareBuilding(1, campus.Cell{X: 1, Y: 1}),
		squareBuilding(2, campus.Cell{X: 1, Y: 1}),
	}, 5)
	assertHasError(t, r, "buildings[1].anchor")
	assert.Equal(t, "building 1", r.Errors[0].ConflictWith)
}

func TestValidateBuildingsDetachedMerge(t *testing.T) {
	b := squareBuilding(1, campus.Cell{})
	b.Merged = []campus.Cell{{X: 2, Y: 2}}
	r := ValidateBuildings([]campus.Building{b}, 5)
	assertHasError(t, r, "buildings[0].merged[0]")
}

func TestValidateBuildingsMergedOrderFree(t *testing.T) {
	b := squareBuilding(1, campus.Cell{})
	b.Merged = []campus.Cell{{X: 1, Y: 1}, {X: 1, Y: 0}}
	r := ValidateBuildings([]campus.Building{b}, 5)
	assert.True(t, r.Valid, r.Summary)
	assert.Empty(t, r.Errors)
}

func TestValidateBuildingsDetachedBehindChain(t *testing.T) {
	b := squareBuilding(1, campus.Cell{})
	b.Merged = []campus.Cell{{X: 3, Y: 3}, {X: 1, Y: 0}, {X: 3, Y: 2}}
	r := ValidateBuildings([]campus.Building{b}, 5)
	require.Len(t, r.Errors, 2)
	assertHasError(t, r, "buildings[0].merged[0]")
	assertHasError(t, r, "buildings[0].merged[2]")
}

func TestValidateBuildingsDuplicateIDs(t *testing.T) {
	b := squareBuilding(1, campus.Cell{})
	b.Doors[2].ID = 0
	r := ValidateBuildings([]campus.Building{b, squareBuilding(1, campus.Cell{X: 3})}, 5)
	assertHasError(t, r, "buildings[0].entrances[2].id")
	assertHasError(t, r, "buildings[1].id")
}

func TestValidateBuildingsWarnings(t *testing.T) {
	b := squareBuilding(1, campus.Cell{})
	b.Doors = b.Doors[:2]
	b.Doors[0].X = 3
	b.Congestion = make([]campus.CongestionSample, 10)
	r := ValidateBuildings([]campus.Building{b}, 5)
	assert.True(t, r.Valid)
	assert.Len(t, r.Warnings, 3)
}

package engine

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
	"github.com/ChicagoDave/campusgrid/pkg/validation"
)

// World owns the grid and every building record. It is not safe for
// concurrent use; callers serialize mutations.
type World struct {
	settings config.Settings
	grid     []RecordID
	records  map[RecordID]*Record
	nextID   RecordID
	logger   *log.Logger
	now      func() time.Time
}

// New creates an empty world. The settings' tolerance becomes the
// process-wide geometry tolerance.
func New(s config.Settings) *World {
	geo.SetTolerance(s.Tolerance)
	return &World{
		settings: s,
		grid:     make([]RecordID, s.Cells()),
		records:  make(map[RecordID]*Record),
		nextID:   1,
		logger:   log.Default(),
		now:      time.Now,
	}
}

// SetLogger replaces the logger used for recovered geometry problems.
func (w *World) SetLogger(l *log.Logger) {
	w.logger = l
}

// Settings returns the engine settings.
func (w *World) Settings() config.Settings {
	return w.settings
}

// Record returns the record with the given id.
func (w *World) Record(id RecordID) (*Record, error) {
	r, ok := w.records[id]
	if !ok {
		return nil, fmt.Errorf("record %d: %w", id, ErrUnknownRecord)
	}
	return r, nil
}

// RecordForBuilding returns the record holding the building with the given
// input id.
func (w *World) RecordForBuilding(buildingID int) (*Record, bool) {
	for _, r := range w.records {
		if r.Building.ID == buildingID {
			return r, true
		}
	}
	return nil, false
}

// RecordAt returns the record owning a cell.
func (w *World) RecordAt(c campus.Cell) (*Record, bool) {
	if !w.inGrid(c) {
		return nil, false
	}
	id := w.grid[c.ID(w.settings.GridSize)]
	if id == 0 {
		return nil, false
	}
	return w.records[id], true
}

// Owner returns the record id stored in a cell, zero when empty.
func (w *World) Owner(c campus.Cell) RecordID {
	if !w.inGrid(c) {
		return 0
	}
	return w.grid[c.ID(w.settings.GridSize)]
}

// Records returns every record ordered by id.
func (w *World) Records() []*Record {
	out := make([]*Record, 0, len(w.records))
	for _, r := range w.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Buildings writes the records back as input buildings.
func (w *World) Buildings() []campus.Building {
	recs := w.Records()
	out := make([]campus.Building, 0, len(recs))
	for _, r := range recs {
		b := r.Building
		b.Doors = append([]campus.Door(nil), r.Building.Doors...)
		b.Merged = append([]campus.Cell(nil), r.Building.Merged...)
		out = append(out, b)
	}
	return out
}

// Report merges the settings check with the geometry report of every
// record.
func (w *World) Report() *validation.Report {
	report := validation.ValidateSettings(w.settings)
	for _, r := range w.Records() {
		if r.Report != nil {
			report.Merge(r.Report)
		}
	}
	return report
}

func (w *World) inGrid(c campus.Cell) bool {
	n := w.settings.GridSize
	return c.X >= 0 && c.Y >= 0 && c.X < n && c.Y < n
}

func (w *World) claim(id RecordID, cells []campus.Cell) {
	for _, c := range cells {
		w.grid[c.ID(w.settings.GridSize)] = id
	}
}

func (w *World) nextBuildingID() int {
	next := 1
	for _, r := range w.records {
		if r.Building.ID >= next {
			next = r.Building.ID + 1
		}
	}
	return next
}

func (w *World) logf(format string, args ...any) {
	if w.logger != nil {
		w.logger.Printf(format, args...)
	}
}

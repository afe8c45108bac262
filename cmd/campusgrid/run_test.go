package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
	"github.com/ChicagoDave/campusgrid/pkg/engine"
)

func writeProject(t *testing.T, settings string, buildings []campus.Building) string {
	t.Helper()
	dir := t.TempDir()
	if settings != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(settings), 0o644))
	}
	require.NoError(t, campus.Save(filepath.Join(dir, campus.FileName), buildings))
	return dir
}

func squareBuilding(id, x, y int) campus.Building {
	cx, cy := float64(x)+0.5, float64(y)+0.5
	return campus.Building{
		ID:     id,
		Anchor: campus.Cell{X: x, Y: y},
		Doors: []campus.Door{
			{ID: 0, X: cx + 0.4, Y: cy, Accessible: true},
			{ID: 1, X: cx, Y: cy - 0.4},
			{ID: 2, X: cx - 0.4, Y: cy},
			{ID: 3, X: cx, Y: cy + 0.4},
		},
	}
}

func TestLoadProject(t *testing.T) {
	dir := writeProject(t, "grid_size: 6\n", []campus.Building{
		squareBuilding(10, 0, 0),
		squareBuilding(20, 4, 5),
	})

	w, report, err := loadProject(dir)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, report.Valid)
	assert.Equal(t, 6, w.Settings().GridSize)
	assert.Len(t, w.Records(), 2)

	ref, err := buildingDoor(w, "20:2")
	require.NoError(t, err)
	r, ok := w.RecordForBuilding(20)
	require.True(t, ok)
	assert.Equal(t, engine.DoorRef{Record: r.ID, Door: 2}, ref)

	_, err = buildingDoor(w, "30:0")
	assert.ErrorIs(t, err, engine.ErrUnknownRecord)
}

func TestLoadProjectInvalidSettings(t *testing.T) {
	dir := writeProject(t, "merge_gap_ratio: 0.7\n", []campus.Building{squareBuilding(1, 0, 0)})

	w, report, err := loadProject(dir)
	require.NoError(t, err)
	assert.Nil(t, w)
	require.NotNil(t, report)
	assert.False(t, report.Valid)
}

func TestLoadProjectInvalidBuildings(t *testing.T) {
	dir := writeProject(t, "", []campus.Building{squareBuilding(1, 0, 0), squareBuilding(1, 2, 2)})

	w, report, err := loadProject(dir)
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.False(t, report.Valid)
}

func TestRunExportRequiresTarget(t *testing.T) {
	assert.Error(t, runExport(t.TempDir(), exportOptions{}))
}

func TestRunExportWritesFiles(t *testing.T) {
	dir := writeProject(t, "", []campus.Building{squareBuilding(1, 1, 1)})
	out := t.TempDir()
	opts := exportOptions{
		dxf:  filepath.Join(out, "campus.dxf"),
		pdf:  filepath.Join(out, "campus.pdf"),
		xlsx: filepath.Join(out, "congestion.xlsx"),
	}
	require.NoError(t, runExport(dir, opts))
	for _, p := range []string{opts.dxf, opts.pdf, opts.xlsx} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}

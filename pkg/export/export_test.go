package export

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
	"github.com/ChicagoDave/campusgrid/pkg/engine"
	"github.com/ChicagoDave/campusgrid/pkg/scene2d"
)

func testScene(t *testing.T) *scene2d.Scene2D {
	t.Helper()
	w := engine.New(config.Default())
	w.SetLogger(log.New(io.Discard, "", 0))
	_, err := w.AddBuilding(campus.Cell{X: 1, Y: 1})
	require.NoError(t, err)
	_, err = w.AddBuilding(campus.Cell{X: 3, Y: 2})
	require.NoError(t, err)
	return scene2d.Assemble2D(w)
}

func TestWritePDFCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.pdf")
	require.NoError(t, WritePDF(path, testScene(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestWritePDFEmptyScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	err := WritePDF(path, &scene2d.Scene2D{Metadata: scene2d.Metadata{GridSize: 5}})
	assert.ErrorIs(t, err, ErrEmptyScene)
}

func TestWriteDXFEntities(t *testing.T) {
	sc := testScene(t)
	path := filepath.Join(t.TempDir(), "campus.dxf")
	require.NoError(t, WriteDXF(path, sc))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	lines, circles := 0, 0
	for _, e := range drawing.Entities() {
		switch e.(type) {
		case *entity.Line:
			lines++
		case *entity.Circle:
			circles++
		}
	}
	assert.Equal(t, sc.Metadata.DoorCount, circles)

	want := 0
	for _, r := range sc.Records {
		want += len(r.Outline) + len(r.EffectiveWalls)
		for _, c := range r.Corridors {
			if len(c.Points) > 1 {
				want += len(c.Points) - 1
			}
		}
	}
	assert.Equal(t, want, lines)
}

func TestWriteDXFEmptyScene(t *testing.T) {
	err := WriteDXF(filepath.Join(t.TempDir(), "x.dxf"), nil)
	assert.ErrorIs(t, err, ErrEmptyScene)
}

func TestWriteCongestionXLSX(t *testing.T) {
	samples := make([]campus.CongestionSample, campus.Windows)
	for i := range samples {
		samples[i] = campus.CongestionSample{ID: i, Timestep: "t", Avg: float64(i % 50), Max: 60}
	}
	samples[120].Timestep = "10:00"
	samples[120].Avg = 99

	buildings := []campus.Building{
		{ID: 1, Congestion: samples},
		{ID: 2},
	}
	path := filepath.Join(t.TempDir(), "congestion.xlsx")
	require.NoError(t, WriteCongestionXLSX(path, buildings))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, BuildingSheet(1), BuildingSheet(2)}, f.GetSheetList())

	rows, err := f.GetRows(BuildingSheet(1))
	require.NoError(t, err)
	assert.Len(t, rows, campus.Windows+1)
	assert.Equal(t, "StdDev", rows[0][7])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, "1", summary[1][0])
	assert.Equal(t, "288", summary[1][1])
	assert.Equal(t, "10:00", summary[1][2])
	assert.Equal(t, "99", summary[1][3])
	assert.Equal(t, "0", summary[2][1])
}

func TestWriteCongestionXLSXNoBuildings(t *testing.T) {
	assert.Error(t, WriteCongestionXLSX(filepath.Join(t.TempDir(), "x.xlsx"), nil))
}

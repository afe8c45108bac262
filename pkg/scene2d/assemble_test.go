package scene2d

import (
	"encoding/json"
	"io"
	"log"
	"testing"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
	"github.com/ChicagoDave/campusgrid/pkg/engine"
)

func testWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.New(config.Default())
	w.SetLogger(log.New(io.Discard, "", 0))

	a, err := w.AddBuilding(campus.Cell{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	b, err := w.AddBuilding(campus.Cell{X: 1, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.MergeBuildings(a.ID, b.ID, campus.Cell{X: 0, Y: 0}, campus.Cell{X: 1, Y: 0}); err != nil {
		t.Fatal(err)
	}
	c, err := w.AddBuilding(campus.Cell{X: 3, Y: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.SetCongestion(c.ID, []campus.CongestionSample{
		{ID: 0, Timestep: "08:00", Avg: 4, Max: 9},
		{ID: 1, Timestep: "08:05", Avg: 12, Max: 20},
		{ID: 2, Timestep: "08:10", Avg: 7, Max: 11},
	}); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestAssemble2DMetadata(t *testing.T) {
	sc := Assemble2D(testWorld(t))

	if sc.Metadata.GridSize != 5 {
		t.Errorf("expected grid_size 5, got %d", sc.Metadata.GridSize)
	}
	if sc.Metadata.BuildingCount != 2 {
		t.Errorf("expected building_count 2, got %d", sc.Metadata.BuildingCount)
	}
	if sc.Metadata.MergedCount != 1 {
		t.Errorf("expected merged_count 1, got %d", sc.Metadata.MergedCount)
	}
	if sc.Metadata.DoorCount != 12 {
		t.Errorf("expected door_count 12, got %d", sc.Metadata.DoorCount)
	}
	if !sc.Metadata.YAxisDown {
		t.Error("expected y axis down by default")
	}
	if sc.Metadata.GeneratedAt == "" {
		t.Error("generated_at is empty")
	}
}

func TestAssemble2DRecords(t *testing.T) {
	sc := Assemble2D(testWorld(t))
	if len(sc.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(sc.Records))
	}

	merged := sc.Records[0]
	if len(merged.Cells) != 2 {
		t.Errorf("merged record: expected 2 cells, got %d", len(merged.Cells))
	}
	if len(merged.Centers) != 2 {
		t.Errorf("merged record: expected 2 centers, got %d", len(merged.Centers))
	}
	if len(merged.Outline) < 8 {
		t.Errorf("merged record: outline has only %d points", len(merged.Outline))
	}
	if len(merged.BoundingRect) != 4 {
		t.Errorf("merged record: expected 4 bounding rect corners, got %d", len(merged.BoundingRect))
	}
	if merged.Peak != nil {
		t.Error("merged record: expected no congestion peak")
	}

	single := sc.Records[1]
	if single.Peak == nil {
		t.Fatal("single record: expected a congestion peak")
	}
	if single.Peak.Timestep != "08:05" {
		t.Errorf("single record: expected peak at 08:05, got %s", single.Peak.Timestep)
	}
	for _, d := range single.Doors {
		if d.WallDirection == "" || d.Orientation == "" {
			t.Errorf("door %d: missing placement (%q, %q)", d.ID, d.WallDirection, d.Orientation)
		}
		if len(d.CorridorPath) < 2 {
			t.Errorf("door %d: corridor path has %d points", d.ID, len(d.CorridorPath))
		}
	}
}

func TestAssemble2DCorridorTypes(t *testing.T) {
	sc := Assemble2D(testWorld(t))

	counts := map[string]int{}
	ids := map[string]bool{}
	for _, r := range sc.Records {
		for _, c := range r.Corridors {
			counts[c.Type]++
			if ids[c.ID] {
				t.Errorf("duplicate corridor id %s", c.ID)
			}
			ids[c.ID] = true
		}
	}
	for _, typ := range []string{CorridorSpine, CorridorBranch, CorridorDoor} {
		if counts[typ] == 0 {
			t.Errorf("no %s corridors", typ)
		}
	}
	if counts[CorridorDoor] != 12 {
		t.Errorf("expected 12 door corridors, got %d", counts[CorridorDoor])
	}
}

func TestAssemble2DJSON(t *testing.T) {
	sc := Assemble2D(testWorld(t))
	data, err := json.Marshal(sc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"metadata", "records"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}

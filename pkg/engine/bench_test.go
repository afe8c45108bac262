package engine

import (
	"io"
	"log"
	"testing"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/config"
)

// buildCampus fills every other column of an n by n grid with buildings and
// fuses vertical pairs, then routes between the two corner buildings.
func buildCampus(b *testing.B, n int) {
	b.Helper()
	s := config.Default()
	s.GridSize = n
	w := New(s)
	w.SetLogger(log.New(io.Discard, "", 0))

	for x := 0; x < n; x += 2 {
		for y := 0; y+1 < n; y += 2 {
			top, err := w.AddBuilding(campus.Cell{X: x, Y: y})
			if err != nil {
				b.Fatalf("add (%d,%d): %v", x, y, err)
			}
			bottom, err := w.AddBuilding(campus.Cell{X: x, Y: y + 1})
			if err != nil {
				b.Fatalf("add (%d,%d): %v", x, y+1, err)
			}
			if _, err := w.MergeBuildings(top.ID, bottom.ID, campus.Cell{X: x, Y: y}, campus.Cell{X: x, Y: y + 1}); err != nil {
				b.Fatalf("merge column %d at %d: %v", x, y, err)
			}
		}
	}

	first := w.Owner(campus.Cell{X: 0, Y: 0})
	last := w.Owner(campus.Cell{X: (n - 1) / 2 * 2, Y: 0})
	if _, err := w.Route(DoorRef{Record: first}, DoorRef{Record: last}); err != nil {
		b.Fatalf("route: %v", err)
	}
}

func BenchmarkCampus5(b *testing.B) {
	for b.Loop() {
		buildCampus(b, 5)
	}
}

func BenchmarkCampus10(b *testing.B) {
	for b.Loop() {
		buildCampus(b, 10)
	}
}

func BenchmarkCampus20(b *testing.B) {
	for b.Loop() {
		buildCampus(b, 20)
	}
}

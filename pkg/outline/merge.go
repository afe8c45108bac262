package outline

import (
	"errors"
	"math"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

var (
	// ErrNoMergeWall means an outline has no wall facing the shared edge.
	ErrNoMergeWall = errors.New("no wall faces the shared edge")
	// ErrNoSharedSpan means the two facing walls do not overlap along the edge.
	ErrNoSharedSpan = errors.New("facing walls do not overlap")
)

// SharedEdge describes the grid line two touching cells have in common.
type SharedEdge struct {
	Vertical bool    // the edge runs along y, cells sit side by side
	Coord    float64 // x of a vertical edge, y of a horizontal one
}

// EdgeBetween returns the edge shared by two 4-adjacent cells.
func EdgeBetween(a, b campus.Cell) SharedEdge {
	if a.X != b.X {
		return SharedEdge{Vertical: true, Coord: float64(max(a.X, b.X))}
	}
	return SharedEdge{Vertical: false, Coord: float64(max(a.Y, b.Y))}
}

// ChooseMergeWall returns the index of the outline wall that runs along the
// shared edge, lies inside cell and is closest to the edge line.
func ChooseMergeWall(path []geo.Point, edge SharedEdge, cell campus.Cell) (int, error) {
	best := -1
	bestDist := math.Inf(1)
	for i, w := range geo.Walls(path) {
		dir := w.Direction()
		if edge.Vertical && dir != geo.DirectionVertical {
			continue
		}
		if !edge.Vertical && dir != geo.DirectionHorizontal {
			continue
		}
		if w.Length() < geo.Eps || !inCell(w.Midpoint(), cell) {
			continue
		}
		across := w.A.Y
		if edge.Vertical {
			across = w.A.X
		}
		if d := math.Abs(across - edge.Coord); d < bestDist-geo.Eps {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0, ErrNoMergeWall
	}
	return best, nil
}

// Splice joins outline b into outline a across their facing walls wa and
// wb. Two connectors bridge the walls, each pulled in from the ends of the
// shared span by gapRatio of its length; b is walked starting right after
// its wall so both outlines keep their winding.
func Splice(a, b []geo.Point, wa, wb int, edge SharedEdge, gapRatio float64) ([]geo.Point, error) {
	a1, a2 := a[wa], a[(wa+1)%len(a)]
	b1, b2 := b[wb], b[(wb+1)%len(b)]

	along := func(p geo.Point) float64 {
		if edge.Vertical {
			return p.Y
		}
		return p.X
	}
	acrossOf := func(p geo.Point) float64 {
		if edge.Vertical {
			return p.X
		}
		return p.Y
	}
	at := func(across, al float64) geo.Point {
		if edge.Vertical {
			return geo.Point{X: across, Y: al}
		}
		return geo.Point{X: al, Y: across}
	}

	lo := math.Max(math.Min(along(a1), along(a2)), math.Min(along(b1), along(b2)))
	hi := math.Min(math.Max(along(a1), along(a2)), math.Max(along(b1), along(b2)))
	if hi-lo <= geo.Eps {
		return nil, ErrNoSharedSpan
	}
	gap := gapRatio * (hi - lo)
	j1, j2 := lo+gap, hi-gap
	if along(a1) > along(a2) {
		j1, j2 = j2, j1
	}
	xa, xb := acrossOf(a1), acrossOf(b1)

	out := make([]geo.Point, 0, len(a)+len(b)+4)
	out = append(out, a[:wa+1]...)
	out = append(out, at(xa, j1), at(xb, j1))
	for k := 1; k <= len(b); k++ {
		out = append(out, b[(wb+k)%len(b)])
	}
	out = append(out, at(xb, j2), at(xa, j2))
	out = append(out, a[wa+1:]...)
	return geo.Simplify(out, true), nil
}

// Merge finds the facing walls of two outlines touching at cellA and cellB
// and splices them into one closed path.
func Merge(a, b []geo.Point, cellA, cellB campus.Cell, gapRatio float64) ([]geo.Point, error) {
	edge := EdgeBetween(cellA, cellB)
	wa, err := ChooseMergeWall(a, edge, cellA)
	if err != nil {
		return nil, err
	}
	wb, err := ChooseMergeWall(b, edge, cellB)
	if err != nil {
		return nil, err
	}
	return Splice(a, b, wa, wb, edge, gapRatio)
}

func inCell(p geo.Point, c campus.Cell) bool {
	return p.X >= float64(c.X)-geo.Eps && p.X <= float64(c.X+1)+geo.Eps &&
		p.Y >= float64(c.Y)-geo.Eps && p.Y <= float64(c.Y+1)+geo.Eps
}

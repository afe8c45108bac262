package routing

import (
	"fmt"

	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// Side names one of the four unit edges of a grid cell.
type Side int

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

var sideNames = [...]string{"up", "down", "left", "right"}

func (s Side) String() string {
	if s < SideUp || s > SideRight {
		return fmt.Sprintf("side(%d)", int(s))
	}
	return sideNames[s]
}

// ParseSide turns a side name back into a Side.
func ParseSide(name string) (Side, error) {
	for i, n := range sideNames {
		if n == name {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("unknown side %q", name)
}

// Opposite returns the side across the cell.
func (s Side) Opposite() Side {
	switch s {
	case SideUp:
		return SideDown
	case SideDown:
		return SideUp
	case SideLeft:
		return SideRight
	}
	return SideLeft
}

// Vertical reports whether the edge runs along y.
func (s Side) Vertical() bool {
	return s == SideLeft || s == SideRight
}

// along returns the two directions a wall on this side extends in.
func (s Side) along() [2]Side {
	if s.Vertical() {
		return [2]Side{SideUp, SideDown}
	}
	return [2]Side{SideLeft, SideRight}
}

// WallRef addresses one edge of one cell. The same physical edge has a
// second ref from the cell on its other side.
type WallRef struct {
	Cell int  `json:"cell"`
	Side Side `json:"side"`
}

func (w WallRef) String() string {
	return fmt.Sprintf("%d:%s", w.Cell, w.Side)
}

// Grid holds per-cell usability flags for the wall search. Inset pulls
// drawn routes off the grid lines into the cells they follow.
type Grid struct {
	N      int
	Inset  float64
	usable [][4]bool
}

// NewGrid returns an n by n grid with every wall usable.
func NewGrid(n int) *Grid {
	g := &Grid{N: n, usable: make([][4]bool, n*n)}
	for i := range g.usable {
		g.usable[i] = [4]bool{true, true, true, true}
	}
	return g
}

// Block marks a wall and its mirror unusable.
func (g *Grid) Block(w WallRef) {
	if !g.inGrid(w.Cell) {
		return
	}
	g.usable[w.Cell][w.Side] = false
	if m, ok := g.Mirror(w); ok {
		g.usable[m.Cell][m.Side] = false
	}
}

// Usable reports whether the search may step onto w.
func (g *Grid) Usable(w WallRef) bool {
	return g.inGrid(w.Cell) && g.usable[w.Cell][w.Side]
}

// Flags returns the up, down, left and right flags of a cell.
func (g *Grid) Flags(cell int) [4]bool {
	if !g.inGrid(cell) {
		return [4]bool{}
	}
	return g.usable[cell]
}

// Step returns the cell next to cell in direction s.
func (g *Grid) Step(cell int, s Side) (int, bool) {
	x, y := cell%g.N, cell/g.N
	switch s {
	case SideUp:
		y--
	case SideDown:
		y++
	case SideLeft:
		x--
	case SideRight:
		x++
	}
	if x < 0 || y < 0 || x >= g.N || y >= g.N {
		return 0, false
	}
	return y*g.N + x, true
}

// Mirror returns the ref of the same edge seen from the neighbouring cell.
func (g *Grid) Mirror(w WallRef) (WallRef, bool) {
	n, ok := g.Step(w.Cell, w.Side)
	if !ok {
		return WallRef{}, false
	}
	return WallRef{Cell: n, Side: w.Side.Opposite()}, true
}

// Ends returns the two grid points bounding a wall.
func (g *Grid) Ends(w WallRef) (geo.Point, geo.Point) {
	x, y := float64(w.Cell%g.N), float64(w.Cell/g.N)
	switch w.Side {
	case SideUp:
		return geo.Pt(x, y), geo.Pt(x+1, y)
	case SideDown:
		return geo.Pt(x, y+1), geo.Pt(x+1, y+1)
	case SideLeft:
		return geo.Pt(x, y), geo.Pt(x, y+1)
	}
	return geo.Pt(x+1, y), geo.Pt(x+1, y+1)
}

// Midpoint returns the middle of a wall.
func (g *Grid) Midpoint(w WallRef) geo.Point {
	a, b := g.Ends(w)
	return geo.MidPoint(a, b)
}

// InsetEnds returns the ends of a wall moved Inset toward its cell's
// center and pulled Inset in from both corners.
func (g *Grid) InsetEnds(w WallRef) (geo.Point, geo.Point) {
	a, b := g.Ends(w)
	if g.Inset <= 0 {
		return a, b
	}
	x, y := float64(w.Cell%g.N), float64(w.Cell/g.N)
	in := geo.Pt(x+0.5, y+0.5).Sub(geo.MidPoint(a, b)).Unit().Scale(g.Inset)
	along := b.Sub(a).Unit().Scale(g.Inset)
	return a.Add(in).Add(along), b.Add(in).Sub(along)
}

// insetEndNear returns the inset end of w closer to p.
func (g *Grid) insetEndNear(w WallRef, p geo.Point) geo.Point {
	a, b := g.InsetEnds(w)
	if a.Distance(p) <= b.Distance(p) {
		return a
	}
	return b
}

func (g *Grid) inGrid(cell int) bool {
	return cell >= 0 && cell < len(g.usable)
}

// neighbors lists the walls reachable from w in a fixed order: for each
// direction along w, the continuing wall of the next cell and the wall of
// the next cell that turns back across w's end, each followed by its
// mirror.
func (g *Grid) neighbors(w WallRef) []WallRef {
	out := make([]WallRef, 0, 8)
	for _, a := range w.Side.along() {
		next, ok := g.Step(w.Cell, a)
		if !ok {
			continue
		}
		for _, cand := range []WallRef{{Cell: next, Side: w.Side}, {Cell: next, Side: a.Opposite()}} {
			out = append(out, cand)
			if m, ok := g.Mirror(cand); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

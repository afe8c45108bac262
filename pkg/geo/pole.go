package geo

import (
	"container/heap"
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var (
	// ErrDegenerate is returned for rings with too few points or no area.
	ErrDegenerate = errors.New("degenerate ring")
	// ErrSelfIntersecting is returned for rings whose edges cross.
	ErrSelfIntersecting = errors.New("self-intersecting ring")
)

// maxPoleCells caps the refinement so a tiny precision cannot run away.
const maxPoleCells = 10000

// PoleOfInaccessibility returns the interior point of ring farthest from its
// edges, refined until the remaining gain is below precision. The ring is
// the open vertex list of a closed polygon.
func PoleOfInaccessibility(ring []Point, precision float64) (Point, error) {
	if len(ring) < 3 {
		return Point{}, ErrDegenerate
	}
	poly := NewPolygon(ring...)
	if poly.Area() < Eps*Eps {
		return Point{}, ErrDegenerate
	}
	if !poly.IsSimple() {
		return Point{}, ErrSelfIntersecting
	}
	if precision <= 0 {
		precision = 0.01
	}

	r := toRing(ring)
	bound := r.Bound()
	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]
	cellSize := math.Min(width, height)
	if cellSize < Eps {
		return Point{}, ErrDegenerate
	}
	h := cellSize / 2

	queue := &cellQueue{}
	for x := bound.Min[0]; x < bound.Max[0]; x += cellSize {
		for y := bound.Min[1]; y < bound.Max[1]; y += cellSize {
			heap.Push(queue, newPoleCell(x+h, y+h, h, r))
		}
	}

	centroid, _ := planar.CentroidArea(r)
	best := newPoleCell(centroid[0], centroid[1], 0, r)
	boxCenter := newPoleCell(bound.Min[0]+width/2, bound.Min[1]+height/2, 0, r)
	if boxCenter.d > best.d {
		best = boxCenter
	}

	for processed := 0; queue.Len() > 0 && processed < maxPoleCells; processed++ {
		c := heap.Pop(queue).(poleCell)
		if c.d > best.d {
			best = c
		}
		if c.max-best.d <= precision {
			continue
		}
		h = c.h / 2
		heap.Push(queue, newPoleCell(c.x-h, c.y-h, h, r))
		heap.Push(queue, newPoleCell(c.x+h, c.y-h, h, r))
		heap.Push(queue, newPoleCell(c.x-h, c.y+h, h, r))
		heap.Push(queue, newPoleCell(c.x+h, c.y+h, h, r))
	}

	if best.d <= 0 {
		return Point{}, ErrDegenerate
	}
	return Point{X: best.x, Y: best.y}, nil
}

func toRing(pts []Point) orb.Ring {
	r := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		r = append(r, orb.Point{p.X, p.Y})
	}
	return append(r, r[0])
}

// poleCell is a square candidate region centered on (x, y) with half size h.
type poleCell struct {
	x, y float64
	h    float64
	d    float64 // signed distance from center to the ring, negative outside
	max  float64 // best distance any point in the cell could reach
}

func newPoleCell(x, y, h float64, r orb.Ring) poleCell {
	d := signedRingDistance(orb.Point{x, y}, r)
	return poleCell{x: x, y: y, h: h, d: d, max: d + h*math.Sqrt2}
}

func signedRingDistance(p orb.Point, r orb.Ring) float64 {
	minDist := math.Inf(1)
	for i := 0; i+1 < len(r); i++ {
		if d := planar.DistanceFromSegment(r[i], r[i+1], p); d < minDist {
			minDist = d
		}
	}
	if planar.RingContains(r, p) {
		return minDist
	}
	return -minDist
}

// cellQueue is a max-heap of poleCell ordered by potential distance.
type cellQueue []poleCell

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].max > q[j].max }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *cellQueue) Push(x any) {
	*q = append(*q, x.(poleCell))
}

func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

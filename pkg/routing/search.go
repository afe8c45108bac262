package routing

import (
	"container/heap"

	"github.com/zyedidia/generic/mapset"

	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// Route is a chain of walls from a start wall toward a goal wall. Reached
// is false when the goal could not be found; Walls then ends at the
// explored wall closest to the goal.
type Route struct {
	Walls   []WallRef `json:"walls"`
	Reached bool      `json:"reached"`
}

type frontierItem struct {
	wall     WallRef
	priority float64
	seq      int
}

// frontier is a min-heap on priority, ties broken by insertion order.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

// FindWallPath runs a greedy best-first search from start to goal. The
// priority is only the Manhattan distance from a wall's midpoint to the
// goal's, so the route found is not guaranteed to be the shortest. The
// goal may be entered even when it is flagged unusable.
func FindWallPath(g *Grid, start, goal WallRef) Route {
	if start == goal {
		return Route{Walls: []WallRef{start}, Reached: true}
	}
	target := g.Midpoint(goal)
	priority := func(w WallRef) float64 {
		return g.Midpoint(w).Manhattan(target)
	}

	parent := make(map[WallRef]WallRef)
	visited := mapset.New[WallRef]()
	visited.Put(start)

	seq := 0
	open := &frontier{}
	heap.Push(open, frontierItem{wall: start, priority: priority(start), seq: seq})

	closest, closestDist := start, priority(start)
	for open.Len() > 0 {
		cur := heap.Pop(open).(frontierItem)
		for _, n := range g.neighbors(cur.wall) {
			if visited.Has(n) {
				continue
			}
			if n != goal && !g.Usable(n) {
				continue
			}
			visited.Put(n)
			parent[n] = cur.wall
			if n == goal {
				return Route{Walls: backtrack(parent, start, goal), Reached: true}
			}
			p := priority(n)
			if p < closestDist {
				closest, closestDist = n, p
			}
			seq++
			heap.Push(open, frontierItem{wall: n, priority: p, seq: seq})
		}
	}
	return Route{Walls: backtrack(parent, start, closest), Reached: false}
}

func backtrack(parent map[WallRef]WallRef, start, end WallRef) []WallRef {
	path := []WallRef{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Points turns a wall route into a drawable path that runs along the walls
// at the grid's inset: the start wall's midpoint, the inset corners either
// side of the grid vertex shared by each pair of consecutive walls, and the
// last wall's midpoint, joined by right-angle corners. With no inset the
// corners collapse onto the shared vertex.
func Points(g *Grid, route Route, yDown bool) []geo.Point {
	if len(route.Walls) == 0 {
		return nil
	}
	mid := func(w WallRef) geo.Point {
		a, b := g.InsetEnds(w)
		return geo.MidPoint(a, b)
	}
	pts := []geo.Point{mid(route.Walls[0])}
	for i := 0; i+1 < len(route.Walls); i++ {
		a, b := route.Walls[i], route.Walls[i+1]
		if v, ok := sharedVertex(g, a, b); ok {
			pts = append(pts, g.insetEndNear(a, v), g.insetEndNear(b, v))
		}
	}
	pts = append(pts, mid(route.Walls[len(route.Walls)-1]))
	return Join(pts, yDown)
}

// Join connects consecutive points with elbows where they are not aligned
// and simplifies the result as an open path.
func Join(pts []geo.Point, yDown bool) []geo.Point {
	if len(pts) == 0 {
		return nil
	}
	out := []geo.Point{pts[0]}
	for i := 0; i+1 < len(pts); i++ {
		elbow := geo.Elbow(pts[i], pts[i+1], yDown)
		out = append(out, elbow[1:]...)
	}
	return geo.Simplify(out, false)
}

// sharedVertex returns the grid point where two touching walls meet. The
// two refs of one physical edge share no single vertex.
func sharedVertex(g *Grid, a, b WallRef) (geo.Point, bool) {
	a1, a2 := g.Ends(a)
	b1, b2 := g.Ends(b)
	if (a1.Equal(b1) && a2.Equal(b2)) || (a1.Equal(b2) && a2.Equal(b1)) {
		return geo.Point{}, false
	}
	for _, p := range []geo.Point{a1, a2} {
		if p.Equal(b1) || p.Equal(b2) {
			return p, true
		}
	}
	return geo.Point{}, false
}

package routing

import (
	"container/heap"
	"math"
	"sort"

	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// Graph is an undirected graph over corridor polylines. Nodes are corridor
// vertices merged within tolerance; edges follow the polylines and split
// where another polyline ends on them.
type Graph struct {
	Nodes []geo.Point
	adj   [][]graphEdge
}

type graphEdge struct {
	to   int
	cost float64
}

// BuildGraph indexes the vertices of every polyline and connects each
// vertex to its neighbours along the segments it lies on.
func BuildGraph(polylines [][]geo.Point) *Graph {
	idx := newNodeIndex(geo.Eps)
	for _, pl := range polylines {
		for _, p := range pl {
			idx.add(p)
		}
	}

	g := &Graph{Nodes: idx.nodes, adj: make([][]graphEdge, len(idx.nodes))}
	seen := make(map[[2]int]bool)
	for _, pl := range polylines {
		for i := 0; i+1 < len(pl); i++ {
			a, b := pl[i], pl[i+1]
			on := idx.onSegment(a, b)
			for k := 0; k+1 < len(on); k++ {
				g.connect(on[k], on[k+1], seen)
			}
		}
	}
	return g
}

func (g *Graph) connect(u, v int, seen map[[2]int]bool) {
	if u == v {
		return
	}
	key := [2]int{min(u, v), max(u, v)}
	if seen[key] {
		return
	}
	seen[key] = true
	cost := g.Nodes[u].Distance(g.Nodes[v])
	g.adj[u] = append(g.adj[u], graphEdge{to: v, cost: cost})
	g.adj[v] = append(g.adj[v], graphEdge{to: u, cost: cost})
}

// Nearest returns the node closest to p, or -1 for an empty graph.
func (g *Graph) Nearest(p geo.Point) int {
	best, bestDist := -1, math.Inf(1)
	for i, n := range g.Nodes {
		if d := p.Distance(n); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Degree returns the number of edges at node i.
func (g *Graph) Degree(i int) int {
	return len(g.adj[i])
}

type distItem struct {
	node int
	dist float64
}

type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) {
	*h = append(*h, x.(distItem))
}

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ShortestPath runs Dijkstra between two nodes and returns the node
// positions along the way.
func (g *Graph) ShortestPath(from, to int) ([]geo.Point, bool) {
	if from < 0 || to < 0 || from >= len(g.Nodes) || to >= len(g.Nodes) {
		return nil, false
	}
	dist := make([]float64, len(g.Nodes))
	prev := make([]int, len(g.Nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[from] = 0

	h := &distHeap{{node: from}}
	for h.Len() > 0 {
		cur := heap.Pop(h).(distItem)
		if cur.dist > dist[cur.node] {
			continue
		}
		if cur.node == to {
			break
		}
		for _, e := range g.adj[cur.node] {
			if nd := cur.dist + e.cost; nd < dist[e.to] {
				dist[e.to] = nd
				prev[e.to] = cur.node
				heap.Push(h, distItem{node: e.to, dist: nd})
			}
		}
	}
	if math.IsInf(dist[to], 1) {
		return nil, false
	}
	var path []geo.Point
	for n := to; n >= 0; n = prev[n] {
		path = append(path, g.Nodes[n])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// IndoorRoute finds the shortest walk along corridor polylines between the
// graph nodes nearest to from and to.
func IndoorRoute(polylines [][]geo.Point, from, to geo.Point) ([]geo.Point, bool) {
	g := BuildGraph(polylines)
	path, ok := g.ShortestPath(g.Nearest(from), g.Nearest(to))
	if !ok {
		return nil, false
	}
	return geo.Simplify(path, false), true
}

// nodeIndex deduplicates points with a bucket grid sized to the tolerance,
// checking the neighbouring buckets so near points across a bucket border
// still merge.
type nodeIndex struct {
	tol     float64
	nodes   []geo.Point
	buckets map[[2]int][]int
}

func newNodeIndex(tol float64) *nodeIndex {
	return &nodeIndex{tol: tol, buckets: make(map[[2]int][]int)}
}

func (ix *nodeIndex) key(p geo.Point) [2]int {
	size := ix.tol * 2
	return [2]int{int(math.Floor(p.X / size)), int(math.Floor(p.Y / size))}
}

func (ix *nodeIndex) find(p geo.Point) int {
	k := ix.key(p)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for _, i := range ix.buckets[[2]int{k[0] + dx, k[1] + dy}] {
				if ix.nodes[i].Distance(p) <= ix.tol {
					return i
				}
			}
		}
	}
	return -1
}

func (ix *nodeIndex) add(p geo.Point) int {
	if i := ix.find(p); i >= 0 {
		return i
	}
	ix.nodes = append(ix.nodes, p)
	i := len(ix.nodes) - 1
	k := ix.key(p)
	ix.buckets[k] = append(ix.buckets[k], i)
	return i
}

// onSegment returns the nodes lying on segment a-b ordered from a.
func (ix *nodeIndex) onSegment(a, b geo.Point) []int {
	seg := geo.Seg(a, b)
	var on []int
	for i, n := range ix.nodes {
		if seg.DistanceTo(n) <= ix.tol {
			on = append(on, i)
		}
	}
	sort.Slice(on, func(i, j int) bool {
		return geo.Project(ix.nodes[on[i]], a, b) < geo.Project(ix.nodes[on[j]], a, b)
	})
	return on
}

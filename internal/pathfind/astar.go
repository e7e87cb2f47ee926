// Package pathfind finds least-cost routes across integer cost grids.
package pathfind

import (
	"container/heap"
	"errors"
	"fmt"

	"zgrid/internal/kernel"
	"zgrid/pkg/zarray"
)

// ErrNoPath is returned when the frontier empties before the goal is reached.
var ErrNoPath = errors.New("pathfind: no path")

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// CostFunc returns the cost of stepping onto p.
type CostFunc func(p Point) int

// Path is a route from start to goal inclusive.
type Path struct {
	Points []Point
	Cost   int
}

var neighbours = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// AStar searches g from start to goal over the 4-neighbourhood. Stepping onto
// a cell costs its value; stepping off the grid costs oob, which must be
// positive so the search stays finite.
func AStar[T kernel.Integer](g *zarray.Grid2D[T], start, goal Point, oob T) (Path, error) {
	if oob <= 0 {
		return Path{}, fmt.Errorf("pathfind: out-of-bounds cost must be positive, got %d", oob)
	}
	return Search(start, goal, func(p Point) int {
		return int(g.BoundedGetOr(p.X, p.Y, oob))
	})
}

// Search runs A* with a Manhattan heuristic over an unbounded 4-connected
// plane. Ties on f are broken by insertion order.
func Search(start, goal Point, cost CostFunc) (Path, error) {
	open := &frontier{}
	best := map[Point]int{start: 0}
	parent := map[Point]Point{}
	closed := map[Point]bool{}
	seq := 0
	heap.Push(open, &node{p: start, f: manhattan(start, goal)})

	for open.Len() > 0 {
		n := heap.Pop(open).(*node)
		if closed[n.p] {
			continue
		}
		if n.p == goal {
			return Path{Points: trace(parent, start, goal), Cost: n.g}, nil
		}
		closed[n.p] = true
		for _, d := range neighbours {
			next := Point{n.p.X + d.X, n.p.Y + d.Y}
			if closed[next] {
				continue
			}
			g := n.g + cost(next)
			if prev, ok := best[next]; ok && prev <= g {
				continue
			}
			best[next] = g
			parent[next] = n.p
			seq++
			heap.Push(open, &node{p: next, g: g, f: g + manhattan(next, goal), seq: seq})
		}
	}
	return Path{}, ErrNoPath
}

func trace(parent map[Point]Point, start, goal Point) []Point {
	var rev []Point
	for p := goal; p != start; p = parent[p] {
		rev = append(rev, p)
	}
	rev = append(rev, start)
	out := make([]Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}

type node struct {
	p    Point
	g, f int
	seq  int
}

type frontier []*node

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(*node)) }

func (q *frontier) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

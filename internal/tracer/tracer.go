package tracer

import (
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/outliner/internal/geo"
)

// corner is a grid corner point; cell (x, y) has corners (x..x+1, y..y+1).
type corner struct {
	x, y int
}

// edge is a directed unit edge between adjacent corners. Edges are
// emitted so that the occupied region lies on the left, which makes
// outer boundaries counter-clockwise and holes clockwise.
type edge struct {
	from, to corner
}

type tracedLoop struct {
	corners []corner
	area    int // twice the signed area; positive means counter-clockwise
}

// Trace walks the grid, stitches the boundary of every occupied region
// into closed loops, and appends them to the linked structure rooted at
// root: one polygon per outer boundary, outer loop first, then the
// holes it contains. The root polygon is caller-allocated; additional
// polygons are linked after it. transform maps grid corner coordinates
// to output coordinates and may be nil for identity. Returns the number
// of polygons produced (0 for an empty grid, leaving root untouched).
func Trace(g Grid, root *geo.LinkedPolygon, transform func(geo.Point) geo.Point) int {
	edges := boundaryEdges(g)
	if len(edges) == 0 {
		return 0
	}

	loops := stitchLoops(edges)

	var outers []tracedLoop
	var holes []tracedLoop
	for _, l := range loops {
		if l.area > 0 {
			outers = append(outers, l)
		} else {
			holes = append(holes, l)
		}
	}

	// Attach each hole to the innermost outer boundary containing it.
	holesByOuter := make([][]tracedLoop, len(outers))
	for _, h := range holes {
		px, py := interiorPoint(h)
		best := -1
		for i, o := range outers {
			if !containsPoint(o.corners, px, py) {
				continue
			}
			if best < 0 || o.area < outers[best].area {
				best = i
			}
		}
		if best < 0 {
			// cannot happen for edges derived from occupied cells
			panic("tracer: hole outside every outer boundary")
		}
		holesByOuter[best] = append(holesByOuter[best], h)
	}

	if transform == nil {
		transform = func(p geo.Point) geo.Point { return p }
	}

	polygon := root
	for i, outer := range outers {
		if i > 0 {
			polygon = geo.AddNewPolygon(polygon)
		}
		appendLoop(polygon, outer, transform)
		for _, h := range holesByOuter[i] {
			appendLoop(polygon, h, transform)
		}
	}

	log.Debug().
		Int("polygons", len(outers)).
		Int("holes", len(holes)).
		Int("boundary_edges", len(edges)).
		Msg("Grid traced")

	return len(outers)
}

// appendLoop adds one loop with the traced corner sequence to the polygon.
func appendLoop(polygon *geo.LinkedPolygon, l tracedLoop, transform func(geo.Point) geo.Point) {
	loop := polygon.AddNewLoop()
	for _, c := range l.corners {
		loop.AddCoord(transform(geo.Point{X: float64(c.x), Y: float64(c.y)}))
	}
}

// boundaryEdges collects the directed boundary edges of all occupied
// cells in scan order: every side whose neighbor cell is empty, oriented
// with the occupied cell on the left.
func boundaryEdges(g Grid) []edge {
	var edges []edge
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Occupied(x, y) {
				continue
			}
			if !g.Occupied(x, y-1) { // south side, walk east
				edges = append(edges, edge{corner{x, y}, corner{x + 1, y}})
			}
			if !g.Occupied(x+1, y) { // east side, walk north
				edges = append(edges, edge{corner{x + 1, y}, corner{x + 1, y + 1}})
			}
			if !g.Occupied(x, y+1) { // north side, walk west
				edges = append(edges, edge{corner{x + 1, y + 1}, corner{x, y + 1}})
			}
			if !g.Occupied(x-1, y) { // west side, walk south
				edges = append(edges, edge{corner{x, y + 1}, corner{x, y}})
			}
		}
	}
	return edges
}

// stitchLoops links the directed edges into closed loops. Where two
// loops touch at a corner the sharpest left turn is taken, which keeps
// diagonally touching regions in separate loops. Collinear runs are
// compacted so loops carry corner vertices only.
func stitchLoops(edges []edge) []tracedLoop {
	outgoing := make(map[corner][]int, len(edges))
	for i, e := range edges {
		outgoing[e.from] = append(outgoing[e.from], i)
	}
	used := make([]bool, len(edges))

	var loops []tracedLoop
	for i := range edges {
		if used[i] {
			continue
		}
		start := edges[i]
		used[i] = true

		corners := []corner{start.from}
		current := start
		for current.to != start.from {
			corners = append(corners, current.to)
			next := pickNext(edges, outgoing, used, current)
			used[next] = true
			current = edges[next]
		}

		corners = compact(corners)
		loops = append(loops, tracedLoop{corners: corners, area: doubleArea(corners)})
	}
	return loops
}

// pickNext chooses the unused edge leaving current.to with the sharpest
// left turn relative to the incoming direction.
func pickNext(edges []edge, outgoing map[corner][]int, used []bool, current edge) int {
	dx := current.to.x - current.from.x
	dy := current.to.y - current.from.y

	best := -1
	bestScore := -1
	for _, idx := range outgoing[current.to] {
		if used[idx] {
			continue
		}
		e := edges[idx]
		nx := e.to.x - e.from.x
		ny := e.to.y - e.from.y

		var score int
		switch cross := dx*ny - dy*nx; {
		case cross > 0: // left turn
			score = 3
		case cross == 0 && dx*nx+dy*ny > 0: // straight
			score = 2
		case cross < 0: // right turn
			score = 1
		default: // reverse
			score = 0
		}
		if score > bestScore {
			bestScore = score
			best = idx
		}
	}
	if best < 0 {
		panic("tracer: open boundary chain")
	}
	return best
}

// compact removes vertices that continue the previous direction, so
// only true corners remain. Treats the sequence as circular.
func compact(corners []corner) []corner {
	n := len(corners)
	out := make([]corner, 0, n)
	for i := 0; i < n; i++ {
		prev := corners[(i-1+n)%n]
		next := corners[(i+1)%n]
		c := corners[i]
		inDX, inDY := sign(c.x-prev.x), sign(c.y-prev.y)
		outDX, outDY := sign(next.x-c.x), sign(next.y-c.y)
		if inDX == outDX && inDY == outDY {
			continue
		}
		out = append(out, c)
	}
	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// doubleArea returns twice the signed shoelace area of the loop.
func doubleArea(corners []corner) int {
	area := 0
	n := len(corners)
	for i := 0; i < n; i++ {
		a := corners[i]
		b := corners[(i+1)%n]
		area += a.x*b.y - b.x*a.y
	}
	return area
}

// interiorPoint returns the center of the occupied cell adjacent to the
// first boundary segment of the loop. Edges keep the occupied region on
// their left, so for a hole this lands in the occupied region around
// it, inside the outer boundary the hole belongs to.
func interiorPoint(l tracedLoop) (float64, float64) {
	a := l.corners[0]
	b := l.corners[1]
	dx, dy := sign(b.x-a.x), sign(b.y-a.y)
	mx := float64(a.x) + float64(dx)*0.5
	my := float64(a.y) + float64(dy)*0.5
	return mx + float64(-dy)*0.5, my + float64(dx)*0.5
}

// containsPoint reports whether (px, py) is inside the loop using an
// even-odd ray cast.
func containsPoint(corners []corner, px, py float64) bool {
	inside := false
	n := len(corners)
	for i := 0; i < n; i++ {
		a := corners[i]
		b := corners[(i+1)%n]
		ay, by := float64(a.y), float64(b.y)
		if (ay > py) == (by > py) {
			continue
		}
		ax, bx := float64(a.x), float64(b.x)
		crossX := ax + (py-ay)/(by-ay)*(bx-ax)
		if px < crossX {
			inside = !inside
		}
	}
	return inside
}

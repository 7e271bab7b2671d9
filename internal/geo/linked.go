package geo

// Point holds one 2D coordinate value.
type Point struct {
	X float64
	Y float64
}

// LinkedCoord is a single coordinate in a loop's boundary sequence.
// Each node owns the next coordinate of its loop, or nil at the tail.
type LinkedCoord struct {
	Vertex Point
	Next   *LinkedCoord
}

// LinkedLoop is one closed boundary path: a chain of coordinates with
// cached First/Last for O(1) tail append, plus a link to the next loop
// of the owning polygon.
type LinkedLoop struct {
	First *LinkedCoord
	Last  *LinkedCoord
	Next  *LinkedLoop
}

// LinkedPolygon is one (possibly multi-loop) polygon: a chain of loops
// with cached First/Last, plus a link to the next polygon in the
// overall structure. The first loop of a polygon is its outer boundary;
// any following loops are holes.
//
// The head polygon of a chain is allocated by the caller and stays
// owned by the caller; every polygon reachable through Next, and every
// loop and coordinate anywhere in the structure, belongs to the
// structure and is released by Destroy.
type LinkedPolygon struct {
	First *LinkedLoop
	Last  *LinkedLoop
	Next  *LinkedPolygon
}

// AddNewPolygon links a fresh polygon after p and returns it.
// p must be the current tail of the chain; a non-nil p.Next is caller
// misuse and panics.
func AddNewPolygon(p *LinkedPolygon) *LinkedPolygon {
	if p.Next != nil {
		panic("geo: polygon already has a successor")
	}
	next := &LinkedPolygon{}
	p.Next = next
	return next
}

// AddNewLoop appends a fresh loop to the polygon and returns it.
func (p *LinkedPolygon) AddNewLoop() *LinkedLoop {
	return p.AddLoop(&LinkedLoop{})
}

// AddLoop appends an existing loop to the polygon's loop chain.
// The loop must be fresh: its own Next is assumed nil. Loops are only
// ever appended at the tail, so loop order is insertion order.
func (p *LinkedPolygon) AddLoop(loop *LinkedLoop) *LinkedLoop {
	last := p.Last
	if last == nil {
		if p.First != nil {
			panic("geo: polygon has a first loop but no last")
		}
		p.First = loop
	} else {
		last.Next = loop
	}
	p.Last = loop
	return loop
}

// AddCoord appends a copy of vertex to the loop's coordinate chain and
// returns the new node. Coordinate order defines the boundary path;
// append is strictly tail-order and no closure check is made.
func (l *LinkedLoop) AddCoord(vertex Point) *LinkedCoord {
	coord := &LinkedCoord{Vertex: vertex}
	last := l.Last
	if last == nil {
		if l.First != nil {
			panic("geo: loop has a first coordinate but no last")
		}
		l.First = coord
	} else {
		last.Next = coord
	}
	l.Last = coord
	return coord
}

// destroyCoords severs the loop's coordinate chain so each node can be
// collected independently. The loop struct itself is left to the caller.
func (l *LinkedLoop) destroyCoords() {
	var next *LinkedCoord
	for coord := l.First; coord != nil; coord = next {
		next = coord.Next
		coord.Next = nil
	}
	l.First = nil
	l.Last = nil
}

// Destroy tears down the whole structure starting at p. Every loop and
// coordinate, and every polygon after the first, has its links severed
// and is dropped; p itself is caller-owned, so it is only reset to the
// zero value and stays usable as an allocation. Each Next is captured
// before the current node's links are cleared. Destroy is not
// idempotent: call it exactly once per structure.
func Destroy(p *LinkedPolygon) {
	var nextPolygon *LinkedPolygon
	var nextLoop *LinkedLoop
	for current := p; current != nil; current = nextPolygon {
		for loop := current.First; loop != nil; loop = nextLoop {
			loop.destroyCoords()
			nextLoop = loop.Next
			loop.Next = nil
		}
		nextPolygon = current.Next
		current.First = nil
		current.Last = nil
		current.Next = nil
	}
}

// CountPolygons returns the length of the polygon chain starting at p.
func CountPolygons(p *LinkedPolygon) int {
	count := 0
	for ; p != nil; p = p.Next {
		count++
	}
	return count
}

// CountLoops returns the number of loops in the polygon.
func (p *LinkedPolygon) CountLoops() int {
	count := 0
	for loop := p.First; loop != nil; loop = loop.Next {
		count++
	}
	return count
}

// CountCoords returns the number of coordinates in the loop.
func (l *LinkedLoop) CountCoords() int {
	count := 0
	for coord := l.First; coord != nil; coord = coord.Next {
		count++
	}
	return count
}

package tracer

import (
	"testing"

	"github.com/woozymasta/outliner/internal/geo"
)

func loopCorners(l *geo.LinkedLoop) []geo.Point {
	var out []geo.Point
	for c := l.First; c != nil; c = c.Next {
		out = append(out, c.Vertex)
	}
	return out
}

func TestParseRows(t *testing.T) {
	if _, err := ParseRows(nil); err == nil {
		t.Error("expected error for no rows")
	}
	if _, err := ParseRows([]string{"", ""}); err == nil {
		t.Error("expected error for empty rows")
	}

	g, err := ParseRows([]string{"#.", "###"})
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("got %dx%d grid, want 3x2", g.Width, g.Height)
	}
	// top row "#." is y=1, padded with an empty cell
	if !g.Occupied(0, 1) || g.Occupied(1, 1) || g.Occupied(2, 1) {
		t.Error("top row occupancy wrong")
	}
	if !g.Occupied(0, 0) || !g.Occupied(1, 0) || !g.Occupied(2, 0) {
		t.Error("bottom row occupancy wrong")
	}
	if g.Occupied(-1, 0) || g.Occupied(0, -1) || g.Occupied(3, 0) {
		t.Error("out of bounds cells must be empty")
	}
	if g.Extent() != 3 {
		t.Errorf("Extent = %v, want 3", g.Extent())
	}
}

func TestTraceSingleCell(t *testing.T) {
	g, err := ParseRows([]string{"#"})
	if err != nil {
		t.Fatal(err)
	}
	root := &geo.LinkedPolygon{}
	if n := Trace(g, root, nil); n != 1 {
		t.Fatalf("Trace returned %d polygons, want 1", n)
	}
	if n := geo.CountPolygons(root); n != 1 {
		t.Fatalf("CountPolygons = %d, want 1", n)
	}
	if n := root.CountLoops(); n != 1 {
		t.Fatalf("CountLoops = %d, want 1", n)
	}
	got := loopCorners(root.First)
	want := []geo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d corners, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTraceBarCompactsCollinearRuns(t *testing.T) {
	g, err := ParseRows([]string{"###"})
	if err != nil {
		t.Fatal(err)
	}
	root := &geo.LinkedPolygon{}
	Trace(g, root, nil)

	got := loopCorners(root.First)
	want := []geo.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("got %d corners, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTraceRingProducesHole(t *testing.T) {
	g, err := ParseRows([]string{
		"###",
		"#.#",
		"###",
	})
	if err != nil {
		t.Fatal(err)
	}
	root := &geo.LinkedPolygon{}
	if n := Trace(g, root, nil); n != 1 {
		t.Fatalf("Trace returned %d polygons, want 1", n)
	}
	if n := root.CountLoops(); n != 2 {
		t.Fatalf("CountLoops = %d, want outer + hole", n)
	}

	outer := loopCorners(root.First)
	hole := loopCorners(root.First.Next)
	if len(outer) != 4 || len(hole) != 4 {
		t.Fatalf("got %d outer and %d hole corners, want 4 and 4", len(outer), len(hole))
	}
	if outer[0] != (geo.Point{X: 0, Y: 0}) {
		t.Errorf("outer loop starts at %v, want (0,0)", outer[0])
	}
	// hole corners all on the center cell boundary
	for _, c := range hole {
		if c.X < 1 || c.X > 2 || c.Y < 1 || c.Y > 2 {
			t.Errorf("hole corner %v outside center cell boundary", c)
		}
	}
}

func TestTraceTwoIslands(t *testing.T) {
	g, err := ParseRows([]string{"#.#"})
	if err != nil {
		t.Fatal(err)
	}
	root := &geo.LinkedPolygon{}
	if n := Trace(g, root, nil); n != 2 {
		t.Fatalf("Trace returned %d polygons, want 2", n)
	}
	if n := geo.CountPolygons(root); n != 2 {
		t.Fatalf("CountPolygons = %d, want 2", n)
	}
	if root.CountLoops() != 1 || root.Next.CountLoops() != 1 {
		t.Error("each island should carry exactly one loop")
	}
	if root.First.CountCoords() != 4 || root.Next.First.CountCoords() != 4 {
		t.Error("each island should be a 4-corner square")
	}
}

func TestTraceNestedIsland(t *testing.T) {
	// a 5x5 ring with an island cell inside the hole
	g, err := ParseRows([]string{
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}
	root := &geo.LinkedPolygon{}
	if n := Trace(g, root, nil); n != 2 {
		t.Fatalf("Trace returned %d polygons, want ring + island", n)
	}

	var loops []int
	for p := root; p != nil; p = p.Next {
		loops = append(loops, p.CountLoops())
	}
	// one polygon carries outer + hole, the other just the island square
	if !(loops[0] == 2 && loops[1] == 1) && !(loops[0] == 1 && loops[1] == 2) {
		t.Errorf("loop distribution %v, want [2 1] in either order", loops)
	}
}

func TestTraceEmptyGrid(t *testing.T) {
	g, err := ParseRows([]string{"...", "..."})
	if err != nil {
		t.Fatal(err)
	}
	root := &geo.LinkedPolygon{}
	if n := Trace(g, root, nil); n != 0 {
		t.Fatalf("Trace returned %d polygons, want 0", n)
	}
	if root.First != nil || root.Next != nil {
		t.Error("empty grid must leave root untouched")
	}
}

func TestTraceTransform(t *testing.T) {
	g, err := ParseRows([]string{"#"})
	if err != nil {
		t.Fatal(err)
	}
	root := &geo.LinkedPolygon{}
	Trace(g, root, func(p geo.Point) geo.Point {
		return geo.Point{X: p.X * 10, Y: p.Y * 10}
	})
	got := loopCorners(root.First)
	want := []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, got[i], want[i])
		}
	}
}

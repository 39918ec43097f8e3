package merge

import "testing"

// S3: two overlapping rectangles merge into one with total=2.
func TestMerge_S3_OverlappingRectanglesMerge(t *testing.T) {
	rects := []Rectangle{
		{X: 0, Y: 0, Width: 10, Height: 10, Total: 1},
		{X: 1, Y: 1, Width: 10, Height: 10, Total: 1},
	}
	got := Merge(rects, 0.5)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0].Total != 2 {
		t.Errorf("Total = %d, want 2", got[0].Total)
	}
	if got[0].Width != 10 || got[0].Height != 10 {
		t.Errorf("size = %dx%d, want 10x10", got[0].Width, got[0].Height)
	}
	if got[0].X != 0 && got[0].X != 1 {
		t.Errorf("X = %d, want 0 or 1", got[0].X)
	}
	if got[0].Y != 0 && got[0].Y != 1 {
		t.Errorf("Y = %d, want 0 or 1", got[0].Y)
	}
}

// S4: disjoint rectangles stay separate, each total=1.
func TestMerge_S4_DisjointRectanglesStaySeparate(t *testing.T) {
	rects := []Rectangle{
		{X: 0, Y: 0, Width: 10, Height: 10, Total: 1},
		{X: 100, Y: 100, Width: 10, Height: 10, Total: 1},
	}
	got := Merge(rects, 0.5)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.Total != 1 {
			t.Errorf("Total = %d, want 1", r.Total)
		}
	}
}

// Property 7: merger idempotence — feeding the output back in with the
// same regionsOverlap produces the same list, each group a singleton.
func TestMerge_Idempotent(t *testing.T) {
	rects := []Rectangle{
		{X: 0, Y: 0, Width: 10, Height: 10, Total: 1},
		{X: 1, Y: 1, Width: 10, Height: 10, Total: 1},
		{X: 50, Y: 50, Width: 8, Height: 8, Total: 1},
	}
	first := Merge(rects, 0.5)
	second := Merge(first, 0.5)
	if len(first) != len(second) {
		t.Fatalf("len(first)=%d, len(second)=%d, want equal", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("group %d changed: %+v -> %+v", i, first[i], second[i])
		}
	}
}

func TestMerge_Empty(t *testing.T) {
	if got := Merge(nil, 0.5); got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
}

func TestDisjointSet_UnionFind(t *testing.T) {
	d := newDisjointSet(5)
	d.union(0, 1)
	d.union(1, 2)
	d.union(3, 4)

	if d.find(0) != d.find(2) {
		t.Error("0 and 2 should be transitively linked")
	}
	if d.find(0) == d.find(3) {
		t.Error("0 and 3 should not be linked")
	}
	if d.find(3) != d.find(4) {
		t.Error("3 and 4 should be linked")
	}
}

package merge

import (
	"math"
	"sort"
)

// Merge clusters candidate rectangles whose overlap satisfies the
// asymmetric criterion from spec.md §4.E/§9, then averages each cluster
// into one rectangle.
//
// For every ordered pair (i, j) with positive-area intersection, let a1 be
// i's area and a2 be j's area. The source's criterion unions i and j iff
// both:
//
//	overlap / (a1 · (a1/a2)) ≥ regionsOverlap
//	overlap / (a2 · (a1/a2)) ≥ regionsOverlap
//
// This is asymmetric in a1/a2 — the second term simplifies to
// overlap·a2 / a1². spec.md §9 preserves this deliberately for
// byte-for-byte compatibility with the source rather than "fixing" it to
// the symmetric overlap/min(a1,a2) ≥ τ a correctness-first reimplementer
// might prefer.
//
// Groups are returned in ascending order of their representative id.
func Merge(rects []Rectangle, regionsOverlap float64) []Rectangle {
	n := len(rects)
	if n == 0 {
		return nil
	}

	ds := newDisjointSet(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			overlap, ok := rects[i].intersects(rects[j])
			if !ok {
				continue
			}
			a1 := float64(rects[i].area())
			a2 := float64(rects[j].area())
			ratio := a1 / a2
			first := float64(overlap) / (a1 * ratio)
			second := float64(overlap) / (a2 * ratio)
			if first >= regionsOverlap && second >= regionsOverlap {
				ds.union(uint32(i), uint32(j))
			}
		}
	}

	groups := make(map[uint32][]int)
	order := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		rep := ds.find(uint32(i))
		if _, seen := groups[rep]; !seen {
			order = append(order, rep)
		}
		groups[rep] = append(groups[rep], i)
	}
	sort.Slice(order, func(a, b int) bool { return order[a] < order[b] })

	out := make([]Rectangle, 0, len(order))
	for _, rep := range order {
		members := groups[rep]
		out = append(out, average(rects, members))
	}
	return out
}

// average combines member rectangles into one: x/y/width/height are the
// arithmetic means rounded half-up-then-truncate ((sum/total + 0.5) | 0),
// and Total is the sum of the members' Total values (the member count when
// every member is a raw candidate with Total 1), so merging already-merged
// rectangles again keeps each group's Total.
func average(rects []Rectangle, members []int) Rectangle {
	var sumX, sumY, sumW, sumH, sumTotal int
	for _, idx := range members {
		r := rects[idx]
		sumX += r.X
		sumY += r.Y
		sumW += r.Width
		sumH += r.Height
		sumTotal += r.Total
	}
	total := len(members)
	return Rectangle{
		X:      roundHalfUp(sumX, total),
		Y:      roundHalfUp(sumY, total),
		Width:  roundHalfUp(sumW, total),
		Height: roundHalfUp(sumH, total),
		Total:  sumTotal,
	}
}

func roundHalfUp(sum, total int) int {
	return int(math.Floor(float64(sum)/float64(total) + 0.5))
}

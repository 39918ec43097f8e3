// Package evaluator implements spec.md §4.C: evaluating one staged Haar
// cascade against one candidate window using only integral-image lookups.
package evaluator

import (
	"math"

	"github.com/AnyUserName/vjdetect/internal/cascade"
	"github.com/AnyUserName/vjdetect/internal/integral"
)

// EvaluateWindow tests the window with top-left (j, i) — j is the column
// (x), i is the row (y) — and size (bw, bh) pixels, at the given scale
// (ratio of the current window to the cascade's base minW×minH), against
// every stage of c. It returns true iff every stage passes.
func EvaluateWindow(c cascade.Cascade, img *integral.Images, i, j, bw, bh int, scale float64) bool {
	inverseArea := 1.0 / float64(bw*bh)

	sum := img.RectSum(j, i, bw, bh)
	sqSum := img.SqRectSum(j, i, bw, bh)
	mean := float64(sum) * inverseArea
	variance := float64(sqSum)*inverseArea - mean*mean

	stddev := 1.0
	if variance > 0 {
		stddev = math.Sqrt(variance)
	}

	cur := c.Cursor()
	if !cur.More() {
		// A cascade with no stages (header only) matches nothing — spec.md
		// §8 property 5 — rather than vacuously "passing" every window
		// because there was no stage left to fail it.
		return false
	}
	for cur.More() {
		stageThreshold := cur.Next()
		nodeCount := cur.NextInt()

		var stageSum float64
		for n := 0; n < nodeCount; n++ {
			tilted := cur.NextInt()
			rectCount := cur.NextInt()

			var rectsSum float64
			for r := 0; r < rectCount; r++ {
				rx := cur.Next()
				ry := cur.Next()
				rw := cur.Next()
				rh := cur.Next()
				weight := cur.Next()

				left := roundCoord(float64(j) + rx*scale)
				top := roundCoord(float64(i) + ry*scale)
				w := roundCoord(rw * scale)
				h := roundCoord(rh * scale)

				var s int64
				if tilted != 0 {
					s = img.TiltedRectSum(left, top, w, h)
				} else {
					s = img.RectSum(left, top, w, h)
				}
				rectsSum += float64(s) * weight
			}

			nodeThreshold := cur.Next()
			leftValue := cur.Next()
			rightValue := cur.Next()

			if rectsSum*inverseArea < nodeThreshold*stddev {
				stageSum += leftValue
			} else {
				stageSum += rightValue
			}
		}

		if stageSum < stageThreshold {
			return false
		}
	}

	return true
}

// roundCoord implements spec.md's "(x + 0.5) | 0" — round-half-up then
// truncate toward zero. Go's float64-to-int conversion already truncates
// toward zero, so adding 0.5 first reproduces the source's rounding
// exactly; do not substitute math.Round (banker's rounding) here.
func roundCoord(v float64) int {
	return int(v + 0.5)
}

// Package cascade implements the flat numeric cascade format from
// spec.md §4.F/§3: a single []float64 array with no object graph, read
// through a position cursor rather than parsed into a tree of stages.
package cascade

import "fmt"

// Cascade wraps a flat cascade array: minW, minH, then a sequence of
// stages with no length prefix beyond each stage's own nodeCount.
// End-of-cascade is end-of-array.
type Cascade struct {
	data []float64
}

// New validates and wraps data. It does not walk the stage/node/rectangle
// structure — a malformed body (a nodeCount or rectCount that overruns the
// array) makes Cursor.Next panic at scan time, not here; only the
// two-value header is checked up front (spec.md §7:
// "cascade shorter than two values: fail fast with an argument error").
func New(data []float64) (Cascade, error) {
	if len(data) < 2 {
		return Cascade{}, fmt.Errorf("cascade: need at least 2 values (minW, minH), got %d", len(data))
	}
	return Cascade{data: data}, nil
}

// MinW returns the base window width in pixels.
func (c Cascade) MinW() float64 { return c.data[0] }

// MinH returns the base window height in pixels.
func (c Cascade) MinH() float64 { return c.data[1] }

// Len returns the number of raw float64 values backing the cascade,
// including the two-value header.
func (c Cascade) Len() int { return len(c.data) }

// Raw returns the backing array for hashing/fingerprinting purposes
// (see internal/hasher.CascadeFingerprint). Callers must not mutate it.
func (c Cascade) Raw() []float64 { return c.data }

// Cursor returns a fresh position cursor positioned after the header,
// ready to read the first stage.
func (c Cascade) Cursor() *Cursor {
	return &Cursor{data: c.data, pos: 2}
}

// StageCount walks the cascade with a fresh cursor and counts its stages.
// It exists for display purposes (the `vjdetect cascades` command) —
// evaluation itself never needs a stage count ahead of time.
func (c Cascade) StageCount() int {
	cur := c.Cursor()
	n := 0
	for cur.More() {
		cur.Next() // stageThreshold
		nodeCount := cur.NextInt()
		n++
		for i := 0; i < nodeCount; i++ {
			cur.NextInt() // tilted
			rectCount := cur.NextInt()
			for r := 0; r < rectCount; r++ {
				cur.Next()
				cur.Next()
				cur.Next()
				cur.Next()
				cur.Next()
			}
			cur.Next() // nodeThreshold
			cur.Next() // leftValue
			cur.Next() // rightValue
		}
	}
	return n
}

// Cursor is a sequential position-tracking reader over a cascade's flat
// array. It has no notion of "stage" or "node" as heap objects — callers
// pull values one at a time in the exact order spec.md §3 defines.
type Cursor struct {
	data []float64
	pos  int
}

// More reports whether any values remain to read.
func (cur *Cursor) More() bool { return cur.pos < len(cur.data) }

// Next reads and returns the next value, advancing the cursor. It panics
// if called past the end of the array — a malformed cascade (e.g. a
// nodeCount or rectCount that overruns the array) is a programmer/data
// error, not a recoverable one. EvaluateWindow and StageCount call More()
// only between stages, not before reading a declared count.
func (cur *Cursor) Next() float64 {
	v := cur.data[cur.pos]
	cur.pos++
	return v
}

// NextInt reads the next value and truncates it to an int, for reading
// count fields (nodeCount, rectCount) and the tilted flag.
func (cur *Cursor) NextInt() int {
	return int(cur.Next())
}

// Package vjdetect implements a Viola–Jones object detector: given a
// grayscale-convertible RGBA pixel buffer and a trained Haar cascade, it
// returns merged bounding rectangles where the cascade fires.
//
// The public surface is deliberately small — Detect, Rectangle, Cascade,
// NewCascade, Params, DefaultParams — matching spec.md §6's single entry
// point. Everything else (integral images, the cascade cursor, the
// evaluator, the disjoint-set merger) lives under internal/ and is not
// meant to be imported directly.
package vjdetect

package cascadedata

// mouthData is an illustrative stand-in cascade for mouth detection — see
// faceData's doc comment for the same caveat: structurally valid, not
// trained.
var mouthData = []float64{
	18, 10, // minW, minH

	-0.3, 2,
	0, 2,
	2, 2, 14, 3, 1,
	2, 5, 14, 3, -1,
	0.015, -0.5, 0.6,
	0, 2,
	5, 0, 8, 5, -1,
	5, 5, 8, 5, 1,
	-0.01, -0.4, 0.5,

	0.05, 1,
	1, 3,
	0, 0, 6, 10, 1,
	6, 0, 6, 10, -2,
	12, 0, 6, 10, 1,
	0.0, -0.3, 0.4,
}

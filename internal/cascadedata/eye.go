package cascadedata

// eyeData is an illustrative stand-in cascade for eye detection, scaled
// to a smaller base window than faceData — see faceData's doc comment for
// the same caveat: structurally valid, not trained.
var eyeData = []float64{
	12, 8, // minW, minH

	-0.4, 1,
	0, 2,
	2, 1, 8, 2, 1,
	2, 4, 8, 2, -1,
	0.01, -0.6, 0.6,

	0.1, 2,
	0, 2,
	3, 2, 6, 4, -1,
	3, 0, 6, 2, 1,
	-0.02, -0.5, 0.5,
	0, 1,
	0, 0, 12, 8, 1,
	0.0, -0.3, 0.4,
}

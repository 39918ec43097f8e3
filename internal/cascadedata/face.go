package cascadedata

// faceData is a structurally valid but illustrative stand-in for a
// trained frontal-face Haar cascade: no example repo in the retrieval
// pack, and no original_source/ file, carries real trained cascade
// weights, so this is shaped like one (multiple stages, a mix of
// axis-aligned and tilted two/three-rectangle nodes, a 24x24 base window
// matching the OpenCV frontalface convention) without claiming to have
// been trained on any dataset. Do not use for real detection.
var faceData = []float64{
	24, 24, // minW, minH

	// Stage 0: two nodes, a coarse horizontal-edge and a vertical-edge
	// feature, cheap enough to run on almost every window.
	-0.6, 2,
	0, 2,
	6, 4, 12, 6, 1,
	6, 10, 12, 3, -2,
	-0.02, -0.7, 0.9,
	0, 2,
	4, 6, 8, 10, -1,
	12, 6, 8, 10, 1,
	0.01, -0.5, 0.8,

	// Stage 1: three nodes, including one tilted feature, a tighter
	// threshold reflecting deeper-stage selectivity.
	0.2, 3,
	0, 2,
	8, 8, 8, 4, 1,
	8, 12, 8, 4, -1,
	-0.015, -0.6, 0.7,
	1, 2,
	12, 0, 10, 10, 1,
	12, 10, 10, 10, -1,
	0.0, -0.4, 0.6,
	0, 3,
	3, 3, 6, 6, 1,
	9, 3, 6, 6, -2,
	15, 3, 6, 6, 1,
	0.005, -0.3, 0.5,
}

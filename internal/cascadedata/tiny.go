package cascadedata

// tinyData is a minimal, structurally valid cascade used by the registry
// and pipeline tests: one stage, one node, one axis-aligned rectangle
// spanning the whole base window, accepting a window iff its mean
// luminance is at least 128 times its standard deviation (which the
// evaluator takes as 1 for a uniform window, so mean >= 128 there).
var tinyData = []float64{
	8, 8, // minW, minH
	0, 1, // stageThreshold, nodeCount
	0, 1, // tilted, rectCount
	0, 0, 8, 8, 1, // rectangle (x,y,w,h,weight)
	128, -1, 1, // nodeThreshold, leftValue, rightValue
}

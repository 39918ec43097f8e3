// Package integral builds the four integral images the detector scans
// over: a standard summed-area table (SAT), a squared SAT, a tilted
// (rotated 45°) SAT, and a Sobel-magnitude SAT used only for edge-density
// pruning. Building all four is one row-major pass over a precomputed
// grayscale (and, when requested, Sobel) plane — see spec.md §4.B.
package integral

import "github.com/AnyUserName/vjdetect/internal/imageproc"

// Images holds the integral images built from one pixel buffer. All
// entries use int64 regardless of image size: spec.md §7 allows 32-bit
// sums up to roughly 8192×8192 at 8-bit input and says to widen beyond
// that. Rather than switch representations at a size threshold, this
// package always widens — strictly safer, at the cost of double the
// memory a 32-bit table would use for small images (see DESIGN.md).
type Images struct {
	Width, Height int
	SAT           []int64
	SqSAT         []int64
	RSAT          []int64
	SobelSAT      []int64 // nil unless withSobel was requested
}

// at returns the value at (x, y), treating any out-of-bounds coordinate as
// zero — the convention spec.md §4.B uses throughout ("implicit zero for
// negative indices") and the resolution to §9's open question about RSAT's
// R[x, y-2] read.
func at(table []int64, width, height, x, y int) int64 {
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0
	}
	return table[y*width+x]
}

// Build computes grayscale (and, if withSobel, Sobel-magnitude) planes once,
// then fills SAT, SqSAT, RSAT, and (if requested) SobelSAT in a single pass.
func Build(pixels []byte, width, height int, withSobel bool) *Images {
	gray := imageproc.Grayscale(pixels, width, height)

	var sobelGray []byte
	if withSobel {
		sobelGray = imageproc.Grayscale(imageproc.SobelRGBA(pixels, width, height), width, height)
	}

	n := width * height
	img := &Images{
		Width:  width,
		Height: height,
		SAT:    make([]int64, n),
		SqSAT:  make([]int64, n),
		RSAT:   make([]int64, n),
	}
	if withSobel {
		img.SobelSAT = make([]int64, n)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			p := int64(gray[idx])

			// SAT: S[x,y] = S[x,y-1] + S[x-1,y] - S[x-1,y-1] + p
			img.SAT[idx] = at(img.SAT, width, height, x, y-1) +
				at(img.SAT, width, height, x-1, y) -
				at(img.SAT, width, height, x-1, y-1) + p

			// Squared SAT: same recurrence with p^2.
			img.SqSAT[idx] = at(img.SqSAT, width, height, x, y-1) +
				at(img.SqSAT, width, height, x-1, y) -
				at(img.SqSAT, width, height, x-1, y-1) + p*p

			// RSAT: R[x,y] = R[x-1,y-1] + R[x+1,y-1] - R[x,y-2] + p + pAbove
			var pAbove int64
			if y > 0 {
				pAbove = int64(gray[(y-1)*width+x])
			}
			img.RSAT[idx] = at(img.RSAT, width, height, x-1, y-1) +
				at(img.RSAT, width, height, x+1, y-1) -
				at(img.RSAT, width, height, x, y-2) + p + pAbove

			if withSobel {
				sp := int64(sobelGray[idx])
				img.SobelSAT[idx] = at(img.SobelSAT, width, height, x, y-1) +
					at(img.SobelSAT, width, height, x-1, y) -
					at(img.SobelSAT, width, height, x-1, y-1) + sp
			}
		}
	}

	return img
}

// RectSum returns the SAT sum over the axis-aligned rectangle with
// top-left (left, top) and size (w, h): SAT[left+w-1,top+h-1] -
// SAT[left-1,top+h-1] - SAT[left+w-1,top-1] + SAT[left-1,top-1], the
// standard inclusive-summed-area-table corner trick consistent with this
// package's (unpadded, width*height) IntegralImage layout. The GLOSSARY's
// A/B/C/D labels describe the same corner trick for a (width+1)-padded
// array, which this package does not use; both reduce to the same sums
// once translated to one indexing convention, so this is a restatement,
// not a deviation. Out-of-range corners read as zero (see at above) —
// cascades are trusted to stay within the window per spec.md §4.C, but
// this keeps a malformed cascade from panicking instead of silently
// producing a wrong score.
func (img *Images) RectSum(left, top, w, h int) int64 {
	return cornerSum(img.SAT, img.Width, img.Height, left, top, w, h)
}

// SqRectSum is RectSum over the squared SAT.
func (img *Images) SqRectSum(left, top, w, h int) int64 {
	return cornerSum(img.SqSAT, img.Width, img.Height, left, top, w, h)
}

// SobelRectSum is RectSum over the Sobel SAT.
func (img *Images) SobelRectSum(left, top, w, h int) int64 {
	return cornerSum(img.SobelSAT, img.Width, img.Height, left, top, w, h)
}

func cornerSum(table []int64, width, height, left, top, w, h int) int64 {
	a := at(table, width, height, left-1, top-1)
	b := at(table, width, height, left+w-1, top-1)
	d := at(table, width, height, left-1, top+h-1)
	c := at(table, width, height, left+w-1, top+h-1)
	return c - b - d + a
}

// TiltedRectSum returns the RSAT sum over the 45°-rotated region anchored
// at top-left (left, top) with size (w, h), via the rotated-corner formula
// from the GLOSSARY: w1=(L-h+w,T+w+h-1), w2=(L,T-1), w3=(L-h,T+h-1),
// w4=(L+w,T+w-1).
func (img *Images) TiltedRectSum(left, top, w, h int) int64 {
	w1 := at(img.RSAT, img.Width, img.Height, left-h+w, top+w+h-1)
	w2 := at(img.RSAT, img.Width, img.Height, left, top-1)
	w3 := at(img.RSAT, img.Width, img.Height, left-h, top+h-1)
	w4 := at(img.RSAT, img.Width, img.Height, left+w, top+w-1)
	return w1 + w2 - w3 - w4
}

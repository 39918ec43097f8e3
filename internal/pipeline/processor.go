package pipeline

import (
	"fmt"
	"image"
	"image/draw"
	"path/filepath"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/AnyUserName/vjdetect"
	"github.com/AnyUserName/vjdetect/internal/encoder"
	"github.com/AnyUserName/vjdetect/internal/hasher"
	"github.com/AnyUserName/vjdetect/internal/report"
)

// processImage decodes one image, runs Detect against it, and — when
// cfg.ExportCrops is set — crops and encodes each detection rectangle to
// cfg.OutputDir with a content-hashed filename.
func processImage(path string, cascadeName string, cascade vjdetect.Cascade, params vjdetect.Params, profileName string, cfg Config, reg *encoder.Registry) report.ImageResult {
	result := report.ImageResult{
		Path:               path,
		Profile:            profileName,
		Cascade:            cascadeName,
		CascadeFingerprint: hasher.CascadeFingerprint(cascade.Raw()),
	}

	img, err := imaging.Open(path)
	if err != nil {
		result.Error = fmt.Sprintf("decode: %v", err)
		return result
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	result.Width = width
	result.Height = height

	pixels := toRGBABuffer(img, width, height)

	rects, err := vjdetect.Detect(pixels, width, height, cascade, params)
	if err != nil {
		result.Error = fmt.Sprintf("detect: %v", err)
		return result
	}

	for _, r := range rects {
		result.Detections = append(result.Detections, report.Detection{
			X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Total: r.Total,
		})
	}

	if cfg.ExportCrops && len(rects) > 0 {
		crops, err := exportCrops(img, path, rects, cfg, reg)
		if err != nil {
			result.Error = fmt.Sprintf("crop export: %v", err)
			return result
		}
		result.Crops = crops
	}

	return result
}

// toRGBABuffer returns a tightly packed RGBA byte buffer (4*width*height,
// row-major) for img, matching the PixelBuffer layout spec.md §3 expects.
// imaging.Open decodes to *image.NRGBA, which is already tightly packed
// non-premultiplied RGBA in the common case; anything else is redrawn
// into a fresh NRGBA first.
func toRGBABuffer(img image.Image, width, height int) []byte {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 {
		return nrgba.Pix
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst.Pix
}

// exportCrops crops each detection rectangle out of img and encodes it
// with the encoder named by cfg.CropFormat (an error if that encoder is
// unavailable), writing to cfg.OutputDir under a content-hashed filename.
func exportCrops(img image.Image, sourcePath string, rects []vjdetect.Rectangle, cfg Config, reg *encoder.Registry) ([]string, error) {
	enc := reg.Get(cfg.CropFormat)
	if enc == nil {
		return nil, fmt.Errorf("crop format %q unavailable", cfg.CropFormat)
	}

	base := filepath.Base(sourcePath)
	var paths []string
	for n, r := range rects {
		crop := imaging.Crop(img, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height))
		data, err := enc.Encode(crop, cfg.CropQuality)
		if err != nil {
			return nil, fmt.Errorf("encode crop %d of %s: %w", n, base, err)
		}
		name := fmt.Sprintf("%s_%s.%s", base, hasher.ContentHash(data, 16), enc.Extension())
		outPath := filepath.Join(cfg.OutputDir, name)
		if err := writeFile(outPath, data); err != nil {
			return nil, err
		}
		paths = append(paths, outPath)
	}
	return paths, nil
}

package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions are the file extensions ScanImages treats as
// detectable images (decodable via disintegration/imaging plus the
// blank-imported golang.org/x/image/{bmp,tiff,webp} decoders).
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// ScanImages walks dir and returns every file whose extension is a
// recognized image format, in the order filepath.Walk visits them.
func ScanImages(dir string) ([]string, error) {
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if imageExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

package mdexport

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Decoders for the supported raster formats. PNG re-encoding for
	// embedding uses image/png directly.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodedImage holds a raster image decoded from disk and re-encoded as PNG
// for embedding, together with its pixel dimensions.
type decodedImage struct {
	name     string
	widthPx  int
	heightPx int
	png      []byte
}

// resolveImagePath resolves a markdown image destination against the
// directory of the markdown file at basePath. Remote http(s) destinations
// return ok=false and are not an error.
func resolveImagePath(basePath, dest string) (path string, ok bool) {
	if strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://") {
		return "", false
	}
	if filepath.IsAbs(dest) {
		return dest, true
	}
	base := filepath.Dir(basePath)
	if base == "" {
		base = "."
	}
	return filepath.Join(base, dest), true
}

// loadImage resolves, decodes, and re-encodes an image reference. ok=false
// with a nil error means the destination is remote and should be skipped.
func loadImage(basePath, dest string) (img *decodedImage, ok bool, err error) {
	path, local := resolveImagePath(basePath, dest)
	if !local {
		return nil, false, nil
	}

	if _, statErr := os.Stat(path); statErr != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return nil, false, fmt.Errorf("%w: re-encoding %s: %v", ErrImageDecode, path, err)
	}

	bounds := decoded.Bounds()
	return &decodedImage{
		name:     path,
		widthPx:  bounds.Dx(),
		heightPx: bounds.Dy(),
		png:      buf.Bytes(),
	}, true, nil
}

// imageSizeMM converts pixel dimensions to millimeters at the reference
// resolution.
func imageSizeMM(widthPx, heightPx int) (w, h float64) {
	w = float64(widthPx) * 25.4 / imageDPI
	h = float64(heightPx) * 25.4 / imageDPI
	return w, h
}

// fitImage applies the two sequential down-scaling constraints, each
// preserving aspect ratio: first to the content width, then to the maximum
// image height against the already width-scaled size. Images that fit are
// returned unchanged.
func fitImage(width, height, maxWidth, maxHeight float64) (w, h float64) {
	if width > maxWidth {
		scale := maxWidth / width
		width = maxWidth
		height *= scale
	}
	if height > maxHeight {
		scale := maxHeight / height
		height = maxHeight
		width *= scale
	}
	return width, height
}

package raster

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
)

// EncodePNG writes the raster as an 8-bit grayscale PNG.
func EncodePNG(w io.Writer, r *Raster) error {
	return png.Encode(w, ToGray(r))
}

// EncodeWebP writes the raster as a lossless WebP.
func EncodeWebP(w io.Writer, r *Raster) error {
	return nativewebp.Encode(w, toNRGBA(ToGray(r)), nil)
}

// Save writes the raster to path; see SaveImage.
func Save(path string, r *Raster) error {
	return SaveImage(path, ToGray(r))
}

// SaveImage writes img to path, choosing the encoder by extension
// (.png or .webp). Parent directories are created.
func SaveImage(path string, img image.Image) error {
	var enc func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		enc = png.Encode
	case ".webp":
		enc = func(w io.Writer, m image.Image) error {
			return nativewebp.Encode(w, toNRGBA(m), nil)
		}
	default:
		return fmt.Errorf("raster: unsupported output format: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("raster: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// Load decodes a PNG, JPEG, TGA or WebP frame into a raster of gray levels.
// The decoder is chosen by extension; the tga package registers an empty
// magic string and would claim every file passed to image.Decode.
func Load(path string) (*Raster, error) {
	var dec func(io.Reader) (image.Image, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		dec = png.Decode
	case ".jpg", ".jpeg":
		dec = jpeg.Decode
	case ".webp":
		dec = webp.Decode
	case ".tga":
		dec = tga.Decode
	default:
		return nil, fmt.Errorf("raster: unsupported input format: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}

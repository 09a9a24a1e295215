package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview scales the raster so its longer edge is at most maxSize pixels,
// using CatmullRom filtering. Rasters already within maxSize are converted
// without scaling.
func Preview(r *Raster, maxSize int) *image.Gray {
	src := ToGray(r)
	if maxSize <= 0 || (r.Width <= maxSize && r.Height <= maxSize) {
		return src
	}

	w, h := maxSize, maxSize
	if r.Width >= r.Height {
		h = max(1, r.Height*maxSize/r.Width)
	} else {
		w = max(1, r.Width*maxSize/r.Height)
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

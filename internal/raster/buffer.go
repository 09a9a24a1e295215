package raster

// Raster holds per-pixel intensity as a flat row-major slice for cache locality.
type Raster struct {
	Width  int
	Height int
	Pix    []float64 // len = W*H, index y*W + x
}

// Point is a raster position, origin top-left.
type Point struct {
	X, Y int
}

// New allocates a zeroed raster.
func New(w, h int) *Raster {
	return &Raster{
		Width:  w,
		Height: h,
		Pix:    make([]float64, w*h),
	}
}

// In reports whether (x, y) lies on the raster.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// At returns the intensity at (x, y), or 0 off the raster.
func (r *Raster) At(x, y int) float64 {
	if !r.In(x, y) {
		return 0
	}
	return r.Pix[y*r.Width+x]
}

// Set overwrites the intensity at (x, y); writes off the raster are dropped.
func (r *Raster) Set(x, y int, v float64) {
	if !r.In(x, y) {
		return
	}
	r.Pix[y*r.Width+x] = v
}

// NonZero counts pixels with non-zero intensity.
func (r *Raster) NonZero() int {
	n := 0
	for _, v := range r.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

package raster

import (
	"image"
	"image/color"
	"image/draw"

	"gonum.org/v1/gonum/stat"
)

// ToGray converts intensities to 8-bit gray, clamping to [0, 255].
func ToGray(r *Raster) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		row := r.Pix[y*r.Width : (y+1)*r.Width]
		off := y * img.Stride
		for x, v := range row {
			img.Pix[off+x] = clamp8(v)
		}
	}
	return img
}

// FromImage reads the luminance of any image into a raster.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := New(b.Dx(), b.Dy())
	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < r.Height; y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < r.Width; x++ {
				r.Pix[y*r.Width+x] = float64(g.Pix[off+x])
			}
		}
		return r
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			r.Pix[y*r.Width+x] = float64(c.Y)
		}
	}
	return r
}

// Stats summarises the intensity distribution of a raster.
type Stats struct {
	Mean    float64
	StdDev  float64
	Max     float64
	NonZero int
}

// Summarize computes intensity statistics over every pixel.
func Summarize(r *Raster) Stats {
	s := Stats{NonZero: r.NonZero()}
	if len(r.Pix) == 0 {
		return s
	}
	if len(r.Pix) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(r.Pix, nil)
	} else {
		s.Mean = r.Pix[0]
	}
	for _, v := range r.Pix {
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}

// toNRGBA converts any image to NRGBA format, the layout the WebP encoder
// handles natively.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	if g, ok := src.(*image.Gray); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				v := g.Pix[g.PixOffset(x, y)]
				i := dst.PixOffset(x, y)
				dst.Pix[i] = v
				dst.Pix[i+1] = v
				dst.Pix[i+2] = v
				dst.Pix[i+3] = 255
			}
		}
		return dst
	}
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

package raster

import (
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestDiskAppearance_Monotonic(t *testing.T) {
	prevR, prevL := DiskAppearance(-2)
	for m := -2.0; m <= 7.0; m += 0.05 {
		r, l := DiskAppearance(m)
		if r > prevR || l > prevL {
			t.Fatalf("mag %.2f: (%d, %v) brighter than previous (%d, %v)", m, r, l, prevR, prevL)
		}
		prevR, prevL = r, l
	}
}

func TestDiskAppearance_Values(t *testing.T) {
	tests := []struct {
		mag    float64
		radius int
		level  float64
	}{
		{-2, 7, 255},
		{3, 4, 169},
		{7, 2, 100},
		{9, 2, 100}, // fainter than the limit clamps to the faintest disk
		{-5, 7, 255},
	}
	for _, tt := range tests {
		r, l := DiskAppearance(tt.mag)
		if r != tt.radius || l != tt.level {
			t.Errorf("DiskAppearance(%v) = (%d, %v), want (%d, %v)", tt.mag, r, l, tt.radius, tt.level)
		}
	}
}

func TestDrawDisk(t *testing.T) {
	r := New(40, 30)
	DrawDisk(r, 20, 15, 3)

	if got := r.At(20, 15); got != 169 {
		t.Errorf("centre = %v, want 169", got)
	}
	if got := r.At(24, 15); got != 169 {
		t.Errorf("edge (r=4) = %v, want 169", got)
	}
	if got := r.At(25, 15); got != 0 {
		t.Errorf("outside = %v, want 0", got)
	}
	// Lattice points with dx²+dy² ≤ 16.
	if n := r.NonZero(); n != 49 {
		t.Errorf("disk covers %d pixels, want 49", n)
	}
}

func TestDrawDisk_ClipsAtEdges(t *testing.T) {
	r := New(10, 10)
	DrawDisk(r, 0, 0, -2)
	DrawDisk(r, 12, 12, 0)
	if r.At(0, 0) != 255 {
		t.Errorf("corner = %v, want 255", r.At(0, 0))
	}
	if len(r.Pix) != 100 {
		t.Errorf("raster resized to %d pixels", len(r.Pix))
	}
}

func TestDrawGaussian(t *testing.T) {
	r := New(30, 30)
	DrawDisk(r, 15, 15, -2)
	DrawGaussian(r, 15, 15, 0)

	want := math.RoundToEven(2000 * math.E / (2 * math.Pi * 25))
	if got := r.At(15, 15); got != want {
		t.Errorf("peak = %v, want %v", got, want)
	}
	// Last write wins inside the ROI, even where the disk was brighter.
	if got := r.At(15+GaussROI, 15); got >= 255 {
		t.Errorf("ROI edge = %v, disk value not overwritten", got)
	}
	// Outside the ROI the disk survives.
	if got := r.At(15+GaussROI+1, 15); got != 255 {
		t.Errorf("beyond ROI = %v, want 255", got)
	}
}

func TestDrawGaussian_Symmetric(t *testing.T) {
	r := New(21, 21)
	DrawGaussian(r, 10, 10, 1)

	row := r.Pix[10*21 : 11*21]
	rev := make([]float64, len(row))
	copy(rev, row)
	floats.Reverse(rev)
	if !floats.Equal(row, rev) {
		t.Errorf("centre row not symmetric: %v", row)
	}
	if floats.Max(row) != r.At(10, 10) {
		t.Errorf("row max %v not at centre %v", floats.Max(row), r.At(10, 10))
	}
}

func TestDrawDispatch(t *testing.T) {
	a, b := New(20, 20), New(20, 20)
	Draw(a, ModeFlatDisk, 10, 10, 1)
	DrawDisk(b, 10, 10, 1)
	if !floats.Equal(a.Pix, b.Pix) {
		t.Fatal("ModeFlatDisk differs from DrawDisk")
	}

	if m, err := ParseMode("Gaussian"); err != nil || m != ModeGaussian {
		t.Errorf("ParseMode(Gaussian) = %v, %v", m, err)
	}
	if _, err := ParseMode("airy"); err == nil {
		t.Error("ParseMode(airy) succeeded")
	}
}

func TestFindBlobs(t *testing.T) {
	r := New(100, 80)
	DrawDisk(r, 20, 20, 3)
	DrawDisk(r, 70, 50, 5)

	blobs := FindBlobs(r, 0)
	if len(blobs) != 2 {
		t.Fatalf("found %d blobs, want 2", len(blobs))
	}
	centres := [][2]float64{{20, 20}, {70, 50}}
	for i, b := range blobs {
		if math.Abs(b.CX-centres[i][0]) > 1e-9 || math.Abs(b.CY-centres[i][1]) > 1e-9 {
			t.Errorf("blob %d centroid = (%v, %v), want %v", i, b.CX, b.CY, centres[i])
		}
	}
	if blobs[0].Size != 49 || blobs[0].Peak != 169 {
		t.Errorf("blob 0 = %+v", blobs[0])
	}
	if b := blobs[0].Bounds; b.Min.X != 16 || b.Max.X != 25 {
		t.Errorf("blob 0 bounds = %v", b)
	}
}

func TestToGrayClamps(t *testing.T) {
	r := New(3, 1)
	r.Pix = []float64{-4, 127.6, 900}
	g := ToGray(r)
	if g.Pix[0] != 0 || g.Pix[1] != 128 || g.Pix[2] != 255 {
		t.Errorf("ToGray = %v", g.Pix)
	}
}

func TestSummarize(t *testing.T) {
	r := New(2, 2)
	r.Pix = []float64{0, 0, 0, 8}
	s := Summarize(r)
	if s.Mean != 2 || s.Max != 8 || s.NonZero != 1 {
		t.Errorf("Summarize = %+v", s)
	}
	// Sample standard deviation of {0, 0, 0, 8}.
	if math.Abs(s.StdDev-4) > 1e-12 {
		t.Errorf("StdDev = %v, want 4", s.StdDev)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := New(64, 48)
	DrawDisk(r, 10, 10, 0)
	DrawDisk(r, 50, 30, 6)

	for _, name := range []string{"frame.png", "frame.webp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", name)
			if err := Save(path, r); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Width != 64 || got.Height != 48 {
				t.Fatalf("size = %dx%d", got.Width, got.Height)
			}
			for i := range r.Pix {
				if got.Pix[i] != r.Pix[i] {
					t.Fatalf("pixel %d = %v, want %v", i, got.Pix[i], r.Pix[i])
				}
			}
		})
	}

	if err := Save(filepath.Join(t.TempDir(), "frame.bmp"), r); err == nil {
		t.Error("Save .bmp succeeded")
	}
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()
	r := New(16, 8)
	DrawDisk(r, 8, 4, 0)

	jpgPath := filepath.Join(dir, "frame.JPG")
	f, err := os.Create(jpgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, ToGray(r), nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := Load(jpgPath)
	if err != nil {
		t.Fatalf("Load jpeg: %v", err)
	}
	if got.Width != 16 || got.Height != 8 {
		t.Errorf("jpeg size = %dx%d", got.Width, got.Height)
	}

	// PNG bytes behind a .tga name go to the TGA decoder and fail.
	pngPath := filepath.Join(dir, "frame.png")
	if err := Save(pngPath, r); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	tgaPath := filepath.Join(dir, "frame.tga")
	if err := os.WriteFile(tgaPath, data, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tgaPath); err == nil {
		t.Error("Load of PNG data named .tga succeeded")
	}

	if _, err := Load(filepath.Join(dir, "frame.bmp")); err == nil {
		t.Error("Load .bmp succeeded")
	}
}

func TestPreview(t *testing.T) {
	r := New(3280, 2464)
	p := Preview(r, 820)
	if b := p.Bounds(); b.Dx() != 820 || b.Dy() != 616 {
		t.Errorf("preview = %v, want 820x616", b)
	}

	small := New(100, 50)
	if b := Preview(small, 820).Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("small preview = %v, want unscaled", b)
	}
}

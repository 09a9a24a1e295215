package raster

import "image"

// Blob is one 8-connected group of pixels above a threshold.
type Blob struct {
	Size   int             // pixel count
	CX, CY float64         // intensity-weighted centroid
	Peak   float64         // brightest pixel
	Bounds image.Rectangle // inclusive-exclusive pixel bounds
}

// FindBlobs labels 8-connected components of pixels whose intensity is
// strictly greater than threshold, in raster scan order.
func FindBlobs(r *Raster, threshold float64) []Blob {
	w, h := r.Width, r.Height

	labels := make([]int, w*h)
	for i := range labels {
		labels[i] = -1
	}

	dx := [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
	dy := [8]int{-1, -1, -1, 0, 0, 1, 1, 1}

	var blobs []Blob
	queue := make([]int, 0, 1024)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if r.Pix[idx] <= threshold || labels[idx] >= 0 {
				continue
			}

			id := len(blobs)
			b := Blob{Bounds: image.Rect(x, y, x+1, y+1)}
			var sumW, sumX, sumY float64

			// BFS from this pixel
			queue = queue[:0]
			queue = append(queue, idx)
			labels[idx] = id

			for len(queue) > 0 {
				curr := queue[0]
				queue = queue[1:]

				cy := curr / w
				cx := curr % w
				v := r.Pix[curr]
				b.Size++
				sumW += v
				sumX += v * float64(cx)
				sumY += v * float64(cy)
				if v > b.Peak {
					b.Peak = v
				}
				b.Bounds = b.Bounds.Union(image.Rect(cx, cy, cx+1, cy+1))

				for d := 0; d < 8; d++ {
					nx := cx + dx[d]
					ny := cy + dy[d]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if r.Pix[ni] > threshold && labels[ni] < 0 {
						labels[ni] = id
						queue = append(queue, ni)
					}
				}
			}

			if sumW != 0 {
				b.CX = sumX / sumW
				b.CY = sumY / sumW
			}
			blobs = append(blobs, b)
		}
	}

	return blobs
}

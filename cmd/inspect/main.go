package main

import (
	"flag"
	"fmt"
	"os"

	"star-sensor-sim/internal/raster"
)

func main() {
	threshold := flag.Float64("threshold", 0, "Pixels above this level belong to a star")
	limit := flag.Int("limit", 50, "Maximum number of blobs to list")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-threshold N] [-limit N] frame.png ...")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		r, err := raster.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}

		s := raster.Summarize(r)
		blobs := raster.FindBlobs(r, *threshold)

		fmt.Printf("%s: %dx%d\n", path, r.Width, r.Height)
		fmt.Printf("  Intensity: mean=%.4f std=%.4f max=%.0f lit=%d\n", s.Mean, s.StdDev, s.Max, s.NonZero)
		fmt.Printf("  Blobs: %d\n", len(blobs))
		for i, b := range blobs {
			if i >= *limit {
				fmt.Printf("  ... %d more\n", len(blobs)-i)
				break
			}
			fmt.Printf("  [%d] centre=(%.2f, %.2f) size=%d peak=%.0f bounds=%v\n", i, b.CX, b.CY, b.Size, b.Peak, b.Bounds)
		}
	}

	if failed {
		os.Exit(1)
	}
}

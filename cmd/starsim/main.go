package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"star-sensor-sim/internal/attitude"
	"star-sensor-sim/internal/batch"
	"star-sensor-sim/internal/catalog"
	"star-sensor-sim/internal/config"
	"star-sensor-sim/internal/logging"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .yaml)")
	catalogPath := flag.String("catalog", "", "Star catalogue CSV (Star ID, RA, DE, Magnitude)")
	jobsFile := flag.String("jobs", "", "Render every attitude in this jobs file instead of -ra/-de/-roll")
	ra := flag.String("ra", "0", "Boresight right ascension, degrees")
	de := flag.String("de", "0", "Boresight declination, degrees")
	roll := flag.String("roll", "0", "Roll about the boresight, degrees")
	name := flag.String("name", "frame", "Output name for a single frame")
	missing := flag.Int("missing", 0, "Visible stars to leave out")
	unexpected := flag.Int("unexpected", 0, "Spurious stars to add")
	seed := flag.Uint64("seed", 0, "Random seed for fault injection")
	mode := flag.String("mode", "", "Star rendering: disk or gaussian (default: disk)")
	method := flag.String("method", "", "Rotation matrix: composed or direct (default: composed)")
	missingStrategy := flag.String("missing-strategy", "", "distinct, replacement or strict (default: distinct)")
	outputDir := flag.String("out", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Image format: png or webp (default: png)")
	preview := flag.Int("preview", 0, "Also write a preview scaled to this many pixels")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (default: info)")

	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Catalog:         *catalogPath,
		OutputDir:       *outputDir,
		Mode:            *mode,
		Method:          *method,
		MissingStrategy: *missingStrategy,
		Seed:            *seed,
		SeedSet:         seedSet,
		Format:          *format,
		PreviewSize:     *preview,
		Workers:         *workers,
		LogLevel:        *logLevel,
	})

	log := logging.New(logging.ParseLevel(cfg.LogLevel))

	if cfg.Catalog == "" {
		fmt.Fprintln(os.Stderr, "Error: no star catalogue. Use -catalog flag or config file.")
		os.Exit(1)
	}

	opts, err := cfg.SynthOptions(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stars, err := catalog.LoadCSV(cfg.Catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalogue: %v\n", err)
		os.Exit(1)
	}
	log.Info("Catalogue: %d stars from %s", stars.Len(), cfg.Catalog)

	// Jobs: a file, or the single attitude from flags
	var jobs []batch.Job
	if *jobsFile != "" {
		jobs, err = batch.LoadJobs(*jobsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading jobs: %v\n", err)
			os.Exit(1)
		}
	} else {
		att, err := attitude.Parse(*ra, *de, *roll)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		jobs = []batch.Job{{Name: *name, Attitude: att, Missing: *missing, Unexpected: *unexpected}}
	}

	if len(jobs) == 0 {
		fmt.Println("No frames to render.")
		os.Exit(0)
	}

	fx, fy := opts.Geometry.FOV()
	log.Info("Sensor: %dx%d px, FOV %.2f° x %.2f°, %s matrix, %s stars",
		opts.Geometry.Width, opts.Geometry.Height, fx, fy, opts.Method, opts.Mode)
	log.Info("Frames: %d, Workers: %d, Output: %s", len(jobs), cfg.Workers, cfg.OutputDir)

	start := time.Now()

	results := batch.Run(batch.Config{
		Catalog:     stars,
		Options:     opts,
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		PreviewSize: cfg.PreviewSize,
		Workers:     cfg.Workers,
		Logger:      log,
	}, jobs)

	elapsed := time.Since(start)

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			log.Debug("%s: %d visible, %d drawn, %d spurious", r.Name, r.Visible, len(r.Stars), len(r.Spurious))
		} else {
			failed++
			log.Error("%s: %s", r.Name, r.Error)
		}
	}
	log.Info("Rendered %d/%d frames in %.1fs", success, len(jobs), elapsed.Seconds())

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Warn("manifest dir: %v", err)
	} else if err := batch.WriteManifest(manifestPath, jobs, results); err != nil {
		log.Warn("manifest write failed: %v", err)
	} else {
		log.Info("Manifest: %s", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

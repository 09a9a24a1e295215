package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"star-sensor-sim/internal/catalog"
	"star-sensor-sim/internal/logging"
	"star-sensor-sim/internal/raster"
	"star-sensor-sim/internal/synth"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Catalog     catalog.Table
	Options     synth.Options
	OutputDir   string
	Format      string // "png" or "webp"
	PreviewSize int    // 0 disables previews
	Workers     int
	Logger      *logging.Logger
}

// Result holds the outcome of rendering one job.
type Result struct {
	Name     string
	Success  bool
	Error    string
	Image    string // path relative to OutputDir
	Preview  string
	Visible  int
	Stars    []StarRecord // stars drawn, excluding missing ones
	Spurious []StarRecord // unexpected stars
}

// Run renders all jobs using a worker pool. Results are index-aligned
// with jobs. Job i is seeded with Options.Seed + i, so output does not
// depend on the number of workers.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					log.Info("[%d/%d] %.1f frames/sec", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, idx, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, idx int, job Job) Result {
	if err := CheckName(job.Name); err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}
	opts := cfg.Options
	opts.Seed += uint64(idx)
	if cfg.Logger != nil {
		opts.Logger = cfg.Logger
	}

	res, err := synth.Synthesize(synth.Request{
		Attitude:   job.Attitude,
		Catalog:    cfg.Catalog,
		Missing:    job.Missing,
		Unexpected: job.Unexpected,
	}, opts)
	if err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}

	out := Result{
		Name:    job.Name,
		Image:   job.Name + "." + cfg.Format,
		Visible: len(res.Visible),
	}
	for _, s := range res.Rendered() {
		out.Stars = append(out.Stars, StarRecord{ID: s.ID, X: s.X, Y: s.Y, Mag: s.Mag})
	}
	for i, p := range res.Injected {
		out.Spurious = append(out.Spurious, StarRecord{ID: fmt.Sprintf("spurious-%d", i), X: p.X, Y: p.Y, Mag: p.Mag})
	}

	if err := raster.Save(filepath.Join(cfg.OutputDir, out.Image), res.Raster); err != nil {
		out.Error = err.Error()
		return out
	}

	if cfg.PreviewSize > 0 {
		out.Preview = job.Name + "_preview.png"
		prev := raster.Preview(res.Raster, cfg.PreviewSize)
		if err := raster.SaveImage(filepath.Join(cfg.OutputDir, out.Preview), prev); err != nil {
			out.Error = fmt.Sprintf("preview: %v", err)
			return out
		}
	}

	out.Success = true
	return out
}

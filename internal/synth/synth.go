// Package synth renders simulated star-sensor frames.
//
// A frame is built in four stages: the attitude is turned into a rotation
// matrix, the catalogue is cut down to a search window around the
// boresight, the survivors are projected onto the detector, and each star
// is stamped onto a zeroed raster. Missing and unexpected stars can be
// injected to emulate sensor faults.
package synth

import (
	"fmt"
	"math/rand/v2"

	"star-sensor-sim/internal/attitude"
	"star-sensor-sim/internal/catalog"
	"star-sensor-sim/internal/fov"
	"star-sensor-sim/internal/logging"
	"star-sensor-sim/internal/projection"
	"star-sensor-sim/internal/raster"
	"star-sensor-sim/internal/sensor"
)

// Request is one frame to synthesize.
type Request struct {
	Attitude   attitude.Attitude
	Catalog    catalog.Table
	Missing    int // visible stars to leave out
	Unexpected int // spurious stars to add
}

// Options tune how frames are synthesized. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	Geometry sensor.Geometry
	Method   attitude.Method
	Mode     raster.Mode
	Missing  MissingStrategy
	Seed     uint64
	Logger   *logging.Logger
}

// DefaultOptions returns the reference sensor with the composed matrix,
// flat-disk stars and distinct missing-star sampling.
func DefaultOptions() Options {
	return Options{
		Geometry: sensor.Default(),
		Method:   attitude.MethodComposed,
		Mode:     raster.ModeFlatDisk,
		Missing:  MissingDistinct,
	}
}

// Result is a synthesized frame plus what went into it.
type Result struct {
	Raster   *raster.Raster
	Visible  []projection.Star // stars that projected onto the frame
	Skipped  []int             // indices into Visible left out as missing
	Injected []Spurious        // unexpected stars
}

// Rendered returns the visible stars that were actually drawn.
func (r *Result) Rendered() []projection.Star {
	skip := make(map[int]struct{}, len(r.Skipped))
	for _, i := range r.Skipped {
		skip[i] = struct{}{}
	}
	out := make([]projection.Star, 0, len(r.Visible))
	for i, s := range r.Visible {
		if _, ok := skip[i]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// Synthesize renders one frame. The raster always has the geometry's
// dimensions. Equal requests with equal options produce identical frames.
func Synthesize(req Request, opts Options) (*Result, error) {
	if req.Missing < 0 || req.Unexpected < 0 {
		return nil, fmt.Errorf("%w: missing=%d unexpected=%d", ErrNegativeCount, req.Missing, req.Unexpected)
	}
	if err := req.Attitude.Validate(); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	g := opts.Geometry
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	// Stage 1: rotation
	rad := req.Attitude.Radians()
	m := attitude.Matrix(rad, opts.Method)
	p := attitude.ProjectionMatrix(m)

	// Stage 2: search window
	win := fov.NewWindow(rad, g)
	candidates := fov.Filter(req.Catalog, win)
	log.Debug("%v: %d/%d catalogue stars in window (R=%.4f rad, full RA=%v)",
		req.Attitude, candidates.Len(), req.Catalog.Len(), win.Radius, win.FullRA)

	// Stage 3: projection
	visible := projection.Project(candidates, p, g)
	log.Debug("%v: %d stars on detector", req.Attitude, len(visible))

	// Stage 4: rendering
	skip, err := pickMissing(rng, opts.Missing, req.Missing, len(visible))
	if err != nil {
		return nil, err
	}

	bg := raster.New(g.Width, g.Height)
	res := &Result{Raster: bg, Visible: visible}
	for i, s := range visible {
		if _, ok := skip[i]; ok {
			res.Skipped = append(res.Skipped, i)
			continue
		}
		raster.Draw(bg, opts.Mode, s.X, s.Y, s.Mag)
	}

	res.Injected = injectUnexpected(rng, bg, g, req.Unexpected)
	log.Debug("%v: drew %d stars, %d missing, %d unexpected",
		req.Attitude, len(visible)-len(res.Skipped), len(res.Skipped), len(res.Injected))

	return res, nil
}

package batch

import (
	"encoding/json"
	"os"
)

// StarRecord is the ground truth for one star drawn into a frame.
type StarRecord struct {
	ID  string  `json:"id"`
	X   int     `json:"x"`
	Y   int     `json:"y"`
	Mag float64 `json:"mag"`
}

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Name       string       `json:"name"`
	RA         float64      `json:"ra"`
	De         float64      `json:"de"`
	Roll       float64      `json:"roll"`
	Missing    int          `json:"missing"`
	Unexpected int          `json:"unexpected"`
	Image      string       `json:"image"`
	Preview    string       `json:"preview,omitempty"`
	Visible    int          `json:"visible"`
	Stars      []StarRecord `json:"stars"`
	Spurious   []StarRecord `json:"spurious,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every job and its outcome.
// jobs and results must be index-aligned, as returned by Run.
func WriteManifest(path string, jobs []Job, results []Result) error {
	entries := make([]ManifestEntry, len(jobs))
	for i, j := range jobs {
		r := results[i]
		entries[i] = ManifestEntry{
			Name:       j.Name,
			RA:         j.RA,
			De:         j.De,
			Roll:       j.Roll,
			Missing:    j.Missing,
			Unexpected: j.Unexpected,
			Image:      r.Image,
			Preview:    r.Preview,
			Visible:    r.Visible,
			Stars:      r.Stars,
			Spurious:   r.Spurious,
			Error:      r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

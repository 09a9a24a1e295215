package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"star-sensor-sim/internal/attitude"

	"gopkg.in/yaml.v3"
)

// Job is one frame to render.
type Job struct {
	Name string `json:"name" yaml:"name"`

	attitude.Attitude `yaml:",inline"`

	Missing    int `json:"missing" yaml:"missing"`
	Unexpected int `json:"unexpected" yaml:"unexpected"`
}

// jobFile matches the schema of a jobs file.
type jobFile struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// LoadJobs reads a JSON or YAML jobs file, chosen by extension.
// Jobs without a name are numbered by position.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}

	var f jobFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}

	seen := make(map[string]bool, len(f.Jobs))
	for i := range f.Jobs {
		j := &f.Jobs[i]
		if j.Name == "" {
			j.Name = fmt.Sprintf("frame_%04d", i)
		}
		if err := CheckName(j.Name); err != nil {
			return nil, fmt.Errorf("batch: %s: %w", path, err)
		}
		if seen[j.Name] {
			return nil, fmt.Errorf("batch: %s: duplicate job name %q", path, j.Name)
		}
		seen[j.Name] = true
		if j.Missing < 0 || j.Unexpected < 0 {
			return nil, fmt.Errorf("batch: %s: job %q: negative fault count", path, j.Name)
		}
	}
	return f.Jobs, nil
}

// CheckName rejects job names that would escape the output directory.
// Names become file names directly, so separators and ".." are refused.
func CheckName(name string) error {
	if name == "" || name == "." || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return fmt.Errorf("invalid job name %q", name)
	}
	return nil
}

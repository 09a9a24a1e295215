package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"star-sensor-sim/internal/attitude"
	"star-sensor-sim/internal/logging"
	"star-sensor-sim/internal/raster"
	"star-sensor-sim/internal/sensor"
	"star-sensor-sim/internal/synth"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable paths, sensor geometry and render settings.
type Config struct {
	// Paths
	Catalog   string `json:"catalog" yaml:"catalog"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Sensor geometry; zero fields take the reference sensor's values.
	Sensor sensor.Geometry `json:"sensor" yaml:"sensor"`

	// Render settings
	Mode            string `json:"mode" yaml:"mode"`
	Method          string `json:"method" yaml:"method"`
	MissingStrategy string `json:"missing_strategy" yaml:"missing_strategy"`
	Seed            uint64 `json:"seed" yaml:"seed"`
	Format          string `json:"format" yaml:"format"`
	PreviewSize     int    `json:"preview_size" yaml:"preview_size"`
	Workers         int    `json:"workers" yaml:"workers"`
	LogLevel        string `json:"log_level" yaml:"log_level"`
}

// Load reads a JSON or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Catalog         string
	OutputDir       string
	Mode            string
	Method          string
	MissingStrategy string
	Seed            uint64
	SeedSet         bool
	Format          string
	PreviewSize     int
	Workers         int
	LogLevel        string
}

// Resolve applies CLI overrides, then fills any empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Catalog != "" {
		c.Catalog = flags.Catalog
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Method != "" {
		c.Method = flags.Method
	}
	if flags.MissingStrategy != "" {
		c.MissingStrategy = flags.MissingStrategy
	}
	if flags.SeedSet {
		c.Seed = flags.Seed
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	// Auto-detect catalogue if still empty
	if c.Catalog == "" {
		c.Catalog = detectCatalog()
	}
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}

	// Sensor defaults, per field
	def := sensor.Default()
	if c.Sensor.PixelPitch <= 0 {
		c.Sensor.PixelPitch = def.PixelPitch
	}
	if c.Sensor.FocalLength <= 0 {
		c.Sensor.FocalLength = def.FocalLength
	}
	if c.Sensor.Width <= 0 {
		c.Sensor.Width = def.Width
	}
	if c.Sensor.Height <= 0 {
		c.Sensor.Height = def.Height
	}

	// Defaults for render settings
	if c.Mode == "" {
		c.Mode = raster.ModeFlatDisk.String()
	}
	if c.Method == "" {
		c.Method = attitude.MethodComposed.String()
	}
	if c.MissingStrategy == "" {
		c.MissingStrategy = synth.MissingDistinct.String()
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// SynthOptions converts the render settings into synthesizer options.
func (c *Config) SynthOptions(log *logging.Logger) (synth.Options, error) {
	mode, err := raster.ParseMode(c.Mode)
	if err != nil {
		return synth.Options{}, fmt.Errorf("config: %w", err)
	}
	method, err := attitude.ParseMethod(c.Method)
	if err != nil {
		return synth.Options{}, fmt.Errorf("config: %w", err)
	}
	missing, err := synth.ParseMissingStrategy(c.MissingStrategy)
	if err != nil {
		return synth.Options{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Sensor.Validate(); err != nil {
		return synth.Options{}, fmt.Errorf("config: %w", err)
	}
	switch c.Format {
	case "png", "webp":
	default:
		return synth.Options{}, fmt.Errorf("config: unsupported format %q", c.Format)
	}

	return synth.Options{
		Geometry: c.Sensor,
		Method:   method,
		Mode:     mode,
		Missing:  missing,
		Seed:     c.Seed,
		Logger:   log,
	}, nil
}

// catalogNames are tried in order when no catalogue path is configured.
var catalogNames = []string{
	"catalog.csv",
	"Below_6.0_SAO.csv",
	filepath.Join("data", "catalog.csv"),
}

func detectCatalog() string {
	var dirs []string

	// Try current working directory
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	// Try relative to executable
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		dirs = append(dirs, dir, filepath.Dir(dir))
	}

	for _, d := range dirs {
		for _, name := range catalogNames {
			p := filepath.Join(d, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

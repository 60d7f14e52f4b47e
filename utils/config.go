package utils

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifelattice/rules"
)

// DefaultConfigFile is read when no -config flag is given. It may be absent.
const DefaultConfigFile = "config.json"

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the terminal runner
type Config struct {
	Pattern             string        `json:"pattern"`
	Rule                string        `json:"rule"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	StopOnStagnation    bool          `json:"stop_on_stagnation"`
	ViewWidth           int           `json:"view_width"`
	ViewHeight          int           `json:"view_height"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		StagnationThreshold: 5,
		StopOnStagnation:    true,
		ViewWidth:           60,
		ViewHeight:          30,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative: %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative: %d", c.MaxGenerations)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be positive: %d", c.StagnationThreshold)
	case c.ViewWidth < 1 || c.ViewHeight < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] view must be at least 1x1: %dx%d", c.ViewWidth, c.ViewHeight)
	}
	if c.Rule != "" {
		if _, err := rules.Parse(c.Rule); err != nil {
			return errors.Wrap(err, "[Validate] rule")
		}
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule overriding the pattern's own, e.g. B36/S23")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.IntVar(&c.StagnationThreshold, "stagnation-threshold", c.StagnationThreshold, "stagnant generations tolerated before stopping")
	fs.BoolVar(&c.StopOnStagnation, "stop-on-stagnation", c.StopOnStagnation, "stop once the pattern becomes still or oscillates")
	fs.IntVar(&c.ViewWidth, "width", c.ViewWidth, "viewport width in cells")
	fs.IntVar(&c.ViewHeight, "height", c.ViewHeight, "viewport height in cells")
}

/*
ParseArgs builds the runner configuration from command-line arguments.

Defaults come first, then the JSON file named by -config (a missing default
file is not an error), then any flag set explicitly on the command line. The
first positional argument, if any, names the pattern file.
*/
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	path := fs.String("config", DefaultConfigFile, "JSON configuration file")
	overrides := DefaultConfig()
	overrides.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "[ParseArgs] failed to parse flags")
	}

	config, err := LoadConfig(*path)
	if err != nil {
		explicit := false
		fs.Visit(func(f *flag.Flag) { explicit = explicit || f.Name == "config" })
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		config = DefaultConfig()
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rule":
			config.Rule = overrides.Rule
		case "frame-rate":
			config.FrameRate = overrides.FrameRate
		case "max-generations":
			config.MaxGenerations = overrides.MaxGenerations
		case "stagnation-threshold":
			config.StagnationThreshold = overrides.StagnationThreshold
		case "stop-on-stagnation":
			config.StopOnStagnation = overrides.StopOnStagnation
		case "width":
			config.ViewWidth = overrides.ViewWidth
		case "height":
			config.ViewHeight = overrides.ViewHeight
		}
	})
	if fs.NArg() > 0 {
		config.Pattern = fs.Arg(0)
	}

	return config, config.Validate()
}

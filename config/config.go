// Package config loads stepviz settings from defaults, an optional YAML file
// and STEPVIZ_* environment variables, in increasing priority.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/observability"
	"github.com/katalvlaran/stepviz/playback"
)

// Config is the top-level configuration. Field tags use mapstructure for
// viper unmarshalling.
type Config struct {
	Playback PlaybackConfig `mapstructure:"playback" yaml:"playback"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Maze     MazeConfig     `mapstructure:"maze" yaml:"maze"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	Render   RenderConfig   `mapstructure:"render" yaml:"render"`
}

// PlaybackConfig holds controller settings.
type PlaybackConfig struct {
	Speed    string `mapstructure:"speed" yaml:"speed"`
	Autoplay bool   `mapstructure:"autoplay" yaml:"autoplay"`
}

// InputConfig holds generator settings. Zero Seed selects the generator
// default; zero Length keeps each algorithm's own length.
type InputConfig struct {
	Seed        int64 `mapstructure:"seed" yaml:"seed"`
	Length      int   `mapstructure:"length" yaml:"length"`
	BucketCount int   `mapstructure:"bucket_count" yaml:"bucket_count"`
}

// MazeConfig holds the generated grid shape.
type MazeConfig struct {
	Rows        int     `mapstructure:"rows" yaml:"rows"`
	Cols        int     `mapstructure:"cols" yaml:"cols"`
	WallDensity float64 `mapstructure:"wall_density" yaml:"wall_density"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// RenderConfig holds terminal output settings.
type RenderConfig struct {
	Color      bool `mapstructure:"color" yaml:"color"`
	PlotHeight int  `mapstructure:"plot_height" yaml:"plot_height"`
}

// Default values.
const (
	DefaultSpeed       = "medium"
	DefaultAutoplay    = false
	DefaultSeed        = 0
	DefaultLength      = 0
	DefaultBucketCount = 5
	DefaultMazeRows    = 10
	DefaultMazeCols    = 10
	DefaultWallDensity = 0.3
	DefaultLogLevel    = "info"
	DefaultLogFormat   = observability.FormatText
	DefaultColor       = true
	DefaultPlotHeight  = 10
)

// Sentinel errors for invalid configuration.
var (
	// ErrInvalidSpeed indicates playback.speed is not slow, medium or fast.
	ErrInvalidSpeed = errors.New("playback.speed must be slow, medium or fast")
	// ErrInvalidLength indicates input.length is negative or too large.
	ErrInvalidLength = errors.New("input.length must be in [0, 4096]")
	// ErrInvalidBucketCount indicates input.bucket_count is not in [1, input.MaxDomain].
	ErrInvalidBucketCount = errors.New("input.bucket_count must be in [1, 65536]")
	// ErrInvalidMazeSize indicates maze.rows or maze.cols is not positive.
	ErrInvalidMazeSize = errors.New("maze.rows and maze.cols must be positive")
	// ErrInvalidWallDensity indicates maze.wall_density is outside [0,1).
	ErrInvalidWallDensity = errors.New("maze.wall_density must be in [0, 1)")
	// ErrInvalidLogLevel indicates an unknown logging.level.
	ErrInvalidLogLevel = errors.New("logging.level is not a known level")
	// ErrInvalidLogFormat indicates logging.format is not text or json.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
	// ErrInvalidPlotHeight indicates render.plot_height is not positive.
	ErrInvalidPlotHeight = errors.New("render.plot_height must be positive")
)

// Speed returns the parsed playback speed. Call it on a validated Config.
func (c *Config) Speed() playback.Speed {
	s, err := playback.ParseSpeed(c.Playback.Speed)
	if err != nil {
		return playback.Medium
	}

	return s
}

// Validate checks every section.
func (c *Config) Validate() error {
	if _, err := playback.ParseSpeed(c.Playback.Speed); err != nil {
		return ErrInvalidSpeed
	}
	if c.Input.Length < 0 || c.Input.Length > input.MaxLength {
		return ErrInvalidLength
	}
	if c.Input.BucketCount <= 0 || c.Input.BucketCount > input.MaxDomain {
		return ErrInvalidBucketCount
	}
	if c.Maze.Rows <= 0 || c.Maze.Cols <= 0 {
		return ErrInvalidMazeSize
	}
	if c.Maze.WallDensity < 0 || c.Maze.WallDensity >= 1 {
		return ErrInvalidWallDensity
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return ErrInvalidLogLevel
	}
	if c.Logging.Format != observability.FormatText && c.Logging.Format != observability.FormatJSON {
		return ErrInvalidLogFormat
	}
	if c.Render.PlotHeight <= 0 {
		return ErrInvalidPlotHeight
	}

	return nil
}

package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".stepviz"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. STEPVIZ_PLAYBACK_SPEED.
const envPrefix = "STEPVIZ"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load reads configuration from defaults, the config file and environment
// variables. A non-empty path names the file explicitly and must exist;
// otherwise .stepviz.yaml is searched in the working directory and $HOME
// and may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{Speed: DefaultSpeed, Autoplay: DefaultAutoplay},
		Input:    InputConfig{Seed: DefaultSeed, Length: DefaultLength, BucketCount: DefaultBucketCount},
		Maze:     MazeConfig{Rows: DefaultMazeRows, Cols: DefaultMazeCols, WallDensity: DefaultWallDensity},
		Logging:  LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Render:   RenderConfig{Color: DefaultColor, PlotHeight: DefaultPlotHeight},
	}
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("playback.speed", DefaultSpeed)
	v.SetDefault("playback.autoplay", DefaultAutoplay)

	v.SetDefault("input.seed", DefaultSeed)
	v.SetDefault("input.length", DefaultLength)
	v.SetDefault("input.bucket_count", DefaultBucketCount)

	v.SetDefault("maze.rows", DefaultMazeRows)
	v.SetDefault("maze.cols", DefaultMazeCols)
	v.SetDefault("maze.wall_density", DefaultWallDensity)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	v.SetDefault("render.color", DefaultColor)
	v.SetDefault("render.plot_height", DefaultPlotHeight)
}

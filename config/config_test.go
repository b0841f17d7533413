package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/input"
	"github.com/katalvlaran/stepviz/playback"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, playback.Medium, cfg.Speed())
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(writeFile(t, `
playback:
  speed: fast
  autoplay: true
input:
  seed: 42
  length: 12
  bucket_count: 4
maze:
  rows: 6
  cols: 8
  wall_density: 0.25
logging:
  level: debug
  format: json
render:
  color: false
  plot_height: 5
`))
	require.NoError(t, err)
	assert.Equal(t, playback.Fast, cfg.Speed())
	assert.True(t, cfg.Playback.Autoplay)
	assert.Equal(t, int64(42), cfg.Input.Seed)
	assert.Equal(t, 12, cfg.Input.Length)
	assert.Equal(t, 4, cfg.Input.BucketCount)
	assert.Equal(t, 6, cfg.Maze.Rows)
	assert.Equal(t, 8, cfg.Maze.Cols)
	assert.InDelta(t, 0.25, cfg.Maze.WallDensity, 1e-9)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Render.Color)
	assert.Equal(t, 5, cfg.Render.PlotHeight)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STEPVIZ_PLAYBACK_SPEED", "slow")
	t.Setenv("STEPVIZ_INPUT_SEED", "7")
	cfg, err := config.Load(writeFile(t, "playback:\n  speed: fast\n"))
	require.NoError(t, err)
	assert.Equal(t, playback.Slow, cfg.Speed())
	assert.Equal(t, int64(7), cfg.Input.Seed)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"Speed", func(c *config.Config) { c.Playback.Speed = "warp" }, config.ErrInvalidSpeed},
		{"Length", func(c *config.Config) { c.Input.Length = -1 }, config.ErrInvalidLength},
		{"Buckets", func(c *config.Config) { c.Input.BucketCount = 0 }, config.ErrInvalidBucketCount},
		{"BucketsTooMany", func(c *config.Config) { c.Input.BucketCount = input.MaxDomain + 1 }, config.ErrInvalidBucketCount},
		{"MazeRows", func(c *config.Config) { c.Maze.Rows = 0 }, config.ErrInvalidMazeSize},
		{"Density", func(c *config.Config) { c.Maze.WallDensity = 1 }, config.ErrInvalidWallDensity},
		{"Level", func(c *config.Config) { c.Logging.Level = "chatty" }, config.ErrInvalidLogLevel},
		{"Format", func(c *config.Config) { c.Logging.Format = "xml" }, config.ErrInvalidLogFormat},
		{"PlotHeight", func(c *config.Config) { c.Render.PlotHeight = 0 }, config.ErrInvalidPlotHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			require.NoError(t, cfg.Validate())
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}

	_, err := config.Load(writeFile(t, "maze:\n  rows: -2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidMazeSize)
}

// Package commands implements the stepviz cobra commands.
package commands

import (
	"io/fs"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/observability"
	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/registry"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/session"
)

// Version is set at build time with -ldflags "-X .../commands.Version=...".
var Version = "dev"

// app is the state shared by all commands of one invocation.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string
	noColor   bool
	seed      int64

	cfg      *config.Config
	log      *logrus.Logger
	reg      *registry.Registry
	promReg  *prometheus.Registry
	metrics  *observability.Metrics
	renderer *render.Renderer
}

// NewRootCommand returns the stepviz command tree.
func NewRootCommand() *cobra.Command {
	a := &app{reg: registry.Default()}
	root := &cobra.Command{
		Use:   "stepviz",
		Short: "Record algorithm executions step by step and replay them",
		Long: `stepviz runs sorting, searching, heap, tree and maze algorithms while
recording every atomic state change, then prints or replays the trace.

Settings come from .stepviz.yaml, STEPVIZ_* variables (a .env file is
loaded first) and flags, in increasing priority.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "config file (default .stepviz.yaml in . or $HOME)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.Int64Var(&a.seed, "seed", 0, "input generator seed (0 = default)")

	root.AddCommand(
		newListCommand(a),
		newRunCommand(a),
		newPlayCommand(a),
		newVerifyCommand(a),
		newMazeCommand(a),
		newVersionCommand(),
	)

	return root
}

// setup loads .env and the configuration, applies flag overrides and builds
// the logger, metrics and renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "load .env")
	}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("seed") {
		cfg.Input.Seed = a.seed
	}
	if a.noColor {
		cfg.Render.Color = false
	}
	if err = cfg.Validate(); err != nil {
		return errors.Wrap(err, "validate flags")
	}

	if a.log, err = observability.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}
	a.promReg = prometheus.NewRegistry()
	a.metrics = observability.NewMetrics()
	if err = a.metrics.Register(a.promReg); err != nil {
		return errors.Wrap(err, "register metrics")
	}
	a.renderer = render.New(render.WithColor(cfg.Render.Color), render.WithPlotHeight(cfg.Render.PlotHeight))
	a.cfg = cfg
	a.log.WithField("command", cmd.Name()).Debug("stepviz: configured")

	return nil
}

// session returns a Session configured from a.cfg; opts are applied last.
func (a *app) session(opts ...session.Option) *session.Session {
	base := []session.Option{
		session.WithRegistry(a.reg),
		session.WithSeed(a.cfg.Input.Seed),
		session.WithLength(a.cfg.Input.Length),
		session.WithBuckets(a.cfg.Input.BucketCount),
		session.WithMaze(a.cfg.Maze.Rows, a.cfg.Maze.Cols, a.cfg.Maze.WallDensity),
		session.WithLogger(logrus.NewEntry(a.log)),
		session.WithMetrics(a.metrics),
		session.WithPlayback(playback.WithSpeed(a.cfg.Speed())),
	}

	return session.New(append(base, opts...)...)
}

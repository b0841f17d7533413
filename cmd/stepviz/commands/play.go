package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/session"
	"github.com/katalvlaran/stepviz/trace"
)

const metricsShutdownTimeout = 2 * time.Second

const playHelp = "commands: n(ext) | p(rev) | g(o) N | r(eset) | play | pause | speed slow|medium|fast | q(uit)"

// frame is one Step delivered by the playback controller.
type frame struct {
	cursor int
	step   trace.Step
}

// frameQueue buffers controller notifications without ever blocking the
// notifying goroutine, which may be the reader itself.
type frameQueue struct {
	mu     sync.Mutex
	frames []frame
	wake   chan struct{}
}

func newFrameQueue() *frameQueue {
	return &frameQueue{wake: make(chan struct{}, 1)}
}

func (q *frameQueue) push(cursor int, st trace.Step) {
	q.mu.Lock()
	q.frames = append(q.frames, frame{cursor: cursor, step: st})
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *frameQueue) drain() []frame {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.frames
	q.frames = nil

	return out
}

func newPlayCommand(a *app) *cobra.Command {
	var (
		in          inputFlags
		speed       string
		autoplay    bool
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "play <algorithm>",
		Short: "Replay one execution step by step",
		Long: `Play records one execution and replays it. With autoplay (the
--autoplay flag or playback.autoplay) the steps advance at the chosen speed
and play exits after the last one. Otherwise commands are read from stdin:

  ` + playHelp + `

Ctrl-C stops the replay.`,
		Example: `  stepviz play quick --autoplay --speed fast
  stepviz play maze-dfs --autoplay --metrics-addr :9090
  printf 'n\nn\ng 1\nq\n' | stepviz play bubble --values 3,1,2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := a.cfg.Speed()
			if cmd.Flags().Changed("speed") {
				var err error
				if sp, err = playback.ParseSpeed(speed); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("autoplay") {
				autoplay = a.cfg.Playback.Autoplay
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if metricsAddr != "" {
				shutdown, err := a.serveMetrics(metricsAddr)
				if err != nil {
					return err
				}
				defer shutdown()
			}

			q := newFrameQueue()
			opts := append(in.options(cmd), session.WithPlayback(playback.WithSpeed(sp), playback.WithOnStep(q.push)))
			s := a.session(opts...)
			defer s.Close()
			if err := in.load(cmd, s, args[0]); err != nil {
				return err
			}
			// Select and Submit each announce cursor 0, keep the last one
			p := &player{
				renderer: a.renderer,
				s:        s,
				out:      cmd.OutOrStdout(),
				log:      a.log.WithFields(logrus.Fields{"algorithm": s.Algorithm().ID(), "session": s.ID()}),
				total:    s.Controller().Len(),
			}
			if pending := q.drain(); len(pending) > 0 {
				p.print(pending[len(pending)-1:])
			}

			if autoplay {
				return p.auto(ctx, q)
			}

			return p.interactive(ctx, q, cmd.InOrStdin())
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&speed, "speed", "", "playback speed: slow, medium or fast (default from config)")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "advance automatically instead of reading commands (default from config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while playing")

	return cmd
}

// player prints the frames of one session.
type player struct {
	renderer *render.Renderer
	s        *session.Session
	out      io.Writer
	log      *logrus.Entry
	total    int
}

// print renders frames and reports whether the last Step was reached.
func (p *player) print(frames []frame) bool {
	last := false
	for _, f := range frames {
		fmt.Fprintln(p.out, p.renderer.Step(f.step, f.cursor, p.total))
		last = f.cursor == p.total-1
	}

	return last
}

// auto plays to the last Step or until ctx ends. A Controller that refuses
// to play, e.g. already at its last Step, has nothing left to show.
func (p *player) auto(ctx context.Context, q *frameQueue) error {
	ctrl := p.s.Controller()
	if !ctrl.Play() {
		p.log.WithField("cursor", ctrl.Cursor()).Info("play: nothing to play")

		return nil
	}
	p.log.WithField("steps", p.total).Info("play: started")
	for {
		select {
		case <-ctx.Done():
			ctrl.Pause()
			p.log.WithField("cursor", ctrl.Cursor()).Info("play: interrupted")

			return nil
		case <-q.wake:
			if p.print(q.drain()) {
				p.log.Info("play: finished")

				return nil
			}
		}
	}
}

// interactive executes one command per input line until quit, EOF or ctx
// ends.
func (p *player) interactive(ctx context.Context, q *frameQueue, r io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	ctrl := p.s.Controller()
	for {
		select {
		case <-ctx.Done():
			ctrl.Pause()

			return nil
		case <-q.wake:
			p.print(q.drain())
		case line, ok := <-lines:
			quit := !ok
			if ok {
				var err error
				if quit, err = p.command(ctrl, line); err != nil {
					fmt.Fprintln(p.out, err)
				}
			}
			if quit {
				ctrl.Pause()
				p.print(q.drain())

				return nil
			}
		}
	}
}

// command applies one interactive command and reports whether to quit.
func (p *player) command(ctrl *playback.Controller, line string) (bool, error) {
	fields := strings.Fields(line)
	name := ""
	if len(fields) > 0 {
		name = fields[0]
	}
	accepted := true
	switch name {
	case "", "n", "next":
		accepted = ctrl.Next()
	case "p", "prev":
		accepted = ctrl.Prev()
	case "g", "go", "seek":
		if len(fields) != 2 {
			return false, errors.New("usage: g N")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, errors.Newf("bad step %q", fields[1])
		}
		accepted = ctrl.Seek(n - 1)
	case "r", "reset":
		ctrl.Reset()
	case "play":
		if !ctrl.Play() {
			return false, errors.New("already playing or at the last step")
		}
	case "pause":
		ctrl.Pause()
	case "speed":
		if len(fields) != 2 {
			return false, errors.New("usage: speed slow|medium|fast")
		}
		sp, err := playback.ParseSpeed(fields[1])
		if err != nil {
			return false, err
		}
		if err = ctrl.SetSpeed(sp); err != nil {
			return false, err
		}
	case "q", "quit":
		return true, nil
	default:
		return false, errors.Newf("unknown command %q; %s", name, playHelp)
	}
	if !accepted {
		return false, errors.New("pause first")
	}

	return false, nil
}

// serveMetrics exposes the metrics registry over HTTP until the returned
// function is called.
func (a *app) serveMetrics(addr string) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", addr)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.promReg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if serr := srv.Serve(ln); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			a.log.WithError(serr).Warn("play: metrics server stopped")
		}
	}()
	a.log.WithField("addr", ln.Addr().String()).Info("play: serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

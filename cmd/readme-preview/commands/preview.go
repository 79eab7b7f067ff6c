package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/readme-preview/internal/config"
	derrors "git.home.luguber.info/inful/readme-preview/internal/foundation/errors"
	"git.home.luguber.info/inful/readme-preview/internal/logfields"
	"git.home.luguber.info/inful/readme-preview/internal/metrics"
	"git.home.luguber.info/inful/readme-preview/internal/preview"
	"git.home.luguber.info/inful/readme-preview/internal/render"
)

// PreviewCmd serves the rendered README locally and re-renders it on change.
type PreviewCmd struct {
	RenderFlags `embed:""`

	Port    int  `short:"p" help:"Preview port (default: 4173)"`
	NoOpen  bool `name:"no-open" help:"Do not open browser"`
	NoWatch bool `name:"no-watch" help:"Serve the first render only"`
	Metrics bool `help:"Expose Prometheus metrics at /metrics"`
}

func (p *PreviewCmd) Run(g *Global, root *CLI) error {
	cfg, cwd, err := resolveRender(root, &p.RenderFlags)
	if err != nil {
		return err
	}
	if p.Port != 0 {
		cfg.Port = p.Port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return p.serve(ctx, g.Logger, cfg, RenderOptions(cfg, cwd), os.Stdout)
}

func (p *PreviewCmd) serve(ctx context.Context, logger *slog.Logger, cfg *config.Config, opts render.Options, out io.Writer) error {
	if logger == nil {
		logger = slog.Default()
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	serverOpts := []preview.Option{preview.WithLogger(logger)}
	if p.Metrics {
		reg := prom.NewRegistry()
		prec := metrics.NewPrometheusRecorder(reg)
		recorder = prec
		serverOpts = append(serverOpts, preview.WithRecorder(prec), preview.WithMetricsHandler(metrics.HTTPHandler(reg)))
	}

	source := &preview.Source{
		File:     cfg.File,
		Options:  opts,
		Renderer: render.NewRenderer(),
		Recorder: recorder,
	}
	page, err := source.Build()
	if err != nil {
		return err
	}

	srv := preview.NewServer(page.HTML, serverOpts...)
	ln, err := preview.Listen(cfg.Port)
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryNetwork, "could not start preview server").
			WithContext("port", cfg.Port).Build()
	}

	url := preview.URL(cfg.Port)
	_, _ = fmt.Fprintf(out, "Preview: %s\n", url)
	_, _ = fmt.Fprintln(out, "Press Ctrl+C to stop.")
	logger.Info("Preview server started", logfields.URL(url), logfields.File(cfg.File), logfields.Theme(string(render.ResolveTheme(cfg.Theme))))

	if !p.NoOpen {
		preview.OpenBrowser(url)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx, ln)
	})
	if !p.NoWatch {
		g.Go(func() error {
			return preview.Watch(gctx, cfg.File, func() {
				recorder.IncRebuild("fsnotify")
				next, err := source.Build()
				if err != nil {
					logger.Warn("Re-render failed; keeping previous page", logfields.File(cfg.File), logfields.Error(err))
					return
				}
				srv.SetHTML(next.HTML)
				logger.Info("README re-rendered", logfields.File(cfg.File))
			})
		})
	}
	return g.Wait()
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dbpibus/dbpibus/internal/app"
	"github.com/dbpibus/dbpibus/internal/clock"
	"github.com/dbpibus/dbpibus/internal/config"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/hardware"
	"github.com/dbpibus/dbpibus/internal/server"
	"github.com/dbpibus/dbpibus/internal/version"
	"github.com/dbpibus/dbpibus/internal/view"
	"github.com/dbpibus/dbpibus/internal/xslog"
	"github.com/dbpibus/dbpibus/internal/xsync"
)

const (
	displayLCD = "lcd"
	displayLog = "log"
)

type runOptions struct {
	display    string
	statusAddr string
}

func runCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the display",
		Long: "Polls the stats feed and drives the LCD. With --display=log the " +
			"frames go to the log instead, for running off the Pi.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.display, "display", displayLCD, "where frames go: lcd or log")
	cmd.Flags().StringVar(&opts.statusAddr, "status-addr", "", "serve /status, /lcd, /health and /settings on this address (overrides STATUS_ADDR)")
	return cmd
}

func runDisplay(cmd *cobra.Command, _ []string) error {
	return run(cmd.Context(), runOptions{display: displayLCD})
}

func run(ctx context.Context, opts runOptions) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logger, closer, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	s, store, err := openSettings(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	sink, buttons, release, err := openDisplay(opts.display, cfg, logger)
	if err != nil {
		return err
	}
	defer release()

	poller := xsync.NewPoller(newStatsClient(cfg, logger),
		xsync.WithInterval(cfg.Stats.PollInterval),
		xsync.WithLogger(logger),
	)

	env := view.Env{
		Sink:     sink,
		Clock:    clock.Real{},
		Settings: s,
		Location: loc,
		Logger:   logger,
		Version:  version.Label(version.Get()),
	}
	loop := app.New(env, poller, buttons, app.WithStaleAfter(cfg.Stats.StaleAfter))

	logger.InfoContext(ctx, "starting",
		xslog.Version(),
		xslog.Backend(cfg.Settings.Backend),
		slog.String("display", opts.display),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return poller.Run(ctx) })
	g.Go(func() error { return loop.Run(ctx, cfg.Loop.TickInterval) })

	addr := cfg.Status.Addr
	if opts.statusAddr != "" {
		addr = opts.statusAddr
	}
	if addr != "" {
		srv := server.New(addr, loop, logger,
			server.WithShutdownTimeout(cfg.Status.ShutdownTimeout),
			server.WithSettings(s),
		)
		g.Go(func() error { return srv.Run(ctx) })
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// noButtons never reports a press. The log display has no inputs.
type noButtons struct{}

func (noButtons) Sample() display.Buttons { return display.Buttons{} }

func openDisplay(kind string, cfg config.Config, logger *slog.Logger) (display.Sink, display.ButtonSource, func(), error) {
	switch kind {
	case displayLCD:
		panel, err := hardware.Open(cfg.Pins, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open panel: %w", err)
		}
		release := func() {
			if err := panel.Close(); err != nil {
				logger.Warn("failed to release panel", xslog.Error(err))
			}
		}
		return panel, panel.Buttons(), release, nil
	case displayLog:
		return display.NewLog(logger), noButtons{}, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown display %q (valid: %s, %s)", kind, displayLCD, displayLog)
	}
}

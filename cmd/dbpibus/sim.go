package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/dbpibus/dbpibus/internal/app"
	"github.com/dbpibus/dbpibus/internal/clock"
	"github.com/dbpibus/dbpibus/internal/config"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/tui"
	"github.com/dbpibus/dbpibus/internal/version"
	"github.com/dbpibus/dbpibus/internal/view"
	"github.com/dbpibus/dbpibus/internal/xsync"
)

func simCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sim",
		Short: "Run the display in the terminal",
		Long: "Draws the LCD in the terminal and maps the keyboard to the four " +
			"panel buttons: 1/esc back, 2/- minus, 3/+ plus, 4/enter select. " +
			"Logs go to LOG_FILE, or the rotated log under ~/.config/dbpibus.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sim(cmd.Context())
		},
	}
}

func sim(ctx context.Context) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logger, closer, err := newLogger(cfg, true)
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

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller := xsync.NewPoller(newStatsClient(cfg, logger),
		xsync.WithInterval(cfg.Stats.PollInterval),
		xsync.WithLogger(logger),
	)
	pollerDone := make(chan error, 1)
	go func() { pollerDone <- poller.Run(ctx) }()

	clk := clock.Real{}
	buttons := tui.NewKeyButtons(clk)
	env := view.Env{
		Sink:     display.NewMemory(),
		Clock:    clk,
		Settings: s,
		Location: loc,
		Logger:   logger,
		Version:  version.Label(version.Get()),
	}
	loop := app.New(env, poller, buttons, app.WithStaleAfter(cfg.Stats.StaleAfter))

	model := tui.New(tui.Deps{
		Loop:     loop,
		Buttons:  buttons,
		Interval: cfg.Loop.TickInterval,
	})
	p := tea.NewProgram(&model)

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	cancel()
	return <-pollerDone
}

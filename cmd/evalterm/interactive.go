package main

import (
	"context"
	"fmt"

	"evalterm/internal/cue"
	"evalterm/internal/tui"

	"github.com/atotto/clipboard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, args *rootArgs) error {
	reg := prometheus.NewRegistry()
	client, cfg, err := args.newClient(reg)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		addr, shutdown, err := serveMetrics(cfg.MetricsAddr, reg)
		if err != nil {
			log.Warnf("metrics listener disabled: %v", err)
		} else {
			log.Infof("metrics listening on http://%s/metrics", addr)
			defer func() { _ = shutdown(context.Background()) }()
		}
	}

	var player cue.Player = cue.Nop{}
	if cfg.Sound {
		player = cue.NewBell(cmd.ErrOrStderr())
	}

	log.Infof("starting session against %s (alt screen: %t)", client.BaseURL(), cfg.AltScreen)
	res, err := tui.Run(cmd.Context(), tui.Options{
		Service:         client,
		Cue:             player,
		Language:        cfg.Language,
		URL:             client.BaseURL(),
		RevealInterval:  cfg.RevealInterval(),
		NoReveal:        cfg.RevealInterval() == 0,
		EntranceStagger: cfg.EntranceStagger(),
		CaretBlink:      tui.DefaultCaretBlink,
		Clipboard:       clipboard.WriteAll,
		AltScreen:       cfg.AltScreen,
	})
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	log.Infof("session ended with %d line(s), %d request(s) in flight", len(res.Lines), res.InFlight)
	return nil
}

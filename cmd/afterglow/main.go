package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"afterglow/internal/app"
	"afterglow/internal/core"
	"afterglow/internal/sims/afterglow"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	if cfg.ConfigPath != "" {
		if err := app.LoadConfig(cfg.ConfigPath, cfg); err != nil {
			log.Fatal(err)
		}
		// Flags given explicitly win over the file.
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	switch cfg.Mode {
	case app.ModeWindow:
		err = app.RunWindow(sim, cfg)
	case app.ModeTerminal:
		err = runTerminal(sim, cfg)
	case app.ModeHeadless:
		err = runHeadless(sim, cfg)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runTerminal(sim core.Sim, cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerminal] creating screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTerminal] initializing screen")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return app.RunTerminal(ctx, sim, screen, cfg)
}

func runHeadless(sim core.Sim, cfg *app.Config) error {
	f, err := os.Create(cfg.Out)
	if err != nil {
		return errors.Wrapf(err, "[runHeadless] failed to create %s", cfg.Out)
	}
	if _, err = app.RunHeadless(sim, cfg, f, os.Stdout); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags]\n\n", os.Args[0])
	fmt.Fprintf(out, "Patterns: %s\n", strings.Join(afterglow.PatternNames(), ", "))
	fmt.Fprintln(out, "Keys: space pause, n step, r reset, s reseed, h HUD (window), q/Esc quit")
	fmt.Fprintln(out)
	flag.PrintDefaults()
}

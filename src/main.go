package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elevsim/src/config"
	"elevsim/src/console"
	"elevsim/src/elev"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	scriptPath := flag.String("script", "", "File with commands to run instead of reading stdin")
	interactive := flag.Bool("interactive", false, "Control the elevator with single key presses")
	tick := flag.Duration("tick", 0, "Length of one engine tick, overrides the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *tick > 0 {
		cfg.Tick = *tick
	}
	level, _ := cfg.Level()
	logCloser, err := elev.InitLogger(level, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	elevator := elev.New(cfg.Tick)
	cons := console.New(elevator, os.Stdout)
	slog.Info("Elevator simulator ready", "tick", cfg.Tick)

	switch {
	case *interactive:
		err = cons.RunInteractive(ctx)
	case *scriptPath != "":
		err = runScriptFile(ctx, cons, *scriptPath)
	default:
		err = cons.RunScript(ctx, os.Stdin)
	}
	if err != nil && ctx.Err() == nil {
		slog.Error("Console stopped", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := elevator.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "err", err)
	}
}

func runScriptFile(ctx context.Context, cons *console.Console, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return cons.RunScript(ctx, file)
}

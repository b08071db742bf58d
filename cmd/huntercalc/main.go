// huntercalc computes loadout stat breakdowns from aggregated snapshots.
//
// Usage:
//
//	huntercalc calc [-json] [-record] snapshot.json [more.yaml ...]
//	huntercalc serve
//	huntercalc schema [-out path]
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/huntercalc/internal/config"
)

const ConfigPath = "config/huntercalc.yaml"

type command struct {
	name string
	desc string
	run  func(ctx context.Context, cfg config.HunterCalc, args []string, stdout io.Writer) error
}

var commands = []command{
	{name: "calc", desc: "compute stats for snapshot files", run: runCalc},
	{name: "serve", desc: "serve the HTTP API and websocket stream", run: runServe},
	{name: "schema", desc: "write the snapshot JSON schema", run: runSchema},
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}

	cfgPath := ConfigPath
	if p := os.Getenv("HUNTERCALC_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadHunterCalc(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout carries command output, logs go to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(ctx, cfg, args[1:], os.Stdout)
		}
	}

	printUsage()
	return fmt.Errorf("unknown command %q", args[0])
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: huntercalc <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.desc)
	}
}

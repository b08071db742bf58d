package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/huntercalc/internal/config"
	"github.com/udisondev/huntercalc/internal/db"
	"github.com/udisondev/huntercalc/internal/engine"
	"github.com/udisondev/huntercalc/internal/server"
)

func runServe(ctx context.Context, cfg config.HunterCalc, _ []string, _ io.Writer) error {
	slog.Info("huntercalc server starting", "bind", cfg.BindAddress, "port", cfg.Port, "history", cfg.Database.Enabled)

	e := engine.New(engine.Options{
		Logger:         slog.Default(),
		SkipUnchanged:  cfg.SkipUnchanged,
		CheckTemplates: cfg.CheckTemplates,
	})

	var passes server.PassStore
	if cfg.Database.Enabled {
		database, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := database.Results()
		e.Subscribe(db.NewRecorder(repo, cfg.WriteTimeout, slog.Default()))
		passes = repo
	}

	srv := server.New(e, passes, server.Config{
		Addr:         cfg.Addr(),
		WriteTimeout: cfg.WriteTimeout,
		Logger:       slog.Default(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

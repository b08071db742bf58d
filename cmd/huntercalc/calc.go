package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/huntercalc/internal/config"
	"github.com/udisondev/huntercalc/internal/data"
	"github.com/udisondev/huntercalc/internal/db"
	"github.com/udisondev/huntercalc/internal/engine"
	"github.com/udisondev/huntercalc/internal/render"
)

type fileResult struct {
	File  string       `json:"file"`
	Batch render.Batch `json:"batch"`

	result engine.Result
}

func runCalc(ctx context.Context, cfg config.HunterCalc, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print batches as JSON")
	record := fs.Bool("record", cfg.Database.Enabled, "store passes in the database")
	if err := fs.Parse(args); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return fmt.Errorf("calc: no snapshot files given")
	}

	var recorder *db.Recorder
	if *record {
		database, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close()
		recorder = db.NewRecorder(database.Results(), cfg.WriteTimeout, slog.Default())
	}

	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.BatchWorkers)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			stats, err := data.LoadSnapshot(file)
			if err != nil {
				return err
			}

			e := engine.New(engine.Options{CheckTemplates: cfg.CheckTemplates})
			if recorder != nil {
				e.Subscribe(recorder)
			}
			res, _ := e.Recompute(stats)

			results[i] = fileResult{File: file, Batch: render.NewBatch(res), result: res}
			slog.Debug("snapshot computed", "file", file, "pass", res.Pass)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("calc: %w", err)
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "== %s (pass %s)\n", r.File, r.Batch.Pass)
		if err := render.Text(stdout, r.result); err != nil {
			return err
		}
	}
	return nil
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*db.DB, error) {
	database, err := db.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.DSN()); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")
	return database, nil
}

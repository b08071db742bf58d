package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/udisondev/huntercalc/internal/config"
	"github.com/udisondev/huntercalc/internal/data"
)

func runSchema(_ context.Context, _ config.HunterCalc, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	outPath := fs.String("out", "", "path to write the JSON schema (stdout when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	payload, err := data.SchemaJSON()
	if err != nil {
		return err
	}

	if *outPath == "" {
		_, err := stdout.Write(payload)
		return err
	}
	return writeSchema(*outPath, payload)
}

func writeSchema(outPath string, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tag-validator/internal/app"
	"tag-validator/internal/cli"
	"tag-validator/internal/config"
	"tag-validator/internal/logger"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(func(ctx context.Context, catalogFile string) (*cli.App, func(), error) {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		if err := logger.Initialize(cfg.Logger); err != nil {
			return nil, nil, fmt.Errorf("initializing logger: %w", err)
		}

		c := app.New(ctx, cfg, logger.Get(), app.Options{CatalogFile: catalogFile})
		release := func() {
			_ = c.Close()
			_ = logger.Sync()
		}
		return &cli.App{
			Validation: c.Validation,
			Catalog:    c.Catalog,
			Extractor:  c.Extractor,
		}, release, nil
	})

	return root.ExecuteContext(ctx)
}

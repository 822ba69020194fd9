package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/gestfinance-api/internal/bootstrap"
	"github.com/jhoicas/gestfinance-api/internal/cli"
	"github.com/jhoicas/gestfinance-api/pkg/config"
	"github.com/jhoicas/gestfinance-api/pkg/logger"
)

func main() {
	open := func(ctx context.Context) (*bootstrap.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Output: os.Stderr})
		return bootstrap.New(ctx, cfg, log)
	}

	if err := cli.Execute(context.Background(), open, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

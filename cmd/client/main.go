// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-item-sync/internal/cli"
	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	root := cli.NewRootCommand(newRuntime)
	root.Version = models.NewBuildInfo(buildVersion, buildDate, buildCommit).String()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		stop()
		os.Exit(1)
	}
}

func newRuntime(ctx context.Context, cfg *config.ClientConfig, opts client.Options, log *logger.Logger) (client.Runtime, error) {
	app, err := client.NewApp(ctx, cfg, opts, log)
	if err != nil {
		return nil, err
	}
	return app, nil
}

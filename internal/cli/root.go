// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
)

const loggerRole = "go-item-client"

// RuntimeFactory assembles the client runtime for one command invocation.
type RuntimeFactory func(ctx context.Context, cfg *config.ClientConfig, opts client.Options, log *logger.Logger) (client.Runtime, error)

type rootFlags struct {
	configPath string
	server     string
	dsn        string
	logLevel   string
	logFile    string
	offline    bool
}

func (f rootFlags) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		FilePath: f.configPath,
		Storage:  config.Storage{DB: config.DB{DSN: f.dsn}},
		Adapter:  config.Adapter{HTTPAddress: f.server},
		Log:      config.Log{Level: f.logLevel, File: f.logFile},
	}
}

type cli struct {
	factory RuntimeFactory
	flags   rootFlags
}

// NewRootCommand builds the client command tree on top of factory.
func NewRootCommand(factory RuntimeFactory) *cobra.Command {
	c := &cli{factory: factory}

	root := &cobra.Command{
		Use:   "go-item-client",
		Short: "Offline-first item client",
		Long: `Keep a local list of items and reconcile it with the remote service.

Reads and writes always hit the local store first. Changes made while the
remote service is unreachable are queued and pushed by "sync" or by the
background job started with "run".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.configPath, "config", "c", "", "config file path (JSON or YAML)")
	pf.StringVarP(&c.flags.server, "server", "s", "", "remote service base URL")
	pf.StringVarP(&c.flags.dsn, "db", "d", "", "local SQLite file")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&c.flags.logFile, "log-file", "", "log file; stderr when empty")
	pf.BoolVar(&c.flags.offline, "offline", false, "never contact the remote service")

	root.AddCommand(
		c.listCommand(),
		c.showCommand(),
		c.addCommand(),
		c.updateCommand(),
		c.deleteCommand(),
		c.syncCommand(),
		c.watchCommand(),
		c.runCommand(),
	)

	return root
}

type runtimeFunc func(cmd *cobra.Command, args []string, rt client.Runtime) error

// withRuntime opens the runtime before fn and closes it afterwards.
func (c *cli) withRuntime(fn runtimeFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rt, log, err := c.open(cmd.Context())
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := rt.Close(); closeErr != nil {
				log.Err(closeErr).Str("func", "cli.withRuntime").Msg("failed to close local store")
				err = errors.Join(err, closeErr)
			}
		}()

		return fn(cmd, args, rt)
	}
}

func (c *cli) open(ctx context.Context) (client.Runtime, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(c.flags.overrides())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(loggerRole, logger.FileOptions{
		Path:  cfg.Log.File,
		Level: cfg.Log.Level,
	})

	rt, err := c.factory(ctx, cfg, client.Options{Offline: c.flags.offline}, log)
	if err != nil {
		log.Err(err).Str("func", "cli.open").Msg("failed to start client")
		return nil, nil, err
	}
	if rt == nil {
		return nil, nil, ErrNilRuntime
	}

	log.Debug().
		Str("func", "cli.open").
		Str("db", cfg.Storage.DB.DSN).
		Str("server", cfg.Adapter.HTTPAddress).
		Bool("offline", c.flags.offline).
		Msg("client runtime ready")
	return rt, log, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(arg), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}
	return id, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the reference server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage Storage
	Log     Log
}

// GetServerConfig loads, merges, and validates the server configuration.
// args are the command-line arguments without the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	flagsCfg, err := ParseServerFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flagsCfg).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server: cfg.Server,
		Log:    cfg.Log,
	}
	// the client default DSN is a SQLite path and means nothing here
	if cfg.Storage.DB.DSN != DefaultClientDSN {
		serverCfg.Storage = cfg.Storage
	}

	return serverCfg, serverCfg.validate()
}

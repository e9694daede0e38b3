// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-item-sync/internal/client"
)

func (c *cli) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream the item list as it changes",
		Args:  cobra.NoArgs,
		RunE: c.withRuntime(func(cmd *cobra.Command, _ []string, rt client.Runtime) error {
			rt.Probe(cmd.Context())
			return watch(cmd.Context(), cmd.OutOrStdout(), rt)
		}),
	}
}

func (c *cli) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run background sync and stream the item list until interrupted",
		Args:  cobra.NoArgs,
		RunE: c.withRuntime(func(cmd *cobra.Command, _ []string, rt client.Runtime) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			rt.Probe(ctx)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return rt.RunWorkers(gctx)
			})
			g.Go(func() error {
				defer cancel()
				return watch(gctx, cmd.OutOrStdout(), rt)
			})

			return g.Wait()
		}),
	}
}

// watch prints every snapshot until ctx is done or the stream ends.
func watch(ctx context.Context, out io.Writer, rt client.Runtime) error {
	sub := rt.Items().Observe(ctx)
	defer sub.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-sub.C:
			if !ok {
				return nil
			}
			printSnapshot(out, snap)
		}
	}
}

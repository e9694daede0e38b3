// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/internal/service"
)

func (c *cli) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push queued changes and merge remote items",
		Args:  cobra.NoArgs,
		RunE: c.withRuntime(func(cmd *cobra.Command, _ []string, rt client.Runtime) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			rt.Probe(ctx)
			fmt.Fprintf(out, "%s Syncing...\n", renderAccent("↻"))

			report, err := rt.Items().Sync(ctx)
			if service.KindOf(err) == service.KindRemoteUnavailable {
				return err
			}

			printReport(out, report)
			return err
		}),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-item-sync/internal/client"
	"github.com/MKhiriev/go-item-sync/internal/service"
	"github.com/MKhiriev/go-item-sync/models"
)

func (c *cli) listCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active items",
		Args:  cobra.NoArgs,
		RunE: c.withRuntime(func(cmd *cobra.Command, _ []string, rt client.Runtime) error {
			ctx := cmd.Context()
			rt.Probe(ctx)

			if refresh {
				if err := rt.Items().Refresh(ctx); err != nil {
					return err
				}
			}

			items, err := rt.Items().List(ctx)
			if err != nil {
				return err
			}

			printItems(cmd.OutOrStdout(), items)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "merge remote items before listing")
	return cmd
}

func (c *cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: c.withRuntime(func(cmd *cobra.Command, args []string, rt client.Runtime) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			item, err := rt.Items().Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			printItem(cmd.OutOrStdout(), item)
			return nil
		}),
	}
}

func (c *cli) addCommand() *cobra.Command {
	var fields models.ItemFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		Args:  cobra.NoArgs,
		RunE: c.withRuntime(func(cmd *cobra.Command, _ []string, rt client.Runtime) error {
			ctx := cmd.Context()
			rt.Probe(ctx)

			item, err := rt.Items().Add(ctx, fields)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added #%d %s%s\n", renderPass("✓"), item.LocalID, item.Name, queuedSuffix(item))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&fields.Name, "name", "n", "", "item name")
	cmd.Flags().StringVarP(&fields.Description, "description", "D", "", "item description")
	return cmd
}

func (c *cli) updateCommand() *cobra.Command {
	var fields models.ItemFields

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit an item",
		Long:  "Edit an item. Omitted flags keep the current value.",
		Args:  cobra.ExactArgs(1),
		RunE: c.withRuntime(func(cmd *cobra.Command, args []string, rt client.Runtime) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			nameSet := cmd.Flags().Changed("name")
			descSet := cmd.Flags().Changed("description")
			if !nameSet && !descSet {
				return ErrNothingToUpdate
			}

			ctx := cmd.Context()
			current, err := rt.Items().Get(ctx, id)
			if err != nil {
				return err
			}
			if !nameSet {
				fields.Name = current.Name
			}
			if !descSet {
				fields.Description = current.Description
			}

			rt.Probe(ctx)
			item, err := rt.Items().Update(ctx, id, fields)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated #%d %s%s\n", renderPass("✓"), item.LocalID, item.Name, queuedSuffix(item))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&fields.Name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&fields.Description, "description", "D", "", "new description")
	return cmd
}

func (c *cli) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: c.withRuntime(func(cmd *cobra.Command, args []string, rt client.Runtime) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt.Probe(ctx)

			err = rt.Items().Delete(ctx, id)
			switch {
			case service.KindOf(err) == service.KindRemote:
				fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted #%d locally; the remote delete failed and stays queued: %v\n", renderWarn("⚠"), id, err)
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted #%d\n", renderPass("✓"), id)
			return nil
		}),
	}
}

func queuedSuffix(item models.Item) string {
	if item.PendingSync {
		return " " + renderMuted("(queued for sync)")
	}
	return ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the command-line front end of the sync client.
//
// Commands:
//
//	list [--refresh]                          active items
//	show <id>                                 one item
//	add --name N --description D              new item
//	update <id> [--name N] [--description D]  edit an item
//	delete <id>                               delete an item
//	sync                                      drain the pending queue
//	watch                                     stream item snapshots
//	run                                       background workers + watch
//
// Every command assembles a [client.Runtime] through the factory given to
// [NewRootCommand] and closes it on return.
package cli

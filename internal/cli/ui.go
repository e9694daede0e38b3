// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-item-sync/models"
)

const (
	idWidth     = 6
	statusWidth = 11
	nameWidth   = 24
	descWidth   = 40
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func renderPass(s string) string   { return passStyle.Render(s) }
func renderWarn(s string) string   { return warnStyle.Render(s) }
func renderFail(s string) string   { return failStyle.Render(s) }
func renderAccent(s string) string { return accentStyle.Render(s) }
func renderMuted(s string) string  { return mutedStyle.Render(s) }

// RenderError formats err for stderr.
func RenderError(err error) string {
	return fmt.Sprintf("%s %v", renderFail("✗"), err)
}

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(fitText(s, width-1))
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func itemStatus(item models.Item) string {
	if item.PendingSync {
		return renderWarn("●") + " pending"
	}
	return renderPass("✓") + " synced"
}

// statusCell pads the status after styling so escape codes do not skew the
// column width.
func statusCell(item models.Item) string {
	label := "synced"
	if item.PendingSync {
		label = "pending"
	}
	return itemStatus(item) + fmt.Sprintf("%*s", statusWidth-len(label)-2, "")
}

func printItems(w io.Writer, items []models.Item) {
	if len(items) == 0 {
		fmt.Fprintf(w, "  %s\n", renderMuted("no items"))
		return
	}

	header := cell("ID", idWidth) + cell("STATUS", statusWidth) + cell("NAME", nameWidth) + "DESCRIPTION"
	fmt.Fprintf(w, "  %s\n", headerStyle.Render(header))
	for _, item := range items {
		fmt.Fprintf(w, "  %s%s%s%s\n",
			cell(fmt.Sprintf("#%d", item.LocalID), idWidth),
			statusCell(item),
			cell(item.Name, nameWidth),
			fitText(item.Description, descWidth),
		)
	}
}

func printItem(w io.Writer, item models.Item) {
	remote := item.RemoteKey()
	if remote == "" {
		remote = renderMuted("-")
	}

	fmt.Fprintf(w, "%s #%d\n", renderAccent("●"), item.LocalID)
	fmt.Fprintf(w, "   Name:        %s\n", item.Name)
	fmt.Fprintf(w, "   Description: %s\n", item.Description)
	fmt.Fprintf(w, "   Remote ID:   %s\n", remote)
	fmt.Fprintf(w, "   Status:      %s\n", itemStatus(item))
}

func printReport(w io.Writer, report models.SyncReport) {
	marker := renderPass("✓")
	title := "Sync complete"
	if !report.OK() {
		marker = renderWarn("⚠")
		title = "Sync finished with failures"
	}

	fmt.Fprintf(w, "%s %s\n", marker, title)
	fmt.Fprintf(w, "   Pending: %d\n", report.Pending)
	fmt.Fprintf(w, "   Created: %d\n", report.Created)
	fmt.Fprintf(w, "   Updated: %d\n", report.Updated)
	fmt.Fprintf(w, "   Deleted: %d\n", report.Deleted)
	fmt.Fprintf(w, "   Purged:  %d\n", report.Purged)
	fmt.Fprintf(w, "   Merged:  %d\n", report.Merged)

	for _, f := range report.Failures {
		target := fmt.Sprintf("#%d", f.LocalID)
		if f.LocalID == 0 {
			target = "remote items"
		}
		fmt.Fprintf(w, "   %s %s %s: %v\n", renderFail("✗"), f.Op, target, f.Err)
	}
}

func printSnapshot(w io.Writer, snap models.ItemsSnapshot) {
	switch {
	case snap.Loading:
		fmt.Fprintf(w, "%s loading...\n", renderAccent("…"))
	case snap.Err != nil:
		fmt.Fprintf(w, "%s %v\n", renderFail("✗"), snap.Err)
	default:
		fmt.Fprintf(w, "%s %d item(s)\n", renderAccent("●"), len(snap.Items))
		printItems(w, snap.Items)
	}
}

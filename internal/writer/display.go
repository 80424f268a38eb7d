// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/neo-engine/internal/engine"
	"github.com/pdiddy/neo-engine/internal/query"
	"github.com/pdiddy/neo-engine/pkg/types"
)

const maxCellWidth = 40

// header and rows return the tabular form of a result.
func header(res engine.Result) []string {
	if res.Kind == query.KindPath {
		return types.PathHeader
	}
	return types.NEOHeader
}

func rows(res engine.Result) [][]string {
	var out [][]string
	if res.Kind == query.KindPath {
		for _, p := range res.Paths {
			out = append(out, p.Row())
		}
		return out
	}
	for _, n := range res.NEOs {
		out = append(out, n.Row())
	}
	return out
}

// writeTable writes res as an aligned table with a bold header.
func writeTable(w io.Writer, res engine.Result) error {
	body := rows(res)
	if len(body) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}

	cols := header(res)
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = len(c)
	}
	for _, row := range body {
		for i, cell := range row {
			row[i] = truncate(cell, maxCellWidth)
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	bold := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	fmt.Fprintln(w, bold.Render(formatRow(cols, widths)))
	total := len(widths) * 2
	for _, n := range widths {
		total += n
	}
	fmt.Fprintln(w, strings.Repeat("-", total-2))
	for _, row := range body {
		fmt.Fprintln(w, formatRow(row, widths))
	}

	fmt.Fprintf(w, "\n%d %s", len(body), noun(res))
	if res.DupsRemoved > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", res.DupsRemoved)
	}
	_, err := fmt.Fprintln(w)
	return err
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 {
			b.WriteString(cell)
			continue
		}
		fmt.Fprintf(&b, "%-*s", widths[i], cell)
	}
	return b.String()
}

func noun(res engine.Result) string {
	if res.Kind == query.KindPath {
		return "orbit paths"
	}
	return "objects"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// Package report renders a generator run as a terminal summary.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/handiism/motogp-nospoiler/internal/generate"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Status labels used in the summary table.
const (
	StatusOK     = "OK"
	StatusFailed = "FAILED"
)

// Table renders one row per season followed by a totals footer.
func Table(r *generate.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Season", "Events", "Pages", "Size", "Status"})
	for _, y := range r.Years {
		tw.AppendRow(table.Row{
			y.Year,
			strconv.Itoa(y.Events),
			strconv.Itoa(y.Pages),
			humanize.Bytes(uint64(y.Bytes)),
			status(y),
		})
	}
	tw.AppendFooter(table.Row{
		"Total",
		"",
		strconv.Itoa(r.Pages()),
		humanize.Bytes(uint64(r.Bytes())),
		fmt.Sprintf("%d failed", len(r.Failed())),
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// Lines returns the run metadata and one line per failed season.
func Lines(r *generate.Report) []string {
	lines := []string{
		fmt.Sprintf("Run %s finished in %s", r.RunID, r.Duration().Round(time.Millisecond)),
	}
	if r.Landing.Year != "" {
		landing := fmt.Sprintf("Landing page: %s.html", r.Landing.Year)
		if r.Landing.Fallback {
			landing += " (previous season)"
		}
		lines = append(lines, landing)
	}
	for _, y := range r.Failed() {
		lines = append(lines, fmt.Sprintf("%s: %v", y.Year, y.Err))
	}
	return lines
}

// String renders the table and the lines as one block.
func String(r *generate.Report) string {
	var b strings.Builder
	b.WriteString(Table(r))
	for _, line := range Lines(r) {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

func status(y generate.YearResult) string {
	if y.OK() {
		return StatusOK
	}
	return StatusFailed
}

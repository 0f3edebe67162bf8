package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosieve/internal/sieve"
)

// DrawASCIICurve renders the passing curve in the terminal. The x-axis
// runs coarsest sieve to pan, left to right; the pan itself is skipped
// since it has no opening size.
func DrawASCIICurve(a *sieve.Analysis) string {
	var series []float64
	var labels []string
	for _, r := range a.Rows {
		if r.Size <= sieve.PanSize {
			continue
		}
		series = append(series, r.PercentPassing)
		labels = append(labels, fmt.Sprintf("%.3g", r.Size))
	}
	if len(series) == 0 {
		return ""
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(4*len(series)),
		asciigraph.Precision(0),
		asciigraph.Caption("% passing vs sieve position (coarse → fine)"),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  PARTICLE SIZE DISTRIBUTION\n")
	sb.WriteString("  ──────────────────────────\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Sieves (mm): %s\n", strings.Join(labels, " → ")))
	return sb.String()
}

// DrawSummaryBox frames the interpretation lines in a box for the
// terminal report.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		pad := maxLen - 2 - len([]rune(line))
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(fmt.Sprintf("  ║  %s%s  ║\n", line, strings.Repeat(" ", pad)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

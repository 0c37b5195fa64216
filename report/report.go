// Package report turns engine results into terminal text: paths, the DFS
// versus BFS comparison, the degree summary and the all-pairs table.
// Headings are styled with lipgloss; on a non-terminal writer they degrade
// to plain text.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/citygraph/analytics"
	"github.com/katalvlaran/citygraph/dijkstra"
)

// NoPath is printed for a missing path.
const NoPath = "no path found"

// Arrow joins the cities of a path.
const Arrow = " -> "

var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorWarning = lipgloss.Color("#F4D03F")
)

// Printer writes styled report sections to one writer.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

// New returns a Printer whose color profile is detected from w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		muted:   r.NewStyle().Foreground(colorMuted),
		warning: r.NewStyle().Foreground(colorWarning),
	}
}

// Writer returns the destination of p.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Heading prints a styled section title.
func (p *Printer) Heading(text string) error {
	_, err := fmt.Fprintln(p.w, p.title.Render(text))

	return err
}

// Notice prints a non-fatal warning line.
func (p *Printer) Notice(format string, args ...any) error {
	_, err := fmt.Fprintln(p.w, p.warning.Render(fmt.Sprintf(format, args...)))

	return err
}

// Summary prints the degree summary as indented JSON under a heading.
func (p *Printer) Summary(s *analytics.Summary) error {
	if s == nil {
		return fmt.Errorf("report: summary is nil")
	}
	if err := p.Heading("City transport network summary:"); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode summary: %w", err)
	}
	_, err = fmt.Fprintln(p.w, string(b))

	return err
}

// Paths prints the DFS and BFS paths followed by ExplainDifference.
func (p *Printer) Paths(dfsPath, bfsPath []string) error {
	_, err := fmt.Fprintf(p.w, "DFS path: %s\nBFS path: %s\n\n%s\n",
		FormatPath(dfsPath), FormatPath(bfsPath), ExplainDifference(dfsPath, bfsPath))

	return err
}

// AllPairs prints one block per source in order. Each line is either
// "unreachable" or "<distance> km (<path>)".
func (p *Printer) AllPairs(table map[string]map[string]dijkstra.Route, order []string) error {
	for _, from := range order {
		row, ok := table[from]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
		if err := p.Heading(fmt.Sprintf("Shortest paths from %s:", from)); err != nil {
			return err
		}
		for _, to := range order {
			r, ok := row[to]
			if !ok {
				continue
			}
			line := fmt.Sprintf("  -> to %s: %s", to, FormatRoute(r))
			if !r.Reachable() {
				line = p.muted.Render(line)
			}
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteSummary is New(w).Summary(s).
func WriteSummary(w io.Writer, s *analytics.Summary) error {
	return New(w).Summary(s)
}

// WriteAllPairs is New(w).AllPairs(table, order).
func WriteAllPairs(w io.Writer, table map[string]map[string]dijkstra.Route, order []string) error {
	return New(w).AllPairs(table, order)
}

// FormatPath joins path with " -> ", or returns NoPath for an empty path.
func FormatPath(path []string) string {
	if len(path) == 0 {
		return NoPath
	}

	return strings.Join(path, Arrow)
}

// FormatRoute renders a route as "<km> km (A -> B)" with the distance
// rounded to whole units, or "unreachable".
func FormatRoute(r dijkstra.Route) string {
	if !r.Reachable() || r.Path == nil {
		return "unreachable"
	}

	return fmt.Sprintf("%.0f km (%s)", math.Round(r.Distance), FormatPath(r.Path))
}

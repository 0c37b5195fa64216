// Command citygraph analyzes a city route map: degree summary, DFS versus
// BFS paths between two cities, the all-pairs shortest-route table, and an
// optional Graphviz rendering.
//
// With no arguments it runs on the built-in reference map and compares
// routes from Kyiv to Krakow.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/citygraph/analytics"
	"github.com/katalvlaran/citygraph/bfs"
	"github.com/katalvlaran/citygraph/config"
	"github.com/katalvlaran/citygraph/converters"
	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/dataset"
	"github.com/katalvlaran/citygraph/dfs"
	"github.com/katalvlaran/citygraph/dijkstra"
	"github.com/katalvlaran/citygraph/logging"
	"github.com/katalvlaran/citygraph/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the whole analysis and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	f := pflag.NewFlagSet("citygraph", pflag.ContinueOnError)
	f.SetOutput(stderr)
	config.Flags(f)
	if err := f.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	level, err := logging.ParseLevel(cfg.Verbosity)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	log := logging.New(logging.Options{Level: level, JSON: cfg.JSON, Writer: stderr})

	if err := analyze(cfg, log, report.New(stdout)); err != nil {
		log.Error("analysis failed", "error", err)
		return 1
	}

	return 0
}

// analyze runs every stage in order and prints the results through p.
func analyze(cfg *config.Config, log *slog.Logger, p *report.Printer) error {
	g, err := loadGraph(cfg.Dataset, log)
	if err != nil {
		return err
	}

	// 1) Degree summary
	summary, err := analytics.Summarize(g)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if err = p.Summary(summary); err != nil {
		return err
	}
	comps, err := analytics.Components(g)
	if err != nil {
		return fmt.Errorf("components: %w", err)
	}
	if len(comps) > 1 {
		log.Warn("map is not connected", "components", len(comps))
	}

	// 2) Optional rendering; failures only degrade the output
	if cfg.Render != "" {
		if err = converters.WriteDOTFile(cfg.Render, g); err != nil {
			log.Warn("rendering skipped", "error", err)
			_ = p.Notice("Visualization skipped: %v", err)
		} else {
			log.Info("rendering written", "path", cfg.Render)
			_ = p.Notice("Graph visualization saved to: %s", cfg.Render)
		}
	}

	// 3) DFS versus BFS
	log.Debug("path search", "from", cfg.From, "to", cfg.To)
	dfsPath, err := dfs.Path(g, cfg.From, cfg.To)
	if err != nil {
		return fmt.Errorf("dfs: %w", err)
	}
	bfsPath, err := bfs.Path(g, cfg.From, cfg.To)
	if err != nil {
		return fmt.Errorf("bfs: %w", err)
	}
	if _, err = fmt.Fprintln(p.Writer()); err != nil {
		return err
	}
	if err = p.Paths(dfsPath, bfsPath); err != nil {
		return err
	}

	// 4) All-pairs shortest routes
	table, err := dijkstra.AllPairs(g)
	if err != nil {
		return fmt.Errorf("all pairs: %w", err)
	}

	return p.AllPairs(table, g.Vertices())
}

// loadGraph returns the reference map or the dataset stored at path.
func loadGraph(path string, log *slog.Logger) (*core.Graph, error) {
	ds := dataset.Reference()
	source := "reference"
	if path != "" {
		var err error
		if ds, err = dataset.Load(path); err != nil {
			return nil, err
		}
		source = path
	}
	g, err := ds.Graph()
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded", "source", source, "cities", g.VertexCount(), "routes", g.EdgeCount())

	return g, nil
}

// Package main implements the peel CLI: it loads a (normalized) point
// cloud, optionally projects it onto the unit simplex and collapses the
// redundant coordinate, peels it into convex-hull depth layers, and writes
// the layer file next to the input. Optional flags render the layering as
// an HTML or PNG chart and archive the run in a SQLite database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/coin-lab/paretoviz/internal/geom"
	"github.com/coin-lab/paretoviz/internal/peel"
	"github.com/coin-lab/paretoviz/internal/peeldb"
	"github.com/coin-lab/paretoviz/internal/pointset"
	"github.com/coin-lab/paretoviz/internal/render"
	"github.com/coin-lab/paretoviz/internal/version"
)

// Config holds the CLI configuration for a peeling run.
type Config struct {
	InputPath string
	Mode      string
	Threshold string
	Collapse  string
	Delimiter string
	Output    string
	HTMLPath  string
	PNGPath   string
	DBPath    string
	Quiet     bool
}

func main() {
	cfg := parseFlags()

	if cfg.Quiet {
		peel.SetLogger(nil)
	}

	cloud, err := pointset.LoadCloud(cfg.InputPath, cfg.Delimiter)
	if err != nil {
		log.Fatalf("Failed to load points: %v", err)
	}
	if cloud.Len() == 0 {
		log.Fatalf("No points found in %s", cfg.InputPath)
	}
	m := cloud.Dim()

	working := cloud
	switch cfg.Mode {
	case "default":
		collapse, err := geom.ParseCollapseTarget(cfg.Collapse)
		if err != nil {
			log.Fatalf("Invalid -collapse: %v", err)
		}
		projected := geom.Project(cloud)
		working, err = geom.Collapse(projected, collapse.Index(m))
		if err != nil {
			log.Fatalf("Failed to collapse projection: %v", err)
		}
	case "no-project":
		// Peel the raw coordinates directly.
	default:
		log.Fatalf("Unknown mode %q (want default or no-project)", cfg.Mode)
	}

	policy, err := peel.ParseThresholdPolicy(cfg.Threshold)
	if err != nil {
		log.Fatalf("Invalid -threshold: %v", err)
	}

	engine := peel.NewEngine(nil, policy)
	seq, err := engine.Peel(working)
	if err != nil {
		log.Fatalf("Peeling failed: %v", err)
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = layerPath(cfg.InputPath)
	}
	if err := pointset.SaveLayers(outPath, toIntRows(seq), cfg.Delimiter); err != nil {
		log.Fatalf("Failed to save layers: %v", err)
	}
	log.Printf("Saved %d layers to %s", len(seq), outPath)

	title := fmt.Sprintf("Depth layers: %s", filepath.Base(cfg.InputPath))
	if cfg.HTMLPath != "" {
		if err := render.WriteHTML(cfg.HTMLPath, working, seq, title); err != nil {
			log.Fatalf("Failed to render HTML chart: %v", err)
		}
		log.Printf("Wrote chart to %s", cfg.HTMLPath)
	}
	if cfg.PNGPath != "" {
		if err := render.SavePNG(cfg.PNGPath, working, seq, title); err != nil {
			log.Fatalf("Failed to render plot: %v", err)
		}
		log.Printf("Wrote plot to %s", cfg.PNGPath)
	}

	if cfg.DBPath != "" {
		db, err := peeldb.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open run archive: %v", err)
		}
		defer db.Close()
		runID, err := db.RecordRun(cfg.InputPath, cfg.Mode, policy, working.Dim(), seq)
		if err != nil {
			log.Fatalf("Failed to archive run: %v", err)
		}
		log.Printf("Archived run %s in %s", runID, cfg.DBPath)
	}
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Threshold, "threshold", "hull", "Stopping threshold policy: hull (m+1) or double (2m+1)")
	flag.StringVar(&cfg.Collapse, "collapse", "last", "Coordinate to drop after projection: first or last")
	flag.StringVar(&cfg.Delimiter, "delimiter", "", "Field delimiter in data files (default: any whitespace)")
	flag.StringVar(&cfg.Output, "output", "", "Layer file path (default: <input base>-layers.out next to the input)")
	flag.StringVar(&cfg.HTMLPath, "html", "", "Write an interactive depth chart to this HTML file")
	flag.StringVar(&cfg.PNGPath, "png", "", "Write a static depth plot to this image file")
	flag.StringVar(&cfg.DBPath, "db", "", "Archive the run in this SQLite database")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "Suppress per-layer progress output")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	cfg.InputPath = args[0]
	cfg.Mode = "default"
	if len(args) > 1 {
		cfg.Mode = strings.TrimSpace(args[1])
	}

	if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
		log.Fatalf("Input file not found: %s", cfg.InputPath)
	}
	return cfg
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: peel [flags] <input-file> [default|no-project]\n\nFlags:\n")
	flag.PrintDefaults()
}

// layerPath derives the output path from the input file's base name: the
// part before the first dot plus a -layers.out suffix, in the same
// directory.
func layerPath(input string) string {
	dir, name := filepath.Split(input)
	base := strings.SplitN(name, ".", 2)[0]
	return filepath.Join(dir, base+"-layers.out")
}

func toIntRows(seq peel.Sequence) [][]int {
	rows := make([][]int, len(seq))
	for i, layer := range seq {
		rows[i] = layer
	}
	return rows
}

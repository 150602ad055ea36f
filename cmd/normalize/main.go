// Package main implements the normalize CLI: it rescales a raw objective
// file into the ideal/nadir unit box and writes <base>-norm.out next to the
// input, the file the peel CLI expects to consume.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/coin-lab/paretoviz/internal/normalize"
	"github.com/coin-lab/paretoviz/internal/pointset"
	"github.com/coin-lab/paretoviz/internal/version"
)

// Config holds the CLI configuration for a normalization pass.
type Config struct {
	InputPath string
	Delimiter string
	Output    string
}

func main() {
	cfg := parseFlags()

	cloud, err := pointset.LoadCloud(cfg.InputPath, cfg.Delimiter)
	if err != nil {
		log.Fatalf("Failed to load points: %v", err)
	}
	log.Printf("Normalizing %d data points", cloud.Len())

	bounds := normalize.FindBounds(cloud)
	normalized, err := normalize.Normalize(cloud, bounds)
	if err != nil {
		log.Fatalf("Normalization failed: %v", err)
	}

	outPath := cfg.Output
	if outPath == "" {
		outPath = normPath(cfg.InputPath)
	}
	if err := pointset.SaveCloud(outPath, normalized, cfg.Delimiter); err != nil {
		log.Fatalf("Failed to save normalized data: %v", err)
	}
	log.Printf("Saved normalized data to %s", outPath)
}

func parseFlags() Config {
	cfg := Config{}

	flag.StringVar(&cfg.Delimiter, "delimiter", "", "Field delimiter in data files (default: any whitespace)")
	flag.StringVar(&cfg.Output, "output", "", "Output path (default: <input base>-norm.out next to the input)")
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
	cfg.InputPath = strings.TrimSpace(args[0])

	if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
		log.Fatalf("Input file not found: %s", cfg.InputPath)
	}
	return cfg
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: normalize [flags] <input-file>\n\nFlags:\n")
	flag.PrintDefaults()
}

// normPath derives the output path from the input file's base name: the
// part before the first dot plus a -norm.out suffix, in the same directory.
func normPath(input string) string {
	dir, name := filepath.Split(input)
	base := strings.SplitN(name, ".", 2)[0]
	return filepath.Join(dir, base+"-norm.out")
}

// Command stepchart-export renders a category table from a CSV or
// xlsx file into an SVG, PNG, or PDF chart without opening a window.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/stepchart/backend"
	"git.sr.ht/~whereswaldon/stepchart/export"
	"git.sr.ht/~whereswaldon/stepchart/render"
)

var (
	outputPath string
	format     string
	width      int
	height     int
	landscape  bool
	stagger    bool
	labels     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stepchart-export [input.csv|input.xlsx]",
		Short: "Render a category table to a chart file",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with the format's extension)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "svg", "Output format: svg, png, pdf")
	rootCmd.Flags().IntVar(&width, "width", 800, "Chart width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 500, "Chart height in pixels")
	rootCmd.Flags().BoolVar(&landscape, "landscape", false, "Run categories down the left edge instead of along the bottom")
	rootCmd.Flags().BoolVar(&stagger, "stagger", false, "Offset overlapping series risers from one another")
	rootCmd.Flags().BoolVar(&labels, "labels", false, "Draw each value at its step")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	table, err := load(inputPath)
	if err != nil {
		return err
	}

	opts := export.Options{
		Width:   width,
		Height:  height,
		Stagger: stagger,
		Labels:  labels,
	}
	if landscape {
		opts.Orientation = render.Landscape
	}

	var out []byte
	switch format {
	case "svg":
		out, err = export.SVG(table, opts)
	case "png":
		out, err = export.PNG(cmd.Context(), table, opts)
	case "pdf":
		var buf bytes.Buffer
		err = export.PDF(&buf, table, opts)
		out = buf.Bytes()
	default:
		return fmt.Errorf("unknown format %q (must be svg, png, or pdf)", format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	dest := outputPath
	if dest == "" {
		dest = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "." + format
	}
	if err := os.WriteFile(dest, out, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func load(path string) (*render.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return backend.LoadXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return backend.LoadCSV(f)
}

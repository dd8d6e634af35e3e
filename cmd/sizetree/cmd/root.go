// Package cmd provides the Cobra CLI command structure for sizetree.
package cmd

import (
	"fmt"
	"os"

	"github.com/kesslermo/sizetree"
	"github.com/kesslermo/sizetree/pkg/output"
	"github.com/spf13/cobra"
)

var (
	// Scan options
	timeOnly      bool
	sequential    bool
	threads       int
	rootOnly      bool
	selfSize      bool
	allocatedSize bool
	depthCap      uint
	batchSize     uint

	// Output options
	outputFormat string
	outputMode   string
	outputFile   string
	noHeader     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sizetree <path>",
	Short: "Compute the on-disk size of a file, directory, or subtree",
	Long: `sizetree walks a directory tree in parallel and reports its on-disk
size as a hierarchical breakdown, honoring filesystem-boundary rules
(mount points, firmlinks, hard-link aliases).

Examples:
  sizetree /Users/me/Projects
  sizetree --root-only --output-format json /var
  sizetree --sequential --time-only /`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.Flags().BoolVar(&timeOnly, "time-only", false,
		"Emit only the elapsed milliseconds")
	rootCmd.Flags().BoolVar(&sequential, "sequential", false,
		"Set worker pool size to one")
	rootCmd.Flags().IntVar(&threads, "threads", 0,
		"Override worker pool size (0 means auto)")
	rootCmd.Flags().BoolVar(&rootOnly, "root-only", false,
		"Prune the root node's children after aggregation")
	rootCmd.Flags().BoolVar(&selfSize, "include-self-size", false,
		"Include each directory's own reported size in its total")
	rootCmd.Flags().BoolVar(&allocatedSize, "allocated-size", false,
		"Use allocated size instead of logical size for files")
	rootCmd.Flags().UintVar(&depthCap, "depth-cap", 8,
		"Deepest level at which work may be handed to another lane")
	rootCmd.Flags().UintVar(&batchSize, "batch-size", 64,
		"Directory-iterator drain size")

	rootCmd.Flags().StringVarP(&outputFormat, "output-format", "f", "table",
		"Output format: table, json, csv")
	rootCmd.Flags().StringVarP(&outputMode, "output-mode", "m", "summary",
		"Output mode: summary, tree")
	rootCmd.Flags().StringVarP(&outputFile, "output-file", "o", "",
		"Write output to file (default: stdout)")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false,
		"Hide table headers")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts := sizetree.DefaultOptions()
	opts.UseParallel = !sequential
	opts.MaxThreads = uint(threads)
	opts.RootOnly = rootOnly
	opts.IncludeDirectorySelfSize = selfSize
	opts.UseAllocatedSize = allocatedSize
	if depthCap > 0 {
		opts.DepthCap = depthCap
	}
	if batchSize > 0 {
		opts.BatchSize = batchSize
	}

	result := sizetree.Scan(path, opts)

	if timeOnly {
		fmt.Printf("%d\n", result.ElapsedMillis)
		return nil
	}

	formatter := output.NewFormatter(outputFormat, outputMode, noHeader)
	out := formatter.Format(result)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Output written to: %s\n", outputFile)
		return nil
	}

	fmt.Print(out)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

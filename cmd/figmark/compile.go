package main

import (
	"fmt"
	"io"
	"os"

	"github.com/figmark/figmark"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:     "compile",
	Aliases: []string{"build"},
	Short:   "Compile design documents into markup",
	Long: `Translate design document trees into inline-styled HTML and/or
component-tree descriptors. Each document JSON in the source directory
produces one output file per target.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.String("source", "design", "Source directory containing document JSON files")
	f.String("output-dir", "dist", "Output directory for compiled markup")
	f.StringSlice("include", nil, "Glob patterns for documents to include")
	f.StringSlice("target", nil, "Output targets: html|descriptor")
	f.Bool("lint", false, "Validate emitted declarations after compiling")
}

func runCompile(cmd *cobra.Command, _ []string) error {
	config := buildCompileConfig()

	result, err := figmark.Compile(config)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		printCompileSummary(os.Stdout, config.OutputDir, result)
	}

	// Run lint after compile if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint()
	}

	return nil
}

func printCompileSummary(w io.Writer, outputDir string, result *figmark.Result) {
	fmt.Fprintf(w, "Compiled markup in %s\n", outputDir)
	fmt.Fprintf(w, "  Documents compiled: %d\n", result.DocumentsCompiled)
	fmt.Fprintf(w, "  Nodes emitted: %d\n", result.NodesEmitted)
	fmt.Fprintf(w, "  Files written: %d\n", len(result.FilesWritten))

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  Warning: %s\n", warning)
	}
}

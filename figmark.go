// Package figmark compiles design-tool document trees into markup.
//
// figmark ingests document JSON exported from (or fetched live from)
// the Figma file API and deterministically translates each node tree
// into inline-styled HTML and/or a component-tree descriptor suitable
// for framework hydration.
//
// # Compilation
//
// Compile design documents found under a source directory:
//
//	config := figmark.Config{
//		SourceDir: "designs",
//		OutputDir: "dist",
//		Includes:  []string{"**/*.json"},
//		Targets:   []string{"html", "descriptor"},
//	}
//	result, err := figmark.Compile(config)
//
// Each document may carry sidecar tables next to it — prefetched asset
// URLs (<name>.assets.json), design tokens (<name>.tokens.json), and
// component bindings (<name>.bindings.json). Missing sidecars degrade
// to empty tables; translation never fails over a missing asset.
//
// # Linting
//
// Lint re-translates the documents and validates every emitted inline
// style declaration:
//
//	lintResult, err := figmark.Lint(figmark.LintConfig{
//		SourceDir: "designs",
//		Includes:  []string{"**/*.json"},
//	})
//
// # CLI Tool
//
// figmark also provides a CLI tool. Install with:
//
//	go install github.com/figmark/figmark/cmd/figmark@latest
package figmark

// Config holds compiler configuration.
type Config struct {
	SourceDir string   // Directory containing document JSON files
	OutputDir string   // Directory for compiled output
	Includes  []string // Glob patterns relative to SourceDir
	Targets   []string // Output targets: "html", "descriptor"
	Verbose   bool     // Enable progress logging
}

// Result contains compilation stats.
type Result struct {
	DocumentsCompiled int
	NodesEmitted      int
	FilesWritten      []string
	Warnings          []string
}

// LintConfig holds linter configuration.
type LintConfig struct {
	SourceDir string
	Includes  []string
	Verbose   bool
	Strict    bool // Exit non-zero on any issue (CI mode)

	// Output configuration
	MaxIssues       int // 0 = unlimited
	PrintLinterName bool
	UseColors       bool
}

// LintResult contains linting output.
type LintResult struct {
	DocumentsChecked int
	DeclarationsSeen int
	Issues           []Issue
	ErrorCount       int
	WarningCount     int
	TruncatedCount   int
}

package figmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Reporter formats lint results for terminals.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLinterName bool
}

// NewReporter creates a reporter with the given configuration.
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(config LintConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues sorted by document and node.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		return issues[i].Pos.NodeID < issues[j].Pos.NodeID
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style.
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.NodeID != "" {
		location = fmt.Sprintf("%s#%s:", issue.Pos.Filename, issue.Pos.NodeID)
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))
}

// PrintSummary outputs the issue count summary.
func (r *Reporter) PrintSummary(result *LintResult) {
	fmt.Fprintln(r.w, "")

	total := len(result.Issues)
	if total == 0 {
		fmt.Fprintf(r.w, "%s %s checked, %s declarations, no issues\n",
			RenderStyle(StyleGreen, "✓", r.useColors),
			pluralizeCount(result.DocumentsChecked, "document", "documents"),
			fmt.Sprint(result.DeclarationsSeen))
		return
	}

	if result.TruncatedCount > 0 {
		fmt.Fprintf(r.w, "%s (%s truncated):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}

	linterCounts := make(map[string]int)
	for _, issue := range result.Issues {
		linterCounts[issue.FromLinter]++
	}
	for linter, count := range linterCounts {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, count)
	}

	if result.ErrorCount > 0 {
		fmt.Fprintf(r.w, "%s\n",
			RenderStyle(StyleRed, pluralizeCount(result.ErrorCount, "error", "errors"), r.useColors))
	}
	if result.WarningCount > 0 {
		fmt.Fprintf(r.w, "%s\n",
			RenderStyle(StyleYellow, pluralizeCount(result.WarningCount, "warning", "warnings"), r.useColors))
	}
}

// WriteIssuesJSON exports the lint result for tooling integration.
func WriteIssuesJSON(w io.Writer, result *LintResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// pluralizeCount returns a formatted count with singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

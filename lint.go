package figmark

import (
	"fmt"

	"github.com/figmark/figmark/internal/engine"
)

// Lint re-translates each document in memory and validates every
// emitted inline style declaration with a CSS lexer. Nothing is written
// to disk; the compiled trees are checked and discarded.
func Lint(config LintConfig) (*LintResult, error) {
	result := &LintResult{}

	files, stats, err := scanDocuments(config.SourceDir, includesOrDefault(config.Includes))
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Checking %d documents (%d files skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	for _, file := range files {
		root, err := loadDocument(file)
		if err != nil {
			result.Issues = append(result.Issues, Issue{
				FromLinter: linterName,
				Text:       fmt.Sprintf("document failed to load: %v", err),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: file},
			})
			result.ErrorCount++
			continue
		}

		ctx, warnings := loadContext(file)
		for _, warning := range warnings {
			result.Issues = append(result.Issues, Issue{
				FromLinter: linterName,
				Text:       warning,
				Severity:   SeverityWarning,
				Pos:        IssuePos{Filename: file},
			})
			result.WarningCount++
		}

		tree, err := engine.Translate(root, ctx)
		if err != nil {
			result.Issues = append(result.Issues, Issue{
				FromLinter: linterName,
				Text:       fmt.Sprintf("translation failed: %v", err),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: file},
			})
			result.ErrorCount++
			continue
		}
		result.DocumentsChecked++
		result.DeclarationsSeen += countDeclarations(tree)

		for _, issue := range engine.CheckDeclarations(tree) {
			result.Issues = append(result.Issues, Issue{
				FromLinter: linterName,
				Text: fmt.Sprintf("malformed declaration %q: %s",
					issue.Property+": "+issue.Value, issue.Message),
				Severity: SeverityError,
				Pos:      IssuePos{Filename: file, NodeID: issue.NodeID},
			})
			result.ErrorCount++
		}
	}

	if config.MaxIssues > 0 && len(result.Issues) > config.MaxIssues {
		result.TruncatedCount = len(result.Issues) - config.MaxIssues
		result.Issues = result.Issues[:config.MaxIssues]
	}

	return result, nil
}

func countDeclarations(m *engine.MarkupNode) int {
	count := len(m.Styles)
	if m.Binding != nil {
		count += len(m.Binding.StyleOverrides)
	}
	for _, child := range m.Children {
		count += countDeclarations(child)
	}
	return count
}

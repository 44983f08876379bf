package figmark

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/figmark/figmark/internal/engine"
	"github.com/figmark/figmark/internal/figma"
)

// Compile is the main entry point: discover documents, translate each
// node tree, and write the requested targets. A document that fails to
// decode becomes a warning, not an abort; compilation of the remaining
// documents continues.
func Compile(config Config) (*Result, error) {
	result := &Result{}

	files, stats, err := scanDocuments(config.SourceDir, includesOrDefault(config.Includes))
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Found %d documents (%d files skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	targets := targetsOrDefault(config.Targets)

	for _, file := range files {
		if config.Verbose {
			fmt.Printf("Compiling %s\n", file)
		}

		root, err := loadDocument(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to load %s: %v", file, err))
			continue
		}

		ctx, warnings := loadContext(file)
		result.Warnings = append(result.Warnings, warnings...)

		tree, err := engine.Translate(root, ctx)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to translate %s: %v", file, err))
			continue
		}

		result.DocumentsCompiled++
		result.NodesEmitted += countNodes(tree)

		written, err := writeTargets(tree, file, config.OutputDir, targets)
		if err != nil {
			return nil, err
		}
		result.FilesWritten = append(result.FilesWritten, written...)
	}

	return result, nil
}

// CompileSnapshot translates a prefetched API snapshot in memory and
// returns the serialized targets keyed by target name. Used by callers
// that fetch live from the API instead of reading exported files.
func CompileSnapshot(snap *figma.Snapshot, targets []string) (map[string]string, error) {
	tree, err := engine.Translate(&snap.Document, snapshotContext(snap))
	if err != nil {
		return nil, err
	}

	out := map[string]string{}
	for _, target := range targetsOrDefault(targets) {
		switch target {
		case "html":
			out[target] = engine.SerializeHTML(tree)
		case "descriptor":
			out[target] = engine.SerializeDescriptor(tree)
		default:
			return nil, fmt.Errorf("unknown target %q", target)
		}
	}
	return out, nil
}

// writeTargets serializes one compiled tree into each requested target
// file next to the document's relative path under outputDir.
func writeTargets(tree *engine.MarkupNode, documentPath, outputDir string, targets []string) ([]string, error) {
	base := strings.TrimSuffix(filepath.Base(documentPath), ".json")
	var written []string

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	for _, target := range targets {
		var outPath, content string
		switch target {
		case "html":
			outPath = filepath.Join(outputDir, base+".html")
			content = engine.SerializeHTML(tree)
		case "descriptor":
			outPath = filepath.Join(outputDir, base+".jsx")
			content = engine.SerializeDescriptor(tree)
		default:
			return nil, fmt.Errorf("unknown target %q", target)
		}

		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", outPath, err)
		}
		written = append(written, outPath)
	}

	return written, nil
}

// countNodes counts emitted markup nodes, bindings included.
func countNodes(m *engine.MarkupNode) int {
	count := 1
	for _, child := range m.Children {
		count += countNodes(child)
	}
	return count
}

func includesOrDefault(includes []string) []string {
	if len(includes) > 0 {
		return includes
	}
	return []string{"**/*.json"}
}

func targetsOrDefault(targets []string) []string {
	if len(targets) > 0 {
		return targets
	}
	return []string{"html"}
}

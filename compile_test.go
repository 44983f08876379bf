package figmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figmark/figmark/internal/figma"
)

const landingDoc = `{
	"name": "Landing",
	"document": {
		"id": "0:0",
		"type": "DOCUMENT",
		"layoutMode": "VERTICAL",
		"children": [
			{
				"id": "1:1",
				"type": "TEXT",
				"characters": "Welcome",
				"style": {"fontSize": 48, "fontWeight": 700}
			},
			{
				"id": "1:2",
				"type": "RECTANGLE",
				"absoluteBoundingBox": {"x": 0, "y": 0, "width": 320, "height": 180},
				"fills": [{"type": "SOLID", "color": {"r": 0.2, "g": 0.4, "b": 0.6, "a": 1}}]
			}
		]
	}
}`

func TestCompile(t *testing.T) {
	sourceDir := t.TempDir()
	outputDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "landing.json"), landingDoc)

	result, err := Compile(Config{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		Targets:   []string{"html", "descriptor"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.DocumentsCompiled)
	assert.Equal(t, 3, result.NodesEmitted)
	assert.Len(t, result.FilesWritten, 2)
	assert.Empty(t, result.Warnings)

	html, err := os.ReadFile(filepath.Join(outputDir, "landing.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `<h1 style="font-size: 48px; font-weight: 700" data-node-id="1:1">Welcome</h1>`)
	assert.Contains(t, string(html), "background-color: #336699")

	jsx, err := os.ReadFile(filepath.Join(outputDir, "landing.jsx"))
	require.NoError(t, err)
	assert.Contains(t, string(jsx), `>Welcome</h1>`)
}

func TestCompileBadDocumentWarns(t *testing.T) {
	sourceDir := t.TempDir()
	outputDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "good.json"), landingDoc)
	writeFile(t, filepath.Join(sourceDir, "bad.json"), `{broken`)

	result, err := Compile(Config{SourceDir: sourceDir, OutputDir: outputDir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.DocumentsCompiled)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "bad.json")
}

func TestCompileUnknownTarget(t *testing.T) {
	sourceDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "landing.json"), landingDoc)

	_, err := Compile(Config{
		SourceDir: sourceDir,
		OutputDir: t.TempDir(),
		Targets:   []string{"pdf"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target "pdf"`)
}

func TestCompileSnapshot(t *testing.T) {
	snap := &figma.Snapshot{
		Name: "Landing",
		Document: figma.Node{
			ID:   "0:0",
			Type: "DOCUMENT",
			Children: []figma.Node{
				{ID: "1:1", Type: "TEXT", Characters: "Hi", Style: &figma.TypeStyle{FontSize: 16}},
			},
		},
		Tokens: map[string]figma.TokenEntry{},
	}

	out, err := CompileSnapshot(snap, []string{"html"})
	require.NoError(t, err)
	assert.Contains(t, out["html"], `<p style="font-size: 16px" data-node-id="1:1">Hi</p>`)
}

func TestLint(t *testing.T) {
	sourceDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "landing.json"), landingDoc)
	writeFile(t, filepath.Join(sourceDir, "bad.json"), `{broken`)

	result, err := Lint(LintConfig{SourceDir: sourceDir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.DocumentsChecked)
	assert.Greater(t, result.DeclarationsSeen, 0)

	// The unparseable document surfaces as an error issue, the compiled
	// one emits only well-formed declarations.
	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "failed to load")
	assert.Equal(t, 1, result.ErrorCount)
}

func TestLintMalformedSidecarWarns(t *testing.T) {
	sourceDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "landing.json"), landingDoc)
	writeFile(t, filepath.Join(sourceDir, "landing.assets.json"), `{broken`)

	result, err := Lint(LintConfig{SourceDir: sourceDir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.DocumentsChecked)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "landing.assets.json")
}

func TestLintMaxIssues(t *testing.T) {
	sourceDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "a.json"), `{broken`)
	writeFile(t, filepath.Join(sourceDir, "b.json"), `{broken`)
	writeFile(t, filepath.Join(sourceDir, "c.json"), `{broken`)

	result, err := Lint(LintConfig{SourceDir: sourceDir, MaxIssues: 2})
	require.NoError(t, err)

	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 1, result.TruncatedCount)
}

func TestInspectFile(t *testing.T) {
	sourceDir := t.TempDir()
	path := filepath.Join(sourceDir, "landing.json")
	writeFile(t, path, landingDoc)

	dump, err := InspectFile(path)
	require.NoError(t, err)
	assert.Contains(t, dump, "<h1>")
	assert.Contains(t, dump, "#1:2")
}

package figmark

import (
	"fmt"

	"github.com/figmark/figmark/internal/engine"
)

// InspectFile compiles a single document and returns its markup tree
// rendered as an ASCII tree for debugging.
func InspectFile(documentPath string) (string, error) {
	root, err := loadDocument(documentPath)
	if err != nil {
		return "", fmt.Errorf("load document: %w", err)
	}

	ctx, _ := loadContext(documentPath)
	tree, err := engine.Translate(root, ctx)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}

	return engine.DumpTree(tree), nil
}

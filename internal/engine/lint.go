package engine

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// StyleIssue is one malformed declaration found in a compiled tree.
type StyleIssue struct {
	NodeID   string
	Property string
	Value    string
	Message  string
}

// CheckDeclarations lexes every emitted style declaration and reports
// the ones that would not survive a CSS parser. The compiler should
// never produce these; the check exists to catch regressions in the
// resolvers, not to repair output.
func CheckDeclarations(root *MarkupNode) []StyleIssue {
	var issues []StyleIssue
	checkNode(root, &issues)
	return issues
}

func checkNode(m *MarkupNode, issues *[]StyleIssue) {
	nodeID := m.Attrs["data-node-id"]
	if m.Binding != nil {
		nodeID = m.Binding.SourceNodeID
		for _, decl := range m.Binding.StyleOverrides {
			checkDecl(nodeID, decl, issues)
		}
		return
	}
	for _, decl := range m.Styles {
		checkDecl(nodeID, decl, issues)
	}
	for _, child := range m.Children {
		checkNode(child, issues)
	}
}

func checkDecl(nodeID string, decl StyleDecl, issues *[]StyleIssue) {
	report := func(msg string) {
		*issues = append(*issues, StyleIssue{
			NodeID:   nodeID,
			Property: decl.Property,
			Value:    decl.Value,
			Message:  msg,
		})
	}

	if strings.TrimSpace(decl.Property) == "" {
		report("empty property name")
		return
	}
	if strings.TrimSpace(decl.Value) == "" {
		report("empty value")
		return
	}

	lexer := css.NewLexer(parse.NewInputString(decl.Property + ":" + decl.Value + ";"))

	// First token must be the property identifier.
	tt, _ := lexer.Next()
	if tt != css.IdentToken {
		report("property is not an identifier")
		return
	}
	if tt, _ = lexer.Next(); tt != css.ColonToken {
		report("property is not an identifier")
		return
	}

	valueTokens := 0
	depth := 0
	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// ErrorToken at EOF is normal; mid-stream it means the
			// value did not lex.
			if valueTokens == 0 {
				report("value did not lex")
			} else if depth != 0 {
				report("unbalanced parentheses in value")
			}
			return
		case css.SemicolonToken:
			if depth != 0 {
				report("unbalanced parentheses in value")
			}
			return
		case css.LeftBraceToken, css.RightBraceToken:
			report("brace inside declaration value")
			return
		case css.LeftParenthesisToken:
			depth++
			valueTokens++
		case css.FunctionToken:
			depth++
			valueTokens++
		case css.RightParenthesisToken:
			depth--
			valueTokens++
		case css.WhitespaceToken:
			// Not a value token.
		default:
			valueTokens++
		}
	}
}

package figmark

// Issue represents a single lint violation in golangci-lint format.
type Issue struct {
	FromLinter string   `json:"FromLinter"` // "stylecheck"
	Text       string   `json:"Text"`       // `malformed declaration "width: " on node 1:23`
	Severity   string   `json:"Severity"`   // "", "warning", "error"
	Pos        IssuePos `json:"Pos"`
}

// IssuePos specifies where an issue was found: the source document and
// the offending node id.
type IssuePos struct {
	Filename string `json:"Filename"`
	NodeID   string `json:"NodeID"`
}

// Issue severity constants.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// linterName is the suffix shown on issues, golangci-lint style.
const linterName = "stylecheck"

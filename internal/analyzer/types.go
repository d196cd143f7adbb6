// Package analyzer extracts a best-effort structural summary from source
// text using line-oriented regex heuristics. It deliberately stops short of
// real parsing: a line either matches one of the shape patterns or it
// contributes nothing, and malformed input never produces an error.
package analyzer

// Function is one recorded function definition.
type Function struct {
	// Name is the captured identifier.
	Name string `json:"name"`

	// Params is the raw parameter list text, unvalidated.
	Params string `json:"params"`

	// Line is the 1-based line number of the definition.
	Line int `json:"line"`
}

// Class is one recorded class definition.
type Class struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Import is one recorded import statement, kept verbatim.
type Import struct {
	Statement string `json:"statement"`
	Line      int    `json:"line"`
}

// Global is one recorded top-level variable assignment.
type Global struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// FileSummary is the structural extraction result for one file. All fields
// are best-effort text captures in source order, not verified identifiers.
type FileSummary struct {
	Path      string     `json:"path"`
	Functions []Function `json:"functions"`
	Classes   []Class    `json:"classes"`
	Imports   []Import   `json:"imports"`
	Globals   []Global   `json:"globals"`
}

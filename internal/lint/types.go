// Package lint flags common code anti-patterns by applying a data-driven
// table of regex rules to every scanned file. It is explicitly a heuristic
// linter: false positives and false negatives are expected, the contract is
// only that every rule is applied to every file deterministically.
package lint

import "regexp"

// Rule is one (pattern, category, suggestion) triple. Rules are data, not
// code; callers may append their own at configuration time.
type Rule struct {
	// Pattern is the compiled line pattern that triggers the rule.
	Pattern *regexp.Regexp

	// Category is the short label printed in brackets.
	Category string

	// Suggestion is the human-readable remediation hint.
	Suggestion string
}

// Finding is one flagged line.
type Finding struct {
	Path       string `json:"path"`
	Line       int    `json:"line"`
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
}

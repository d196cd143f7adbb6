package analyzer

import (
	"regexp"
	"strings"
)

// Shape patterns for the Python-family source the default include set
// targets. Nesting is not modeled: an indented def is recorded flatly.
var (
	funcRe   = regexp.MustCompile(`^\s*(?:async\s+)?def\s+([A-Za-z_]\w*)\s*\(([^)]*)\)`)
	classRe  = regexp.MustCompile(`^\s*class\s+([A-Za-z_]\w*)`)
	importRe = regexp.MustCompile(`^\s*(?:import\s+\S+|from\s+\S+\s+import\s+.+)`)

	// Zero indentation approximates "top level"; the second character class
	// keeps augmented patterns like == from matching.
	globalRe = regexp.MustCompile(`^([A-Za-z_]\w*)\s*=\s*[^=\s]`)
)

// Extract scans text line by line and returns the structural summary for it.
// It never fails: lines that match no shape pattern are simply ignored, so
// partial or malformed source yields a partial summary.
func Extract(path, text string) *FileSummary {
	summary := &FileSummary{Path: path}

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1

		if m := funcRe.FindStringSubmatch(line); m != nil {
			summary.Functions = append(summary.Functions, Function{
				Name:   m[1],
				Params: strings.TrimSpace(m[2]),
				Line:   lineNo,
			})
			continue
		}

		if m := classRe.FindStringSubmatch(line); m != nil {
			summary.Classes = append(summary.Classes, Class{
				Name: m[1],
				Line: lineNo,
			})
			continue
		}

		if importRe.MatchString(line) {
			summary.Imports = append(summary.Imports, Import{
				Statement: strings.TrimSpace(line),
				Line:      lineNo,
			})
			continue
		}

		if m := globalRe.FindStringSubmatch(line); m != nil {
			summary.Globals = append(summary.Globals, Global{
				Name: m[1],
				Line: lineNo,
			})
		}
	}

	return summary
}

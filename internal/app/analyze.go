package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meredith/codescout/internal/analyzer"
	"github.com/meredith/codescout/internal/output"
	"github.com/meredith/codescout/internal/scanner"
)

// runAnalyze extracts and prints the structural summary of one scanned file.
// The path must be relative to the scan root and part of the scan; a read
// failure here is fatal because there is nothing to fall back to.
func runAnalyze(tree *scanner.ProjectTree, rel string) error {
	rel = filepath.ToSlash(rel)
	if !tree.Contains(rel) {
		return fmt.Errorf("analyze %s: %w", rel, scanner.ErrNotFound)
	}

	text, err := tree.ReadFile(rel)
	if err != nil {
		return err
	}
	summary := analyzer.Extract(rel, text)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Println(output.Section("Analysis: " + rel))
	fmt.Println()

	fmt.Println(output.StyleBold.Render("Imports"))
	if len(summary.Imports) == 0 {
		fmt.Println(output.StyleMuted.Render("  (none)"))
	}
	for _, imp := range summary.Imports {
		fmt.Printf("  %s %s\n", lineRef(imp.Line), imp.Statement)
	}
	fmt.Println()

	fmt.Println(output.StyleBold.Render("Classes"))
	if len(summary.Classes) == 0 {
		fmt.Println(output.StyleMuted.Render("  (none)"))
	}
	for _, cls := range summary.Classes {
		fmt.Printf("  %s %s\n", lineRef(cls.Line), cls.Name)
	}
	fmt.Println()

	fmt.Println(output.StyleBold.Render("Functions"))
	if len(summary.Functions) == 0 {
		fmt.Println(output.StyleMuted.Render("  (none)"))
	} else {
		tbl := output.NewTable("Name", "Params", "Line")
		for _, fn := range summary.Functions {
			tbl.AddRow(fn.Name, fn.Params, fmt.Sprintf("%d", fn.Line))
		}
		fmt.Print(indent(tbl.Render()))
	}
	fmt.Println()

	fmt.Println(output.StyleBold.Render("Globals"))
	if len(summary.Globals) == 0 {
		fmt.Println(output.StyleMuted.Render("  (none)"))
	}
	for _, g := range summary.Globals {
		fmt.Printf("  %s %s\n", lineRef(g.Line), g.Name)
	}
	return nil
}

// lineRef renders a muted "line N:" marker.
func lineRef(n int) string {
	return output.StyleMuted.Render(fmt.Sprintf("line %d:", n))
}

// indent prefixes every non-empty line of s with two spaces.
func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

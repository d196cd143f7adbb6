package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meredith/codescout/internal/output"
	"github.com/meredith/codescout/internal/scanner"
)

// renderStructure prints the scanned tree as an indented listing, or the raw
// ProjectTree as JSON.
func renderStructure(tree *scanner.ProjectTree) {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(tree)
		return
	}

	fmt.Println(output.Section("Project structure for: " + tree.Root))
	fmt.Print(tree.Render())
	if len(tree.Files) == 0 {
		fmt.Println(output.StyleMuted.Render("  (no matching files)"))
	}
}

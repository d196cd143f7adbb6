package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/meredith/codescout/internal/config"
	"github.com/meredith/codescout/internal/lint"
	"github.com/meredith/codescout/internal/output"
	"github.com/meredith/codescout/internal/scanner"
)

// runBugs assembles the rule table (built-ins, config rules, --rules file)
// and prints one line per finding as path:line: [category] suggestion.
func runBugs(tree *scanner.ProjectTree, cfg *config.Config, rulesFile string) error {
	specs := cfg.Rules
	if rulesFile != "" {
		fileSpecs, err := lint.LoadRulesFile(rulesFile)
		if err != nil {
			return err
		}
		specs = append(specs, fileSpecs...)
	}

	extra, err := lint.CompileRules(specs)
	if err != nil {
		return err
	}

	findings := lint.NewEngine(extra...).Run(tree, cfg.Workers)

	if flagJSON {
		if findings == nil {
			findings = []lint.Finding{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(findings)
	}

	fmt.Println(output.Section(fmt.Sprintf("Found %d potential issues", len(findings))))
	for _, f := range findings {
		fmt.Printf("%s:%s: %s %s\n",
			output.StylePath.Render(f.Path),
			output.StyleMuted.Render(fmt.Sprintf("%d", f.Line)),
			output.StyleWarning.Render("["+f.Category+"]"),
			f.Suggestion)
	}
	return nil
}

// Package app contains the Cobra command for codescout.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meredith/codescout/internal/config"
	"github.com/meredith/codescout/internal/output"
	"github.com/meredith/codescout/internal/scanner"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagJSON    bool
	flagNoColor bool
	flagVerbose bool

	flagScan      bool
	flagStructure bool
	flagAnalyze   string
	flagSearch    string
	flagBugs      bool

	flagInclude []string
	flagExclude []string
	flagRules   string
)

var rootCmd = &cobra.Command{
	Use:   "codescout <project-root>",
	Short: "Structural scanning and heuristic linting for source trees",
	Long: `codescout scans a source tree and extracts lightweight structural facts
from its files using regex heuristics, without building a real parse tree.

Operations combine in a single invocation and always run in this order:
scan (implicit when needed), --structure, --analyze, --search, --bugs.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/codescout/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")

	rootCmd.Flags().BoolVar(&flagScan, "scan", false, "Scan the project tree")
	rootCmd.Flags().BoolVar(&flagStructure, "structure", false, "Print the project structure")
	rootCmd.Flags().StringVar(&flagAnalyze, "analyze", "", "Analyze one file (path relative to the root)")
	rootCmd.Flags().StringVar(&flagSearch, "search", "", "Search all scanned files for a regex pattern")
	rootCmd.Flags().BoolVar(&flagBugs, "bugs", false, "Flag suspected anti-patterns in all scanned files")

	rootCmd.Flags().StringSliceVar(&flagInclude, "include", nil, "Additional file glob patterns to scan (can be repeated)")
	rootCmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "Additional directory names to skip (can be repeated)")
	rootCmd.Flags().StringVar(&flagRules, "rules", "", "YAML file with extra bug rules ({pattern, category, suggestion} list)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	output.Init(flagNoColor)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.Output.Color {
		output.SetNoColor(true)
	}

	include := append(cfg.Include, flagInclude...)
	exclude := append(cfg.ExcludeDirs, flagExclude...)

	wantsScan := flagScan || flagStructure || flagAnalyze != "" || flagSearch != "" || flagBugs
	if !wantsScan {
		fmt.Println("codescout", appVersion)
		fmt.Println()
		fmt.Println("No operation requested. Combine any of:")
		fmt.Println("  --scan              walk the tree")
		fmt.Println("  --structure         print the directory/file tree")
		fmt.Println("  --analyze <file>    structural summary of one file")
		fmt.Println("  --search <regex>    search all scanned files")
		fmt.Println("  --bugs              flag suspected anti-patterns")
		return nil
	}

	tree, err := scanner.Scan(args[0], include, exclude)
	if err != nil {
		return err
	}
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "scanned %d files under %s\n", len(tree.Files), tree.Root)
	}

	if flagStructure {
		renderStructure(tree)
	}
	if flagAnalyze != "" {
		if err := runAnalyze(tree, flagAnalyze); err != nil {
			return err
		}
	}
	if flagSearch != "" {
		if err := runSearch(tree, flagSearch, cfg.Workers); err != nil {
			return err
		}
	}
	if flagBugs {
		if err := runBugs(tree, cfg, flagRules); err != nil {
			return err
		}
	}
	return nil
}

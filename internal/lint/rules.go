package lint

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/meredith/codescout/internal/config"
	"github.com/meredith/codescout/internal/search"
)

// Builtins returns the built-in anti-pattern table for the Python-family
// sources the default include set targets.
func Builtins() []Rule {
	return []Rule{
		{
			Pattern:    regexp.MustCompile(`\bexcept\s*:`),
			Category:   "bare-except",
			Suggestion: "Catch specific exceptions instead of a bare except",
		},
		{
			Pattern:    regexp.MustCompile(`\bexcept\s+Exception\s*:`),
			Category:   "broad-except",
			Suggestion: "Catch a more specific exception type",
		},
		{
			Pattern:    regexp.MustCompile(`\.get\([^,)]+\)`),
			Category:   "dict-get-no-default",
			Suggestion: "Provide a default value to dict.get to avoid an unexpected None",
		},
		{
			Pattern:    regexp.MustCompile(`\bprint\(`),
			Category:   "debug-print",
			Suggestion: "Remove debug print statements",
		},
		{
			Pattern:    regexp.MustCompile(`==\s*True\b`),
			Category:   "compare-true",
			Suggestion: `Use "if condition:" instead of comparing to True`,
		},
		{
			Pattern:    regexp.MustCompile(`==\s*False\b`),
			Category:   "compare-false",
			Suggestion: `Use "if not condition:" instead of comparing to False`,
		},
		{
			Pattern:    regexp.MustCompile(`[=!]=\s*None\b`),
			Category:   "compare-none",
			Suggestion: `Use "is None" / "is not None" when comparing to a singleton`,
		},
		{
			Pattern:    regexp.MustCompile(`def\s+\w+\([^)]*=\s*(\[\]|\{\})`),
			Category:   "mutable-default",
			Suggestion: "Avoid mutable default arguments; default to None and assign in the body",
		},
	}
}

// CompileRules turns configured rule triples into usable rules. A pattern
// that does not compile is fatal, same as a bad --search pattern.
func CompileRules(specs []config.LintRule) ([]Rule, error) {
	var rules []Rule
	for _, s := range specs {
		re, err := search.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("lint rule %q: %w", s.Category, err)
		}
		rules = append(rules, Rule{
			Pattern:    re,
			Category:   s.Category,
			Suggestion: s.Suggestion,
		})
	}
	return rules, nil
}

// LoadRulesFile reads extra rule triples from a YAML file. The file is a
// plain list of {pattern, category, suggestion} entries.
func LoadRulesFile(path string) ([]config.LintRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var specs []config.LintRule
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return specs, nil
}

// Package config provides configuration loading and defaults for codescout.
package config

// DefaultInclude lists the glob patterns matched against file names during a
// scan when the user configures nothing else.
var DefaultInclude = []string{"*.py", "*.js", "*.html", "*.css", "*.json"}

// DefaultExcludeDirs lists directory names skipped during the walk.
var DefaultExcludeDirs = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"vendor",
	"__pycache__",
	".venv",
	"dist",
}

// DefaultConfigDir is the default location for codescout configuration.
const DefaultConfigDir = "~/.config/codescout"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultWorkers caps the per-file fan-out for search and lint. Zero means
// one goroutine per CPU.
const DefaultWorkers = 0

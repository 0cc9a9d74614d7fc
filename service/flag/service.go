package flag

import (
	"strings"

	"github.com/bumpver/bumpver/model"
	"github.com/spf13/pflag"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	path := pflag.StringP("path", "p", "Cargo.toml", "Manifest file to update")
	field := pflag.String("field", "version", "Field name holding the version value")
	component := pflag.StringP("component", "c", "patch", "Version component to increment (major, minor, or patch)")
	set := pflag.String("set", "", "Replace the matched version with this value instead of incrementing")
	files := pflag.String("files", "", "Comma-separated additional manifest files to update")
	dryRun := pflag.Bool("dry-run", false, "Report changes without writing files")
	quiet := pflag.BoolP("quiet", "q", false, "Suppress informational log lines")
	version := pflag.BoolP("version", "v", false, "Show version information")
	output := pflag.StringP("output", "o", "text", "Output format (text, table, or json)")
	store := pflag.Bool("store", false, "Record applied bumps in the local SQLite database")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.bumpver/history.db)")
	configPath := pflag.String("config-path", "", "Path to bumpver config file")

	pflag.Parse()

	var parsedFiles []string
	if *files != "" {
		for _, f := range strings.Split(*files, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				parsedFiles = append(parsedFiles, f)
			}
		}
	}

	flags := model.Flags{
		Path:       *path,
		Field:      *field,
		Component:  *component,
		Set:        *set,
		Files:      parsedFiles,
		DryRun:     *dryRun,
		Quiet:      *quiet,
		Version:    *version,
		Output:     *output,
		Store:      *store,
		DBPath:     *dbPath,
		ConfigPath: *configPath,
	}

	return flags, nil
}

// Changed reports whether the named flag was set on the command line.
// File config values only apply to flags left at their defaults.
func (s *service) Changed(name string) bool {
	return pflag.CommandLine.Changed(name)
}

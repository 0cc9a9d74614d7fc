package model

// Flags represents the parsed command line options.
type Flags struct {
	Path       string
	Field      string
	Component  string
	Set        string
	Files      []string
	DryRun     bool
	Quiet      bool
	Version    bool
	Output     string
	Store      bool
	DBPath     string
	ConfigPath string
}

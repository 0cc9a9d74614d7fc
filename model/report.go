// Package model defines the data structures shared across the application.
package model

// Event is one log record collected while transforming manifest content.
// Messages are emitted verbatim behind the logger's level prefix, in the
// order they were produced.
type Event struct {
	Message string
}

// LineChange describes a single rewritten manifest line.
type LineChange struct {
	Line       int    `json:"line"`
	Src        string `json:"src"`
	New        string `json:"new"`
	OldVersion string `json:"old_version"`
	NewVersion string `json:"new_version"`
}

// FileResult is the outcome of processing one manifest file.
type FileResult struct {
	Path    string       `json:"path"`
	Field   string       `json:"field"`
	Changed bool         `json:"changed"`
	DryRun  bool         `json:"dry_run"`
	Changes []LineChange `json:"changes"`
	Events  []Event      `json:"-"`
}

// BumpReportJSON is the machine-readable envelope for bump results.
type BumpReportJSON struct {
	GeneratedAt  string       `json:"generated_at"`
	CLIVersion   string       `json:"cli_version"`
	FilesChanged int          `json:"files_changed"`
	TotalChanges int          `json:"total_changes"`
	Results      []FileResult `json:"results"`
}

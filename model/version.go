package model

// VersionInfo carries build-time metadata injected through ldflags.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

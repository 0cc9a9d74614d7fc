// Package config loads optional file-based defaults for the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bumpver/bumpver/model"
	"github.com/ghodss/yaml"
)

// DefaultConfigFile is looked up in the working directory when
// --config-path is not given. A missing default file is not an error.
const DefaultConfigFile = ".bumpver.yaml"

// FileConfig mirrors the subset of flags that may be preset from a
// config file. Explicit command-line flags always win over file values.
type FileConfig struct {
	Path      string   `json:"path,omitempty"`
	Field     string   `json:"field,omitempty"`
	Component string   `json:"component,omitempty"`
	Files     []string `json:"files,omitempty"`
	Output    string   `json:"output,omitempty"`
	Quiet     bool     `json:"quiet,omitempty"`
	Store     bool     `json:"store,omitempty"`
	DBPath    string   `json:"dbPath,omitempty"`
}

type service struct {
	flagChanged func(name string) bool
}

// Service is the interface for file-based configuration.
type Service interface {
	Load(path string) (FileConfig, error)
	Merge(flags model.Flags, fc FileConfig) model.Flags
}

// NewService creates a new config service. flagChanged reports whether
// a flag was set explicitly on the command line.
func NewService(flagChanged func(name string) bool) Service {
	return &service{flagChanged: flagChanged}
}

// Load reads a config file. An empty path falls back to
// DefaultConfigFile, which may be absent; an explicit path must exist.
func (s *service) Load(path string) (FileConfig, error) {
	var fc FileConfig

	lookupDefault := path == ""
	if lookupDefault {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if lookupDefault && errors.Is(err, fs.ErrNotExist) {
			return fc, nil
		}
		return fc, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return fc, nil
}

// Merge applies file values onto flags left at their defaults.
func (s *service) Merge(flags model.Flags, fc FileConfig) model.Flags {
	if fc.Path != "" && !s.flagChanged("path") {
		flags.Path = fc.Path
	}
	if fc.Field != "" && !s.flagChanged("field") {
		flags.Field = fc.Field
	}
	if fc.Component != "" && !s.flagChanged("component") {
		flags.Component = fc.Component
	}
	if len(fc.Files) > 0 && !s.flagChanged("files") {
		flags.Files = fc.Files
	}
	if fc.Output != "" && !s.flagChanged("output") {
		flags.Output = fc.Output
	}
	if fc.Quiet && !s.flagChanged("quiet") {
		flags.Quiet = true
	}
	if fc.Store && !s.flagChanged("store") {
		flags.Store = true
	}
	if fc.DBPath != "" && !s.flagChanged("db-path") {
		flags.DBPath = fc.DBPath
	}
	return flags
}

// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"

	"github.com/bumpver/bumpver/model"
)

// NewService creates a new output service with the specified format.
// Text mode renders nothing here; the log lines are the output.
func NewService(format, version string) (Service, error) {
	var f Format
	switch format {
	case "", "text":
		f = FormatText
	case "table":
		f = FormatTable
	case "json":
		f = FormatJSON
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return &service{
		format:   f,
		version:  version,
		renderer: &realRenderer{},
	}, nil
}

func (s *service) Render(results []model.FileResult) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputBumpJSON(s.version, results)
	case FormatTable:
		s.renderer.DrawBumpTable(results)
	}
	return nil
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}

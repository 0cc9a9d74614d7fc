package output

import (
	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/shared/report"
	"github.com/bumpver/bumpver/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing result views
type Renderer interface {
	DrawBumpTable(results []model.FileResult)
	OutputBumpJSON(cliVersion string, results []model.FileResult) error
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawBumpTable(results []model.FileResult) {
	report.DrawBumpTable(results)
}

func (r *realRenderer) OutputBumpJSON(cliVersion string, results []model.FileResult) error {
	return report.OutputBumpJSON(cliVersion, results)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format   Format
	version  string
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	Render(results []model.FileResult) error
	StopSpinner()
}

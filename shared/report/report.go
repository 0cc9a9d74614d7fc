// Package report provides table and JSON renderings of bump results.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/bumpver/bumpver/model"
	"github.com/bumpver/bumpver/service/storage"
)

// DrawBumpTable renders applied line changes in a formatted table.
func DrawBumpTable(results []model.FileResult) {
	changed := 0
	dryRun := false
	for _, r := range results {
		if r.Changed {
			changed++
		}
		if r.DryRun {
			dryRun = true
		}
	}

	if changed == 0 {
		fmt.Println("\nNo version lines changed")
		return
	}

	if dryRun {
		fmt.Println("\n" + text.FgYellow.Sprintf("🔍 %d file(s) would be updated (dry-run)", changed))
	} else {
		fmt.Println("\n" + text.FgGreen.Sprintf("✅ %d file(s) updated", changed))
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Field", "Line", "Old Version", "New Version"})
	for _, r := range results {
		for _, c := range r.Changes {
			t.AppendRow(table.Row{r.Path, r.Field, c.Line, c.OldVersion, text.FgGreen.Sprint(c.NewVersion)})
		}
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawHistoryTable prints recorded bumps, newest first.
func DrawHistoryTable(bumps []storage.BumpSummary) {
	if len(bumps) == 0 {
		fmt.Println("No bump history recorded")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Timestamp", "File", "Field", "Component", "Old Version", "New Version", "Line"})
	for _, b := range bumps {
		t.AppendRow(table.Row{b.BumpID, b.BumpTimestamp.Format("2006-01-02 15:04:05"), b.Path, b.Field, b.Component, b.OldVersion, text.FgGreen.Sprint(b.NewVersion), b.Line})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawBumpDetail prints a single recorded bump.
func DrawBumpDetail(b *storage.BumpSummary) {
	if b == nil {
		fmt.Println("No bump data available")
		return
	}
	fmt.Printf("\nBump %d (%s)\n", b.BumpID, b.BumpUUID)
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Timestamp", "File", "Field", "Component", "Old Version", "New Version", "Line", "CLI Version"})
	t.AppendRow(table.Row{b.BumpTimestamp.Format("2006-01-02 15:04:05"), b.Path, b.Field, b.Component, b.OldVersion, text.FgGreen.Sprint(b.NewVersion), b.Line, b.Version})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// OutputBumpJSON outputs bump results as JSON.
func OutputBumpJSON(cliVersion string, results []model.FileResult) error {
	report := BuildBumpReport(cliVersion, results, time.Now().UTC().Format(time.RFC3339))
	return printJSON(report)
}

// BuildBumpReport builds the bump JSON report model.
func BuildBumpReport(cliVersion string, results []model.FileResult, generatedAt string) model.BumpReportJSON {
	changed := 0
	total := 0
	for _, r := range results {
		if r.Changed {
			changed++
		}
		total += len(r.Changes)
	}

	if results == nil {
		results = []model.FileResult{}
	}

	return model.BumpReportJSON{
		GeneratedAt:  generatedAt,
		CLIVersion:   cliVersion,
		FilesChanged: changed,
		TotalChanges: total,
		Results:      results,
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))

	return nil
}

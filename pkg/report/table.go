// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/flul/flultest"
)

// Table renders a run's report as a table of its tests followed by a
// totals footer.
type Table struct {

	// Out receives the table; it defaults to os.Stdout.
	Out io.Writer
}

// Report implements flultest.Reporter.
func (t *Table) Report(r *flultest.Report) error {
	out := t.Out
	if out == nil {
		out = os.Stdout
	}
	title := cases.Title(language.English)
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("Test Results (%s)",
		flultest.FormatDuration(r.Duration)))
	tw.AppendHeader(table.Row{"Test", "Tags", "Duration", "Result"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Test", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})
	for _, res := range r.Results {
		tw.AppendRow(table.Row{
			res.Metadata.ID(),
			strings.Join(res.Metadata.Tags(), ", "),
			flultest.FormatDuration(res.Duration),
			title.String(res.Outcome.String()),
		})
	}
	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d tests", r.Total()),
		"",
		fmt.Sprintf("%d passed", r.Passed()),
		fmt.Sprintf("%d failed", r.Failed()),
	})
	tw.Render()
	return nil
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report provides flultest.Reporter implementations writing
// the report of a test run as JSON file, as summary table or as
// prometheus metrics textfile.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/flul/flultest"
)

// NewRunID returns a fresh identifier for a test run.
func NewRunID() string { return uuid.NewString() }

// JSON writes a run's report to the file at Path, creating missing
// parent directories.
type JSON struct {
	Path string
}

// run is the JSON representation of a flultest.Report.
type run struct {
	RunID    string       `json:"runId"`
	Started  time.Time    `json:"started"`
	Duration string       `json:"duration"`
	Total    int          `json:"total"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
	Tests    []testResult `json:"tests"`
}

type testResult struct {
	ID         string   `json:"id"`
	Suite      string   `json:"suite"`
	Test       string   `json:"test"`
	Tags       []string `json:"tags,omitempty"`
	Passed     bool     `json:"passed"`
	Outcome    string   `json:"outcome"`
	DurationNS int64    `json:"durationNs"`
	Failure    *failure `json:"failure,omitempty"`
}

type failure struct {
	Message  string `json:"message"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Location string `json:"location"`
}

// Report implements flultest.Reporter.  A report without run id gets
// a fresh one.
func (j *JSON) Report(r *flultest.Report) error {
	out := newRun(r)
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("report: json: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(j.Path), 0o755); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}
	if err := os.WriteFile(j.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}
	return nil
}

func newRun(r *flultest.Report) *run {
	id := r.RunID
	if id == "" {
		id = NewRunID()
	}
	out := &run{
		RunID:    id,
		Started:  r.Started,
		Duration: flultest.FormatDuration(r.Duration),
		Total:    r.Total(),
		Passed:   r.Passed(),
		Failed:   r.Failed(),
		Tests:    make([]testResult, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		tr := testResult{
			ID:         res.Metadata.ID(),
			Suite:      res.Metadata.Suite,
			Test:       res.Metadata.Test,
			Tags:       res.Metadata.Tags(),
			Passed:     res.Passed,
			Outcome:    res.Outcome.String(),
			DurationNS: res.Duration.Nanoseconds(),
		}
		if res.Err != nil {
			tr.Failure = &failure{
				Message:  res.Err.Error(),
				Expected: res.Err.Expected(),
				Actual:   res.Err.Actual(),
				Location: res.Err.Location().String(),
			}
		}
		out.Tests = append(out.Tests, tr)
	}
	return out
}

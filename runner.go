// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Runner executes the tests of a registry sequentially in registration
// order and reports each result and a summary:
//
//	[ PASS ] Stack::Push_increases_len (1.52µs)
//	[ FAIL ] Stack::Pop_decreases_len (3.07µs)
//	  stack_test.go:42: assertion failed
//	    expected: 0
//	      actual: 1
//
//	2 tests, 1 passed, 1 failed
type Runner struct {

	// Out receives the per test lines and the summary; it defaults to
	// os.Stdout.
	Out io.Writer

	// Logger receives debug events and reporter failures; it defaults
	// to the registry's logger.
	Logger *slog.Logger

	// Reporters are called in order with the report of a finished
	// run.  A failing reporter is logged and doesn't change the exit
	// code.
	Reporters []Reporter

	// Clock returns the current time; it defaults to time.Now.
	Clock func() time.Time

	// RunID identifies the runs of this runner in reports.
	RunID string

	registry *Registry
	last     *Report
}

// NewRunner returns a runner executing the tests of given registry.
func NewRunner(r *Registry) *Runner { return &Runner{registry: r} }

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return r.registry.logger()
	}
	return r.Logger
}

func (r *Runner) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

// Exit codes returned by RunAll.
const (
	ExitPassed = 0
	ExitFailed = 1
)

// RunAll executes every test currently retained by the registry and
// returns ExitPassed if all of them passed, which includes the case of
// no tests, and ExitFailed otherwise.  The registry panics on mutations
// during the run.
func (r *Runner) RunAll() int {
	r.registry.lock()
	defer r.registry.unlock()

	report := &Report{RunID: r.RunID, Started: r.now()}
	for _, e := range r.registry.entries {
		res := r.Execute(e)
		r.print(&res)
		report.Results = append(report.Results, res)
	}
	report.Duration = r.now().Sub(report.Started)
	fmt.Fprintln(r.out())
	fmt.Fprintf(r.out(), "%d tests, %d passed, %d failed\n",
		report.Total(), report.Passed(), report.Failed())
	r.last = report

	for _, rp := range r.Reporters {
		if err := rp.Report(report); err != nil {
			r.logger().Error("reporter failed", "err", err)
		}
	}

	if report.Failed() > 0 {
		return ExitFailed
	}
	return ExitPassed
}

// LastReport returns the report of the latest RunAll call or nil.
func (r *Runner) LastReport() *Report { return r.last }

// Execute runs given entry and returns its timed and classified result.
func (r *Runner) Execute(e *TestEntry) TestResult {
	r.logger().Debug("running test", "test", e.ID())
	start := r.now()
	outcome := invoke(e.Invoke)
	res := TestResult{
		Metadata: &e.Metadata,
		Outcome:  outcome.Kind,
		Passed:   outcome.Kind == OK,
		Duration: r.now().Sub(start),
		Err:      outcome.Err,
	}
	r.logger().Debug("test finished", "test", e.ID(),
		"outcome", res.Outcome.String(), "duration", res.Duration)
	return res
}

func (r *Runner) print(res *TestResult) {
	status := "PASS"
	if !res.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(r.out(), "[ %s ] %s (%s)\n",
		status, res.Metadata.ID(), FormatDuration(res.Duration))
	if !res.Passed && res.Err != nil {
		fmt.Fprintf(r.out(), "  %s\n", res.Err.Error())
	}
}

// FormatDuration renders given duration in nanoseconds below a
// microsecond and otherwise with two decimals in the largest of µs, ms
// or s which keeps the value at least 1, e.g. "999ns", "1.50µs",
// "12.00ms" or "2.25s".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
	return fmt.Sprintf("%.2fs", float64(d.Nanoseconds())/1e9)
}

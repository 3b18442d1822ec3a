// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selfcheck

import (
	"bytes"
	"strings"
	"time"

	"github.com/flul/flultest"
)

// runner executes a nested registry whose output is captured.
type runner struct {
	reg *flultest.Registry
	out *bytes.Buffer
}

func (s *runner) SetUp() {
	s.reg, _, _ = quiet()
	s.out = &bytes.Buffer{}
}

func (s *runner) run() (int, *flultest.Report) {
	r := flultest.NewRunner(s.reg)
	r.Out = s.out
	code := r.RunAll()
	return code, r.LastReport()
}

func (s *runner) No_tests_pass() {
	code, _ := s.run()
	flultest.Expect(code).ToEqual(flultest.ExitPassed)
	flultest.Expect(strings.HasSuffix(s.out.String(),
		"0 tests, 0 passed, 0 failed\n")).ToBeTrue()
}

func (s *runner) Foreign_errors_are_reported_as_thrown() {
	s.reg.Add("S", "Boom", func() { panic(errBoom) })
	code, rpt := s.run()
	flultest.Expect(code).ToEqual(flultest.ExitFailed)
	res := rpt.Results[0]
	flultest.Expect(res.Outcome).ToEqual(flultest.ForeignFailure)
	flultest.Expect(res.Err.Actual()).ToEqual("threw: boom")
	flultest.Expect(res.Err.Expected()).ToEqual("no exception")
}

func (s *runner) Other_panic_values_are_unknown() {
	s.reg.Add("S", "Odd", func() { panic(42) })
	_, rpt := s.run()
	res := rpt.Results[0]
	flultest.Expect(res.Outcome).ToEqual(flultest.UnknownFailure)
	flultest.Expect(res.Err.Actual()).ToEqual("unknown exception")
}

func (s *runner) Failures_dont_stop_the_run() {
	s.reg.Add("S", "Fail", func() { flultest.Expect(1).ToEqual(2) })
	s.reg.Add("S", "Pass", noop)
	code, rpt := s.run()
	flultest.Expect(code).ToEqual(flultest.ExitFailed)
	flultest.ExpectOrdered(rpt.Passed()).ToEqual(1)
	flultest.ExpectOrdered(rpt.Failed()).ToEqual(1)
	flultest.Expect(strings.Contains(s.out.String(),
		"[ PASS ] S::Pass")).ToBeTrue()
}

func (s *runner) Mutating_a_running_registry_panics() {
	s.reg.Add("S", "Mutate", func() { s.reg.Add("S", "Late", noop) })
	_, rpt := s.run()
	flultest.Expect(rpt.Results[0].Err.Actual()).ToEqual(
		"threw: " + flultest.ErrRegistryLocked.Error())
	flultest.ExpectOrdered(s.reg.Len()).ToEqual(1)
}

func (s *runner) Durations_use_the_largest_fitting_unit() {
	for _, c := range []struct {
		d    time.Duration
		want string
	}{
		{0, "0ns"},
		{999 * time.Nanosecond, "999ns"},
		{1500 * time.Nanosecond, "1.50µs"},
		{time.Millisecond, "1.00ms"},
		{12 * time.Millisecond, "12.00ms"},
		{2250 * time.Millisecond, "2.25s"},
	} {
		flultest.Expect(flultest.FormatDuration(c.d)).ToEqual(c.want)
	}
}

func registerRunner(r *flultest.Registry) {
	flultest.AddTests(r, "Runner", []flultest.Test[runner]{
		{Name: "No_tests_pass",
			Method: (*runner).No_tests_pass},
		{Name: "Foreign_errors_are_reported_as_thrown",
			Method: (*runner).Foreign_errors_are_reported_as_thrown},
		{Name: "Other_panic_values_are_unknown",
			Method: (*runner).Other_panic_values_are_unknown},
		{Name: "Failures_dont_stop_the_run",
			Method: (*runner).Failures_dont_stop_the_run},
		{Name: "Mutating_a_running_registry_panics",
			Method: (*runner).Mutating_a_running_registry_panics},
		{Name: "Durations_use_the_largest_fitting_unit",
			Method: (*runner).Durations_use_the_largest_fitting_unit,
			Tags:   []string{"fast"}},
	})
}

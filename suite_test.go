// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flul/flultest"
	"github.com/flul/flultest/pkg/gotest"
)

// calls logs the fixture calls of the suites below.
var calls []string

type fxSuite struct{ setUps int }

func (s *fxSuite) SetUp()    { s.setUps++; calls = append(calls, "setup") }
func (s *fxSuite) TearDown() { calls = append(calls, "teardown") }

func (s *fxSuite) Pass()  { calls = append(calls, "pass") }
func (s *fxSuite) Fresh() { flultest.Expect(s.setUps).ToEqual(1) }
func (s *fxSuite) Fail() {
	calls = append(calls, "fail")
	flultest.Expect(1).ToEqual(2)
}

type fxBrokenTearDown struct{}

func (s *fxBrokenTearDown) TearDown() { panic(errors.New("teardown")) }
func (s *fxBrokenTearDown) Pass()     {}
func (s *fxBrokenTearDown) Fail()     { flultest.Expect("a").ToEqual("b") }

type fxPlain struct{ n int }

func (s *fxPlain) Pass() { s.n++; flultest.Expect(s.n).ToEqual(1) }

func Test_set_up_and_tear_down_wrap_every_test(t *testing.T) {
	calls = nil
	reg, _, _ := fxRegistry()
	for i := 0; i < 10; i++ {
		flultest.AddTest(reg, "Fx", "Pass", (*fxSuite).Pass)
	}
	r, _ := fxRunner(reg)
	require.Equal(t, flultest.ExitPassed, r.RunAll())
	require.Len(t, calls, 30)
	setUps := 0
	for _, c := range calls {
		if c == "setup" {
			setUps++
		}
	}
	assert.Equal(t, 10, setUps)
}

func Test_every_test_gets_a_fresh_suite(t *testing.T) {
	reg, _, _ := fxRegistry()
	flultest.AddTest(reg, "Fx", "Fresh", (*fxSuite).Fresh)
	flultest.AddTest(reg, "Fx", "Fresh", (*fxSuite).Fresh)
	flultest.AddTest(reg, "Plain", "Pass", (*fxPlain).Pass)
	flultest.AddTest(reg, "Plain", "Pass", (*fxPlain).Pass)
	r, _ := fxRunner(reg)
	assert.Equal(t, flultest.ExitPassed, r.RunAll())
}

func Test_tear_down_runs_after_a_failing_test(t *testing.T) {
	calls = nil
	reg, _, _ := fxRegistry()
	flultest.AddTest(reg, "Fx", "Fail", (*fxSuite).Fail)
	r, _ := fxRunner(reg)
	require.Equal(t, flultest.ExitFailed, r.RunAll())
	assert.Equal(t, []string{"setup", "fail", "teardown"}, calls)
	assert.Equal(t, flultest.AssertionFailure,
		r.LastReport().Results[0].Outcome)
}

func Test_failing_tear_down_fails_the_test(t *testing.T) {
	reg, _, _ := fxRegistry()
	flultest.AddTest(reg, "Broken", "Pass", (*fxBrokenTearDown).Pass)
	r, _ := fxRunner(reg)
	require.Equal(t, flultest.ExitFailed, r.RunAll())
	res := r.LastReport().Results[0]
	assert.Equal(t, flultest.ForeignFailure, res.Outcome)
	assert.Equal(t, "threw: teardown", res.Err.Actual())
}

func Test_test_failure_wins_over_tear_down_failure(t *testing.T) {
	reg, _, _ := fxRegistry()
	flultest.AddTest(reg, "Broken", "Fail", (*fxBrokenTearDown).Fail)
	r, _ := fxRunner(reg)
	require.Equal(t, flultest.ExitFailed, r.RunAll())
	res := r.LastReport().Results[0]
	assert.Equal(t, flultest.AssertionFailure, res.Outcome)
	assert.Equal(t, "b", res.Err.Expected())
}

func Test_add_tests_merges_suite_and_test_tags(t *testing.T) {
	reg, _, diag := fxRegistry()
	flultest.AddTests(reg, "Fx", []flultest.Test[fxSuite]{
		{Name: "Pass", Method: (*fxSuite).Pass, Tags: []string{"db"}},
		{Name: "Fail", Method: (*fxSuite).Fail, Tags: []string{"fast"}},
	}, "fast")
	require.Equal(t, []string{"Fx::Pass", "Fx::Fail"}, ids(reg))
	tt := reg.Tests()
	assert.Equal(t, []string{"db", "fast"}, tt[0].Metadata.Tags())
	assert.Equal(t, []string{"fast"}, tt[1].Metadata.Tags())
	assert.Contains(t, diag.String(), `duplicate tag "fast" on test Fx::Fail`)
}

// TestSuiteUnderGoTest runs a fixture suite through go test's sub-tests.
func TestSuiteUnderGoTest(t *testing.T) {
	reg, _, _ := fxRegistry()
	flultest.AddTests(reg, "Fx", []flultest.Test[fxSuite]{
		{Name: "Pass", Method: (*fxSuite).Pass},
		{Name: "Fresh", Method: (*fxSuite).Fresh},
	})
	flultest.AddTest(reg, "Plain", "Pass", (*fxPlain).Pass)
	assert.True(t, gotest.Run(t, reg))
}

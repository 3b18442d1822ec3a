// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gotest runs the tests of a flultest registry under go test.
// Each registered test becomes a sub-test named by its "suite::test"
// identity:
//
//	func TestStack(t *testing.T) {
//	    reg := &flultest.Registry{}
//	    flultest.AddTest(reg, "Stack", "Push_increases_len",
//	        (*StackSuite).Push_increases_len)
//	    gotest.Run(t, reg)
//	}
//
// go test's -run flag selects tests by identity as usual, e.g.
// -run 'TestStack/Stack::Push'.
package gotest

import (
	"testing"

	"github.com/flul/flultest"
)

// Errorer reports a failed test's assertion error.  It defaults to the
// Error method of the sub-test's testing.T instance.
type Errorer func(t *testing.T, err *flultest.AssertionError)

// Run executes the tests of given registry as sub-tests of given
// testing instance and returns true iff all registered tests passed.
func Run(t *testing.T, reg *flultest.Registry) bool {
	t.Helper()
	return RunWith(t, reg, nil)
}

// RunWith is Run with given errorer replacing the default failure
// reporting.  The returned value reflects the registered tests' results
// even if given errorer doesn't fail the sub-tests.
func RunWith(t *testing.T, reg *flultest.Registry, errorer Errorer) bool {
	t.Helper()
	if errorer == nil {
		errorer = func(t *testing.T, err *flultest.AssertionError) {
			t.Helper()
			t.Error(err.Error())
		}
	}
	runner := flultest.NewRunner(reg)
	passed := true
	for _, e := range reg.Tests() {
		t.Run(e.ID(), subTest(runner, e, errorer, &passed))
	}
	return passed
}

// subTest wraps given entry in a function which may be passed to the
// Run-method of a testing.T instance.
func subTest(
	runner *flultest.Runner, e *flultest.TestEntry, errorer Errorer,
	passed *bool,
) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		res := runner.Execute(e)
		t.Logf("%s (%s)", res.Outcome, flultest.FormatDuration(res.Duration))
		if !res.Passed {
			*passed = false
			errorer(t, res.Err)
		}
	}
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"errors"
	"time"
)

// OutcomeKind classifies how a test invocation ended.
type OutcomeKind int

const (
	// OK is the outcome of a test which returned normally.
	OK OutcomeKind = iota

	// AssertionFailure is the outcome of a test which panicked with an
	// *AssertionError.
	AssertionFailure

	// ForeignFailure is the outcome of a test which panicked with any
	// other error.
	ForeignFailure

	// UnknownFailure is the outcome of a test which panicked with a
	// value which is not an error.
	UnknownFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OK:
		return "ok"
	case AssertionFailure:
		return "assertion failure"
	case ForeignFailure:
		return "foreign failure"
	case UnknownFailure:
		return "unknown failure"
	}
	return "invalid outcome"
}

// Outcome is the classified end of a test invocation.  Err is nil iff
// Kind is OK; failures other than assertion failures are converted to
// a synthesized *AssertionError.
type Outcome struct {
	Kind OutcomeKind
	Err  *AssertionError
}

const (
	threwPrefix = "threw: "
)

// classify converts given panic value into an outcome.  Synthesized
// assertion errors refer to given location.
func classify(recovered any, loc Location) Outcome {
	var ae *AssertionError
	switch v := recovered.(type) {
	case *AssertionError:
		return Outcome{Kind: AssertionFailure, Err: v}
	case AssertionError:
		return Outcome{Kind: AssertionFailure, Err: &v}
	case error:
		if errors.As(v, &ae) {
			return Outcome{Kind: AssertionFailure, Err: ae}
		}
		return Outcome{Kind: ForeignFailure, Err: NewAssertionError(
			threwPrefix+v.Error(), noException, loc)}
	}
	return Outcome{Kind: UnknownFailure, Err: NewAssertionError(
		unknownException, noException, loc)}
}

// invoke calls given test function and classifies how it ended.
func invoke(fn func()) (o Outcome) {
	completed := false
	defer func() {
		if completed {
			return
		}
		o = classify(recover(), caller(1))
	}()
	fn()
	completed = true
	return Outcome{Kind: OK}
}

// TestResult is the result of one executed test.
type TestResult struct {
	Metadata *TestMetadata
	Outcome  OutcomeKind
	Passed   bool
	Duration time.Duration

	// Err is the failure of a failed test and nil otherwise.
	Err *AssertionError
}

// Report aggregates the results of one RunAll call.
type Report struct {
	RunID    string
	Started  time.Time
	Duration time.Duration
	Results  []TestResult
}

// Total is the number of executed tests.
func (r *Report) Total() int { return len(r.Results) }

// Passed is the number of passed tests.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Failed is the number of failed tests.
func (r *Report) Failed() int { return r.Total() - r.Passed() }

// Reporter consumes the report of a finished run, e.g. to write it to
// a file.
type Reporter interface {
	Report(*Report) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(*Report) error

// Report calls f.
func (f ReporterFunc) Report(r *Report) error { return f(r) }

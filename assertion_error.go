// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"fmt"
	"runtime"
)

// Location identifies a source position, typically the call site of an
// assertion.
type Location struct {
	File     string
	Line     int
	Function string
}

// String renders a location as "file:line".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Here returns the location of its caller.
func Here() Location { return caller(2) }

// caller returns the location skip frames above caller itself.  A
// location with file "<unknown>" is returned if the runtime can't
// provide the frame.
func caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "<unknown>"}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

// AssertionError is the structured failure of an assertion.  Assertions
// panic with an *AssertionError which is recovered by the runner.  An
// AssertionError is immutable; its message is formatted once at
// construction.
type AssertionError struct {
	actual   string
	expected string
	location Location
	detail   string
	msg      string
}

// assertFmt is the format-string of an assertion error's message.
const assertFmt = "%s: assertion failed\n  expected: %s\n    actual: %s"

// detailFmt is appended to an assertion error's message if it has a
// detail, i.e. a diff.
const detailFmt = "\n  diff (-expected +actual):\n%s"

// NewAssertionError returns an assertion error for given textual
// representations of the actual and expected values at given location.
func NewAssertionError(
	actual, expected string, loc Location,
) *AssertionError {
	return newAssertionError(actual, expected, "", loc)
}

func newAssertionError(
	actual, expected, detail string, loc Location,
) *AssertionError {
	msg := fmt.Sprintf(assertFmt, loc, expected, actual)
	if detail != "" {
		msg += fmt.Sprintf(detailFmt, detail)
	}
	return &AssertionError{
		actual:   actual,
		expected: expected,
		location: loc,
		detail:   detail,
		msg:      msg,
	}
}

// Error returns the message which was formatted at construction.
func (e *AssertionError) Error() string { return e.msg }

// Actual is the textual representation of the actual value.
func (e *AssertionError) Actual() string { return e.actual }

// Expected is the textual representation of the expected value.
func (e *AssertionError) Expected() string { return e.expected }

// Location is the source location the assertion error refers to.
func (e *AssertionError) Location() Location { return e.location }

// Detail is an optional diff between the expected and actual value.
func (e *AssertionError) Detail() string { return e.detail }

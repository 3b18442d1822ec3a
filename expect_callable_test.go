// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flul/flultest"
)

type emptyError struct{ op string }

func (e *emptyError) Error() string { return e.op + " on empty stack" }

func Test_to_throw_passes_and_assigns_a_matching_panic(t *testing.T) {
	var err *emptyError
	require.NotPanics(t, func() {
		flultest.ExpectCallable(func() {
			panic(&emptyError{op: "pop"})
		}).ToThrow(&err)
	})
	require.NotNil(t, err)
	assert.Equal(t, "pop", err.op)
}

func Test_to_throw_unwraps_wrapped_errors(t *testing.T) {
	var err *fs.PathError
	require.NotPanics(t, func() {
		flultest.ExpectCallable(func() {
			panic(fmt.Errorf("open: %w",
				&fs.PathError{Op: "open", Err: fs.ErrNotExist}))
		}).ToThrow(&err)
	})
	assert.Equal(t, "open", err.Op)
}

func Test_to_throw_accepts_any_error(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		flultest.ExpectCallable(func() { panic(errors.New("x")) }).
			ToThrow(&err)
	})
	assert.EqualError(t, err, "x")
}

func Test_to_throw_accepts_non_error_panic_values(t *testing.T) {
	var s string
	require.NotPanics(t, func() {
		flultest.ExpectCallable(func() { panic("boom") }).ToThrow(&s)
	})
	assert.Equal(t, "boom", s)
}

func Test_to_throw_fails_without_panic(t *testing.T) {
	var err *emptyError
	ae := failure(t, func() {
		flultest.ExpectCallable(func() {}).ToThrow(&err)
	})
	assert.Equal(t, "no exception", ae.Actual())
	assert.Equal(t, "*flultest_test.emptyError", ae.Expected())
}

func Test_to_throw_fails_on_a_different_panic(t *testing.T) {
	var err *emptyError
	ae := failure(t, func() {
		flultest.ExpectCallable(func() { panic(errors.New("x")) }).
			ToThrow(&err)
	})
	assert.Equal(t, "different exception", ae.Actual())
	ae = failure(t, func() {
		flultest.ExpectCallable(func() { panic(42) }).ToThrow(&err)
	})
	assert.Equal(t, "different exception", ae.Actual())
}

func Test_to_throw_fails_on_an_invalid_target(t *testing.T) {
	ae := failure(t, func() {
		flultest.ExpectCallable(func() { panic(1) }).ToThrow(nil)
	})
	assert.Equal(t, "<unknown type>", ae.Expected())
}

func Test_to_not_throw_reports_the_error_message(t *testing.T) {
	ae := failure(t, func() {
		flultest.ExpectCallable(func() { panic(errors.New("boom")) }).
			ToNotThrow()
	})
	assert.Equal(t, "boom", ae.Actual())
	assert.Equal(t, "no exception", ae.Expected())
}

func Test_to_not_throw_reports_unknown_panic_values(t *testing.T) {
	ae := failure(t, func() {
		flultest.ExpectCallable(func() { panic(42) }).ToNotThrow()
	})
	assert.Equal(t, "unknown exception", ae.Actual())
	assert.NotPanics(t, func() { flultest.ExpectCallable(func() {}).ToNotThrow() })
}

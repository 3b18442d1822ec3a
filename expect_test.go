// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flul/flultest"
)

// failure returns the assertion error given function panics with and
// fails given test if it doesn't.
func failure(t *testing.T, fn func()) (ae *flultest.AssertionError) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		var ok bool
		ae, ok = r.(*flultest.AssertionError)
		require.True(t, ok, "expected assertion error; got: %v", r)
	}()
	fn()
	return nil
}

func Test_passing_expectations_chain(t *testing.T) {
	assert.NotPanics(t, func() {
		flultest.Expect("a").ToEqual("a").ToNotEqual("b")
		flultest.Expect(true).ToBeTrue().ToNotEqual(false)
		flultest.ExpectOrdered(2).ToBeGreaterThan(1).ToBeLessThan(3).
			ToEqual(2).ToNotEqual(3)
		flultest.ExpectDeep([]int{1}).ToDeepEqual([]int{1}).
			ToNotDeepEqual([]int{2})
	})
}

func Test_failed_equality_reports_both_sides(t *testing.T) {
	ae := failure(t, func() { flultest.Expect(1).ToEqual(2) })
	assert.Equal(t, "1", ae.Actual())
	assert.Equal(t, "2", ae.Expected())
	assert.Equal(t, "expect_test.go", filepath.Base(ae.Location().File))
	assert.Contains(t, ae.Error(), "assertion failed")
}

func Test_failed_inequality_prefixes_expected_with_not(t *testing.T) {
	ae := failure(t, func() { flultest.Expect("x").ToNotEqual("x") })
	assert.Equal(t, "not x", ae.Expected())
	assert.Equal(t, "x", ae.Actual())
}

func Test_booleans_fail_on_the_opposite_value(t *testing.T) {
	ae := failure(t, func() { flultest.Expect(false).ToBeTrue() })
	assert.Equal(t, "true", ae.Expected())
	assert.Equal(t, "false", ae.Actual())
	ae = failure(t, func() { flultest.Expect(true).ToBeFalse() })
	assert.Equal(t, "false", ae.Expected())
}

func Test_booleans_fail_on_non_boolean_values(t *testing.T) {
	ae := failure(t, func() { flultest.Expect(0).ToBeFalse() })
	assert.Equal(t, "false", ae.Expected())
	assert.Equal(t, "0", ae.Actual())
	ae = failure(t, func() { flultest.Expect("true").ToBeTrue() })
	assert.Equal(t, "true", ae.Actual())
	x := 1
	ae = failure(t, func() { flultest.Expect(&x).ToBeTrue() })
	assert.Equal(t, "true", ae.Expected())
	ae = failure(t, func() { flultest.Expect((*int)(nil)).ToBeFalse() })
	assert.Equal(t, "false", ae.Expected())
}

type flag bool

func Test_booleans_accept_named_bool_types(t *testing.T) {
	assert.NotPanics(t, func() {
		flultest.Expect(flag(true)).ToBeTrue()
		flultest.Expect(flag(false)).ToBeFalse()
	})
}

func Test_ordered_bounds_are_exclusive(t *testing.T) {
	ae := failure(t, func() { flultest.ExpectOrdered(1.5).ToBeGreaterThan(1.5) })
	assert.Equal(t, "greater than 1.5", ae.Expected())
	ae = failure(t, func() { flultest.ExpectOrdered("b").ToBeLessThan("a") })
	assert.Equal(t, "less than a", ae.Expected())
	assert.Equal(t, "b", ae.Actual())
}

func Test_deep_inequality_carries_a_diff(t *testing.T) {
	ae := failure(t, func() {
		flultest.ExpectDeep(point{1, 2}).ToDeepEqual(point{1, 3})
	})
	assert.Equal(t, "{1 2}", ae.Actual())
	assert.Equal(t, "{1 3}", ae.Expected())
	assert.NotEmpty(t, ae.Detail())
	assert.True(t, strings.Contains(ae.Error(), "diff (-expected +actual)"))
}

func Test_deep_equality_honors_cmp_options(t *testing.T) {
	assert.NotPanics(t, func() {
		flultest.ExpectDeep([]int{2, 1}).ToDeepEqual([]int{1, 2},
			cmpopts.SortSlices(func(a, b int) bool { return a < b }))
	})
	ae := failure(t, func() {
		flultest.ExpectDeep([]int{}).ToNotDeepEqual(nil,
			cmpopts.EquateEmpty())
	})
	assert.Equal(t, "not []", ae.Expected())
}

func Test_equality_of_interface_values_with_uncomparable_types(t *testing.T) {
	var got, want any = []int{1}, []int{1}
	assert.NotPanics(t, func() { flultest.Expect(got).ToEqual(want) })
	ae := failure(t, func() {
		flultest.Expect(got).ToEqual(any([]int{2}))
	})
	assert.Equal(t, "[2]", ae.Expected())
	assert.Equal(t, "expect_test.go", filepath.Base(ae.Location().File))
	ae = failure(t, func() { flultest.Expect(got).ToNotEqual(want) })
	assert.Equal(t, "not [1]", ae.Expected())
}

func Test_equality_of_interface_values_inside_a_run(t *testing.T) {
	reg, _, _ := fxRegistry()
	reg.Add("S", "Slices", func() {
		var got, want any = []int{1}, []int{1}
		flultest.Expect(got).ToEqual(want)
	})
	r, _ := fxRunner(reg)
	assert.Equal(t, flultest.ExitPassed, r.RunAll())
}

type opaque struct{ items []int }

func Test_uncomparable_values_fail_at_the_assertion(t *testing.T) {
	var got, want any = opaque{[]int{1}}, opaque{[]int{1}}
	ae := failure(t, func() { flultest.Expect(got).ToEqual(want) })
	assert.Equal(t, "comparable to {[1]}", ae.Expected())
	assert.Equal(t, "expect_test.go", filepath.Base(ae.Location().File))
}

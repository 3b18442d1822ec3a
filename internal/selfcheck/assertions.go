// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selfcheck

import (
	"strings"

	"github.com/flul/flultest"
)

type assertions struct{}

func (s *assertions) Equal_values_pass() {
	flultest.Expect(42).ToEqual(42).ToNotEqual(7)
}

func (s *assertions) Unequal_values_report_expected_and_actual() {
	ae := expectFailure(func() { flultest.Expect(1).ToEqual(2) })
	flultest.Expect(ae.Expected()).ToEqual("2")
	flultest.Expect(ae.Actual()).ToEqual("1")
}

func (s *assertions) Not_equal_prefixes_expected_with_not() {
	ae := expectFailure(func() { flultest.Expect("a").ToNotEqual("a") })
	flultest.Expect(ae.Expected()).ToEqual("not a")
}

func (s *assertions) Interface_values_compare_by_content() {
	var got, want any = []int{1}, []int{1}
	flultest.Expect(got).ToEqual(want).ToNotEqual([]int{2})
}

func (s *assertions) Booleans_are_checked_by_kind() {
	flultest.Expect(true).ToBeTrue()
	flultest.Expect(false).ToBeFalse()
	ae := expectFailure(func() { flultest.Expect(1).ToBeTrue() })
	flultest.Expect(ae.Expected()).ToEqual("true")
}

func (s *assertions) Bounds_are_exclusive() {
	flultest.ExpectOrdered(2).ToBeGreaterThan(1).ToBeLessThan(3)
	ae := expectFailure(func() { flultest.ExpectOrdered(2).ToBeLessThan(2) })
	flultest.Expect(ae.Expected()).ToEqual("less than 2")
}

func (s *assertions) Message_names_the_assertion_site() {
	ae := expectFailure(func() { flultest.Expect(1).ToEqual(2) })
	flultest.Expect(strings.HasSuffix(
		ae.Location().File, "assertions.go")).ToBeTrue()
	flultest.Expect(strings.Contains(
		ae.Error(), "assertion failed\n  expected: 2\n    actual: 1",
	)).ToBeTrue()
}

func (s *assertions) Callable_reports_missing_panic() {
	ae := expectFailure(func() {
		var err error
		flultest.ExpectCallable(func() {}).ToThrow(&err)
	})
	flultest.Expect(ae.Actual()).ToEqual("no exception")
	flultest.Expect(ae.Expected()).ToEqual("error")
}

func (s *assertions) Callable_reports_foreign_panic_message() {
	ae := expectFailure(func() {
		flultest.ExpectCallable(func() { panic(errBoom) }).ToNotThrow()
	})
	flultest.Expect(ae.Actual()).ToEqual("boom")
	flultest.Expect(ae.Expected()).ToEqual("no exception")
}

func (s *assertions) Stringify_never_fails() {
	flultest.Expect(flultest.Stringify(func() {})).
		ToEqual(flultest.NonPrintable)
	flultest.Expect(flultest.Stringify(3.5)).ToEqual("3.5")
}

func registerAssertions(r *flultest.Registry) {
	flultest.AddTests(r, "Assertions", []flultest.Test[assertions]{
		{Name: "Equal_values_pass",
			Method: (*assertions).Equal_values_pass},
		{Name: "Unequal_values_report_expected_and_actual",
			Method: (*assertions).Unequal_values_report_expected_and_actual},
		{Name: "Not_equal_prefixes_expected_with_not",
			Method: (*assertions).Not_equal_prefixes_expected_with_not},
		{Name: "Interface_values_compare_by_content",
			Method: (*assertions).Interface_values_compare_by_content},
		{Name: "Booleans_are_checked_by_kind",
			Method: (*assertions).Booleans_are_checked_by_kind},
		{Name: "Bounds_are_exclusive",
			Method: (*assertions).Bounds_are_exclusive},
		{Name: "Message_names_the_assertion_site",
			Method: (*assertions).Message_names_the_assertion_site},
		{Name: "Callable_reports_missing_panic",
			Method: (*assertions).Callable_reports_missing_panic,
			Tags:   []string{"callable"}},
		{Name: "Callable_reports_foreign_panic_message",
			Method: (*assertions).Callable_reports_foreign_panic_message,
			Tags:   []string{"callable"}},
		{Name: "Stringify_never_fails",
			Method: (*assertions).Stringify_never_fails},
	}, "fast")
}

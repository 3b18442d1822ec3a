// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

// SetUpper is implemented by a suite which needs to set up its fixture
// before each of its tests.
type SetUpper interface{ SetUp() }

// TearDowner is implemented by a suite which needs to tear down its
// fixture after each of its tests.  TearDown is called even if the test
// fails.
type TearDowner interface{ TearDown() }

// Test describes one test of a suite S for AddTests.
type Test[S any] struct {
	Name   string
	Method func(*S)
	Tags   []string
}

// AddTest registers given method of suite S, e.g.:
//
//	type StackSuite struct{ stack *Stack }
//
//	func (s *StackSuite) SetUp() { s.stack = NewStack() }
//
//	func (s *StackSuite) Push_increases_len() {
//	    s.stack.Push(1)
//	    flultest.Expect(s.stack.Len()).ToEqual(1)
//	}
//
//	flultest.AddTest(reg, "Stack", "Push_increases_len",
//	    (*StackSuite).Push_increases_len, "fast")
//
// Each invocation of the registered test works on a fresh instance of S
// whose SetUp and TearDown are called if S implements SetUpper
// respectively TearDowner.
func AddTest[S any](
	r *Registry, suite, test string, method func(*S), tags ...string,
) *TestEntry {
	id := suite + "::" + test
	return r.Add(suite, test, fixture(method, func(v any) {
		r.logger().Warn("teardown failure dropped in favor of test failure",
			"test", id, "teardown", Stringify(v))
	}), tags...)
}

// AddTests registers given tests of suite S in given order.  Given tags
// are attached to each test in addition to the test's own tags.
func AddTests[S any](
	r *Registry, suite string, tests []Test[S], tags ...string,
) {
	for _, t := range tests {
		all := make([]string, 0, len(tags)+len(t.Tags))
		all = append(append(all, tags...), t.Tags...)
		AddTest(r, suite, t.Name, t.Method, all...)
	}
}

// fixture returns a function running given method on a fresh suite
// instance between its set up and tear down.  The tear down runs even
// if the method panics.  In that case the method's panic is propagated
// while a panic of the tear down is passed to dropped.
func fixture[S any](method func(*S), dropped func(any)) func() {
	return func() {
		s := new(S)
		if su, ok := any(s).(SetUpper); ok {
			su.SetUp()
		}
		td, ok := any(s).(TearDowner)
		if !ok {
			method(s)
			return
		}
		failure, failed := guard(func() { method(s) })
		if !failed {
			td.TearDown()
			return
		}
		if tdFailure, tdFailed := guard(td.TearDown); tdFailed {
			dropped(tdFailure)
		}
		panic(failure)
	}
}

// guard calls given function and returns its panic value if it
// panicked.
func guard(fn func()) (recovered any, panicked bool) {
	completed := false
	defer func() {
		if !completed {
			recovered, panicked = recover(), true
		}
	}()
	fn()
	completed = true
	return nil, false
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package flultest is a minimal unit-testing framework made of three
// tightly interacting pieces:
//   - a [Registry] collecting tests with optional tags and filtering
//     them by name and tags,
//   - a [Runner] executing each remaining test in isolation, timing it,
//     classifying its failure and summarizing the run,
//   - fluent assertions ([Expect], [ExpectOrdered], [ExpectDeep],
//     [ExpectCallable]) which fail a test by panicking with a
//     structured [AssertionError].
//
// A suite is any struct type.  Its tests are methods without arguments
// which are registered explicitly, i.e. there is no discovery by
// reflection:
//
//	type StackSuite struct{ stack *Stack }
//
//	func (s *StackSuite) SetUp() { s.stack = NewStack() }
//
//	func (s *StackSuite) TearDown() { s.stack = nil }
//
//	func (s *StackSuite) Push_increases_len() {
//	    s.stack.Push(1)
//	    flultest.ExpectOrdered(s.stack.Len()).ToEqual(1)
//	}
//
//	func (s *StackSuite) Pop_of_empty_stack_panics() {
//	    var err *EmptyError
//	    flultest.ExpectCallable(func() { s.stack.Pop() }).ToThrow(&err)
//	}
//
//	func Register(r *flultest.Registry) {
//	    flultest.AddTests(r, "Stack", []flultest.Test[StackSuite]{
//	        {Name: "Push_increases_len",
//	            Method: (*StackSuite).Push_increases_len},
//	        {Name: "Pop_of_empty_stack_panics",
//	            Method: (*StackSuite).Pop_of_empty_stack_panics,
//	            Tags: []string{"errors"}},
//	    }, "fast")
//	}
//
// Each test gets a fresh suite instance.  SetUp and TearDown are
// optional ([SetUpper], [TearDowner]); TearDown runs even if the test
// panics.  If both the test and its TearDown panic the test's failure is
// reported and the tear down's is logged.
//
// A test binary hands its registry to the command line dispatcher of
// package cli which applies --filter, --tag and --exclude-tag and then
// lists or runs the selected tests.  Package gotest runs a registry
// under go test instead.
//
// The runner classifies a panicking test by the panic value: an
// *AssertionError is reported verbatim, any other error is reported as
// "threw: <message>" and any other value as "unknown exception".  None
// of them stops the run.
package flultest

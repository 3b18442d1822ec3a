// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selfcheck

import (
	"bytes"

	"github.com/flul/flultest"
)

// trace records the fixture calls of counted instances.
var trace []string

// counted records its set up, test and tear down calls in trace.
type counted struct{ ups int }

func (c *counted) SetUp()    { c.ups++; trace = append(trace, "up") }
func (c *counted) TearDown() { trace = append(trace, "down") }

func (c *counted) Pass()  { trace = append(trace, "pass") }
func (c *counted) Fail()  { flultest.Expect(1).ToEqual(2) }
func (c *counted) State() { flultest.Expect(c.ups).ToEqual(1) }

// brokenDown fails in its tear down.
type brokenDown struct{}

func (b *brokenDown) TearDown() { panic(errBoom) }
func (b *brokenDown) Pass()     {}
func (b *brokenDown) Fail()     { flultest.Expect("a").ToEqual("b") }

type fixtures struct {
	reg *flultest.Registry
	out *bytes.Buffer
}

func (s *fixtures) SetUp() {
	trace = nil
	s.reg, _, _ = quiet()
	s.out = &bytes.Buffer{}
}

func (s *fixtures) run() *flultest.Report {
	r := flultest.NewRunner(s.reg)
	r.Out = s.out
	r.RunAll()
	return r.LastReport()
}

func (s *fixtures) Set_up_and_tear_down_wrap_each_test() {
	for i := 0; i < 5; i++ {
		flultest.AddTest(s.reg, "Counted", "Pass", (*counted).Pass)
	}
	s.run()
	flultest.ExpectOrdered(len(trace)).ToEqual(15)
	flultest.ExpectDeep(trace[:3]).ToDeepEqual(
		[]string{"up", "pass", "down"})
}

func (s *fixtures) Tear_down_runs_after_a_failure() {
	flultest.AddTest(s.reg, "Counted", "Fail", (*counted).Fail)
	rpt := s.run()
	flultest.Expect(rpt.Results[0].Outcome).
		ToEqual(flultest.AssertionFailure)
	flultest.ExpectDeep(trace).ToDeepEqual([]string{"up", "down"})
}

func (s *fixtures) Each_test_gets_a_fresh_instance() {
	flultest.AddTest(s.reg, "Counted", "State", (*counted).State)
	flultest.AddTest(s.reg, "Counted", "State", (*counted).State)
	flultest.ExpectOrdered(s.run().Passed()).ToEqual(2)
}

func (s *fixtures) Failing_tear_down_fails_a_passing_test() {
	flultest.AddTest(s.reg, "Broken", "Pass", (*brokenDown).Pass)
	res := s.run().Results[0]
	flultest.Expect(res.Outcome).ToEqual(flultest.ForeignFailure)
	flultest.Expect(res.Err.Actual()).ToEqual("threw: boom")
}

func (s *fixtures) Test_failure_wins_over_tear_down_failure() {
	flultest.AddTest(s.reg, "Broken", "Fail", (*brokenDown).Fail)
	res := s.run().Results[0]
	flultest.Expect(res.Outcome).ToEqual(flultest.AssertionFailure)
	flultest.Expect(res.Err.Expected()).ToEqual("b")
}

func registerFixtures(r *flultest.Registry) {
	flultest.AddTests(r, "Fixtures", []flultest.Test[fixtures]{
		{Name: "Set_up_and_tear_down_wrap_each_test",
			Method: (*fixtures).Set_up_and_tear_down_wrap_each_test},
		{Name: "Tear_down_runs_after_a_failure",
			Method: (*fixtures).Tear_down_runs_after_a_failure},
		{Name: "Each_test_gets_a_fresh_instance",
			Method: (*fixtures).Each_test_gets_a_fresh_instance},
		{Name: "Failing_tear_down_fails_a_passing_test",
			Method: (*fixtures).Failing_tear_down_fails_a_passing_test},
		{Name: "Test_failure_wins_over_tear_down_failure",
			Method: (*fixtures).Test_failure_wins_over_tear_down_failure},
	})
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gotest_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flul/flultest"
	"github.com/flul/flultest/pkg/gotest"
)

type stack struct{ items []int }

func (s *stack) SetUp() { s.items = []int{1, 2} }

func (s *stack) Pop_removes_the_top() {
	s.items = s.items[:len(s.items)-1]
	flultest.ExpectOrdered(len(s.items)).ToEqual(1)
}

func (s *stack) Top_is_the_last_pushed() {
	flultest.Expect(s.items[len(s.items)-1]).ToEqual(2)
}

func fxRegistry() *flultest.Registry {
	return &flultest.Registry{
		Out: io.Discard, Diag: io.Discard,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRunExecutesEachTestAsSubTest(t *testing.T) {
	reg := fxRegistry()
	flultest.AddTests(reg, "Stack", []flultest.Test[stack]{
		{Name: "Pop_removes_the_top", Method: (*stack).Pop_removes_the_top},
		{Name: "Top_is_the_last_pushed",
			Method: (*stack).Top_is_the_last_pushed},
	})
	assert.True(t, gotest.Run(t, reg))
}

func TestRunWithReportsFailuresToTheErrorer(t *testing.T) {
	reg := fxRegistry()
	reg.Add("S", "Pass", func() {})
	reg.Add("S", "Fail", func() { flultest.Expect(1).ToEqual(2) })
	var failed []string
	errorer := func(t *testing.T, err *flultest.AssertionError) {
		failed = append(failed, t.Name()+": "+err.Expected())
	}
	require.False(t, gotest.RunWith(t, reg, errorer))
	assert.Equal(t, []string{
		"TestRunWithReportsFailuresToTheErrorer/S::Fail: 2"}, failed)
}

func TestRunOfAnEmptyRegistryPasses(t *testing.T) {
	assert.True(t, gotest.Run(t, fxRegistry()))
}

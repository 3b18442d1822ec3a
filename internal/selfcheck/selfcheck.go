// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package selfcheck checks flultest with flultest: its suites exercise
// the assertions, the registry, the runner and the fixture contract and
// are registered by the flulselftest command.
package selfcheck

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/flul/flultest"
)

// Register adds all self-check suites to given registry.
func Register(r *flultest.Registry) {
	registerAssertions(r)
	registerRegistry(r)
	registerRunner(r)
	registerFixtures(r)
}

// errBoom is the foreign error thrown by self-check fixtures.
var errBoom = errors.New("boom")

// expectFailure fails unless given function panics with an assertion
// error and returns it.
func expectFailure(fn func()) *flultest.AssertionError {
	var ae *flultest.AssertionError
	flultest.ExpectCallable(fn).ToThrow(&ae)
	return ae
}

// quiet returns a registry whose output and diagnostics are captured.
func quiet() (*flultest.Registry, *bytes.Buffer, *bytes.Buffer) {
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	return &flultest.Registry{
		Out: out, Diag: diag, Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, out, diag
}

// lines splits given output into its non-empty lines.
func lines(s string) []string {
	var ll []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			ll = append(ll, l)
		}
	}
	return ll
}

func ids(r *flultest.Registry) []string {
	var ii []string
	for _, e := range r.Tests() {
		ii = append(ii, e.ID())
	}
	return ii
}

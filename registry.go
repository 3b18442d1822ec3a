// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrRegistryLocked is the panic value of a registry mutation while a
// runner executes the registry's tests.
var ErrRegistryLocked = errors.New(
	"flultest: registry: mutation while tests are running")

// dupTagWarning is the format of the diagnostic emitted for each
// repeated tag of a registered test.
const dupTagWarning = "[flul-test] warning: duplicate tag \"%s\" on test " +
	"%s::%s -- ignoring\n"

// Registry owns the ordered list of registered tests and filters it.
// The zero value is ready to use:
//
//	var reg flultest.Registry
//	flultest.AddTest(&reg, "Stack", "Push", (*StackSuite).Push, "fast")
//	reg.Filter("Stack::")
//	os.Exit(flultest.NewRunner(&reg).RunAll())
//
// A registry must not be mutated while a Runner executes its tests.
type Registry struct {

	// Out receives the listings; it defaults to os.Stdout.
	Out io.Writer

	// Diag receives diagnostics like duplicate tag warnings; it
	// defaults to os.Stderr.
	Diag io.Writer

	// Logger receives debug and warn events; it defaults to
	// slog.Default().
	Logger *slog.Logger

	entries []*TestEntry
	running int
}

func (r *Registry) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Registry) diag() io.Writer {
	if r.Diag == nil {
		return os.Stderr
	}
	return r.Diag
}

func (r *Registry) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// mutable panics with ErrRegistryLocked if a runner is executing this
// registry's tests.
func (r *Registry) mutable() {
	if r.running > 0 {
		panic(ErrRegistryLocked)
	}
}

func (r *Registry) lock()   { r.running++ }
func (r *Registry) unlock() { r.running-- }

// Add appends a test with given identity, invocation and tags.  Every
// occurrence of a tag after its first is reported to Diag and ignored.
// The returned entry stays valid across subsequent Add calls; it is
// removed from the registry (but not invalidated) by filters.
func (r *Registry) Add(
	suite, test string, invoke func(), tags ...string,
) *TestEntry {
	r.mutable()
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if slices.Contains(unique, tag) {
			fmt.Fprintf(r.diag(), dupTagWarning, tag, suite, test)
			continue
		}
		unique = append(unique, tag)
	}
	slices.Sort(unique)
	e := &TestEntry{
		Metadata: TestMetadata{Suite: suite, Test: test, tags: unique},
		Invoke:   invoke,
	}
	r.entries = append(r.entries, e)
	r.logger().Debug("test registered", "test", e.ID(), "tags", unique)
	return e
}

// Tests returns the currently retained entries in registration order.
// The returned slice is a copy; the entries are shared.
func (r *Registry) Tests() []*TestEntry { return slices.Clone(r.entries) }

// Len returns the number of currently retained entries.
func (r *Registry) Len() int { return len(r.entries) }

// retain keeps the entries for which given predicate is true.
func (r *Registry) retain(keep func(*TestEntry) bool) {
	r.mutable()
	kept := r.entries[:0]
	for _, e := range r.entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = kept
}

// Filter removes every entry whose "suite::test" identity doesn't
// contain given pattern.  Matching is case-sensitive without any
// globbing.
func (r *Registry) Filter(pattern string) {
	r.retain(func(e *TestEntry) bool {
		return strings.Contains(e.ID(), pattern)
	})
}

// FilterByTag removes every entry which has none of given tags.  It is
// a no-op for no tags.
func (r *Registry) FilterByTag(include []string) {
	if len(include) == 0 {
		return
	}
	r.retain(func(e *TestEntry) bool {
		return e.Metadata.HasAnyTag(include)
	})
}

// ExcludeByTag removes every entry which has any of given tags.  It is
// a no-op for no tags.
func (r *Registry) ExcludeByTag(exclude []string) {
	if len(exclude) == 0 {
		return
	}
	r.retain(func(e *TestEntry) bool {
		return !e.Metadata.HasAnyTag(exclude)
	})
}

// List prints each entry's bare "suite::test" identity on its own line.
// Test discovery tools rely on this format; it never shows tags.
func (r *Registry) List() {
	for _, e := range r.entries {
		fmt.Fprintln(r.out(), e.ID())
	}
}

// ListVerbose prints each entry's identity followed by its sorted tags
// in brackets, e.g. "S::A [alpha, beta]".  The brackets are omitted for
// an entry without tags.
func (r *Registry) ListVerbose() {
	for _, e := range r.entries {
		if len(e.Metadata.tags) == 0 {
			fmt.Fprintln(r.out(), e.ID())
			continue
		}
		fmt.Fprintf(r.out(), "%s [%s]\n",
			e.ID(), strings.Join(e.Metadata.tags, ", "))
	}
}

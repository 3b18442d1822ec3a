// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"golang.org/x/exp/slices"
)

// TestMetadata is the immutable identity of a registered test.
type TestMetadata struct {
	Suite string
	Test  string

	// tags is sorted and free of duplicates.
	tags []string
}

// ID returns the identity of a test used for filtering and listing,
// i.e. "suite::test".
func (m *TestMetadata) ID() string { return m.Suite + "::" + m.Test }

// HasTag returns true iff given tag is attached to the test.
func (m *TestMetadata) HasTag(tag string) bool {
	return slices.Contains(m.tags, tag)
}

// HasAnyTag returns true iff at least one of given tags is attached to
// the test.
func (m *TestMetadata) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if m.HasTag(t) {
			return true
		}
	}
	return false
}

// Tags returns a sorted copy of the test's tags.
func (m *TestMetadata) Tags() []string { return slices.Clone(m.tags) }

// TestEntry is a registered, runnable test.
type TestEntry struct {
	Metadata TestMetadata

	// Invoke runs the test to completion.  A failing test panics.
	Invoke func()
}

// ID returns the entry's "suite::test" identity.
func (e *TestEntry) ID() string { return e.Metadata.ID() }

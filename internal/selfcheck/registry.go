// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package selfcheck

import (
	"strings"

	"github.com/flul/flultest"
)

type registry struct{}

func noop() {}

func (s *registry) Duplicate_tags_are_warned_and_dropped() {
	reg, _, diag := quiet()
	e := reg.Add("S", "T", noop, "a", "a", "b")
	flultest.Expect(len(e.Metadata.Tags())).ToEqual(2)
	flultest.Expect(diag.String()).ToEqual(
		"[flul-test] warning: duplicate tag \"a\" on test S::T -- ignoring\n")
}

func (s *registry) Handles_survive_later_registrations() {
	reg, _, _ := quiet()
	first := reg.Add("S", "First", noop)
	for i := 0; i < 64; i++ {
		reg.Add("S", "Other", noop)
	}
	flultest.Expect(first.ID()).ToEqual("S::First")
}

func (s *registry) Filter_matches_substrings_of_the_identity() {
	reg, _, _ := quiet()
	reg.Add("Math", "Add", noop)
	reg.Add("Math", "Sub", noop)
	reg.Add("Str", "Addr", noop)
	reg.Filter("Add")
	flultest.ExpectDeep(ids(reg)).ToDeepEqual(
		[]string{"Math::Add", "Str::Addr"})
}

func (s *registry) Empty_tag_filters_are_identities() {
	reg, _, _ := quiet()
	reg.Add("S", "A", noop, "fast")
	reg.Add("S", "B", noop)
	reg.FilterByTag(nil)
	reg.ExcludeByTag(nil)
	flultest.ExpectOrdered(reg.Len()).ToEqual(2)
}

func (s *registry) Include_then_exclude_can_empty_the_registry() {
	reg, _, _ := quiet()
	reg.Add("S", "A", noop, "fast")
	reg.Add("S", "B", noop, "slow")
	reg.Add("S", "C", noop)
	reg.FilterByTag([]string{"fast", "slow"})
	flultest.ExpectOrdered(reg.Len()).ToEqual(2)
	reg.ExcludeByTag([]string{"fast", "slow"})
	flultest.ExpectOrdered(reg.Len()).ToEqual(0)
}

func (s *registry) Listing_never_shows_tags() {
	reg, out, _ := quiet()
	reg.Add("S", "A", noop, "fast")
	reg.List()
	flultest.Expect(out.String()).ToEqual("S::A\n")
	flultest.Expect(strings.Contains(out.String(), "[")).ToBeFalse()
}

func (s *registry) Verbose_listing_shows_sorted_tags() {
	reg, out, _ := quiet()
	reg.Add("S", "A", noop, "beta", "alpha")
	reg.Add("S", "B", noop)
	reg.ListVerbose()
	flultest.ExpectDeep(lines(out.String())).ToDeepEqual(
		[]string{"S::A [alpha, beta]", "S::B"})
}

func registerRegistry(r *flultest.Registry) {
	flultest.AddTests(r, "Registry", []flultest.Test[registry]{
		{Name: "Duplicate_tags_are_warned_and_dropped",
			Method: (*registry).Duplicate_tags_are_warned_and_dropped},
		{Name: "Handles_survive_later_registrations",
			Method: (*registry).Handles_survive_later_registrations},
		{Name: "Filter_matches_substrings_of_the_identity",
			Method: (*registry).Filter_matches_substrings_of_the_identity},
		{Name: "Empty_tag_filters_are_identities",
			Method: (*registry).Empty_tag_filters_are_identities},
		{Name: "Include_then_exclude_can_empty_the_registry",
			Method: (*registry).Include_then_exclude_can_empty_the_registry},
		{Name: "Listing_never_shows_tags",
			Method: (*registry).Listing_never_shows_tags,
			Tags:   []string{"listing"}},
		{Name: "Verbose_listing_shows_sorted_tags",
			Method: (*registry).Verbose_listing_shows_sorted_tags,
			Tags:   []string{"listing"}},
	}, "fast")
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// Expectation wraps an actual value and the location it was created at
// and provides chainable checks on that value, e.g.:
//
//	flultest.Expect(got).ToNotEqual("").ToEqual("42")
//
// A failing check panics with an *AssertionError which stops the chain
// and is reported by the runner.
type Expectation[T comparable] struct {
	actual T
	loc    Location
}

// Expect wraps given value for subsequent checks.
func Expect[T comparable](actual T) *Expectation[T] {
	return &Expectation[T]{actual: actual, loc: caller(2)}
}

// fail panics with an assertion error for the wrapped value.
func (e *Expectation[T]) fail(expected string) {
	panic(NewAssertionError(Stringify(e.actual), expected, e.loc))
}

// ToEqual fails iff the wrapped value is not equal to given value.
// Interface values whose dynamic type isn't comparable, e.g. slices
// wrapped in an any, are compared with cmp.Equal.
func (e *Expectation[T]) ToEqual(expected T) *Expectation[T] {
	if !e.equal(expected) {
		e.fail(Stringify(expected))
	}
	return e
}

// ToNotEqual fails iff the wrapped value is equal to given value.
func (e *Expectation[T]) ToNotEqual(unexpected T) *Expectation[T] {
	if e.equal(unexpected) {
		e.fail("not " + Stringify(unexpected))
	}
	return e
}

// equal compares the wrapped value with given value and fails if
// neither == nor cmp.Equal can compare them.
func (e *Expectation[T]) equal(other T) bool {
	if eq, ok := compare(func() bool { return e.actual == other }); ok {
		return eq
	}
	if eq, ok := compare(func() bool {
		return cmp.Equal(e.actual, other)
	}); ok {
		return eq
	}
	e.fail("comparable to " + Stringify(other))
	return false
}

// compare reports given comparison's result and false for ok if it
// panicked.
func compare(eq func() bool) (equal, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			equal, ok = false, false
		}
	}()
	return eq(), true
}

// ToBeTrue fails unless the wrapped value is of boolean kind and true.
// Named boolean types are accepted; any other kind fails, i.e. integers
// and pointers are not truth-tested.
func (e *Expectation[T]) ToBeTrue() *Expectation[T] {
	if b, ok := asBool(e.actual); !ok || !b {
		e.fail("true")
	}
	return e
}

// ToBeFalse fails unless the wrapped value is of boolean kind and false.
// A zero integer or a nil pointer fails like any other non-boolean.
func (e *Expectation[T]) ToBeFalse() *Expectation[T] {
	if b, ok := asBool(e.actual); !ok || b {
		e.fail("false")
	}
	return e
}

func asBool(v any) (value, ok bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// Ordered provides the checks of an Expectation for totally ordered
// values plus bound checks.
type Ordered[T constraints.Ordered] struct {
	actual T
	loc    Location
}

// ExpectOrdered wraps given ordered value for subsequent checks, e.g.:
//
//	flultest.ExpectOrdered(len(ss)).ToBeGreaterThan(0).ToBeLessThan(3)
func ExpectOrdered[T constraints.Ordered](actual T) *Ordered[T] {
	return &Ordered[T]{actual: actual, loc: caller(2)}
}

func (o *Ordered[T]) fail(expected string) {
	panic(NewAssertionError(Stringify(o.actual), expected, o.loc))
}

// ToEqual fails iff the wrapped value is not equal to given value.
func (o *Ordered[T]) ToEqual(expected T) *Ordered[T] {
	if o.actual != expected {
		o.fail(Stringify(expected))
	}
	return o
}

// ToNotEqual fails iff the wrapped value is equal to given value.
func (o *Ordered[T]) ToNotEqual(unexpected T) *Ordered[T] {
	if o.actual == unexpected {
		o.fail("not " + Stringify(unexpected))
	}
	return o
}

// ToBeGreaterThan fails iff the wrapped value is less than or equal to
// given bound.
func (o *Ordered[T]) ToBeGreaterThan(bound T) *Ordered[T] {
	if o.actual <= bound {
		o.fail("greater than " + Stringify(bound))
	}
	return o
}

// ToBeLessThan fails iff the wrapped value is greater than or equal to
// given bound.
func (o *Ordered[T]) ToBeLessThan(bound T) *Ordered[T] {
	if o.actual >= bound {
		o.fail("less than " + Stringify(bound))
	}
	return o
}

// Deep provides structural equality checks for values of any type,
// e.g. slices, maps or structs holding them.  Equality is decided by
// go-cmp.
type Deep[T any] struct {
	actual T
	loc    Location
}

// ExpectDeep wraps given value for subsequent structural checks.
func ExpectDeep[T any](actual T) *Deep[T] {
	return &Deep[T]{actual: actual, loc: caller(2)}
}

// ToDeepEqual fails with a diff iff the wrapped value is not
// structurally equal to given value.  Given options are passed on to
// cmp.Diff, e.g. cmpopts.EquateEmpty().
func (d *Deep[T]) ToDeepEqual(expected T, opts ...cmp.Option) *Deep[T] {
	if diff := cmp.Diff(expected, d.actual, opts...); diff != "" {
		panic(newAssertionError(
			Stringify(d.actual), Stringify(expected), diff, d.loc))
	}
	return d
}

// ToNotDeepEqual fails iff the wrapped value is structurally equal to
// given value.
func (d *Deep[T]) ToNotDeepEqual(
	unexpected T, opts ...cmp.Option,
) *Deep[T] {
	if cmp.Equal(unexpected, d.actual, opts...) {
		panic(NewAssertionError(Stringify(d.actual),
			"not "+Stringify(unexpected), d.loc))
	}
	return d
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"errors"
	"reflect"
)

// Callable wraps a function without arguments and the location it was
// created at to check its panic behavior:
//
//	var perr *ParseError
//	flultest.ExpectCallable(func() { mustParse("{") }).ToThrow(&perr)
type Callable struct {
	fn  func()
	loc Location
}

// ExpectCallable wraps given function for subsequent checks.
func ExpectCallable(fn func()) *Callable {
	return &Callable{fn: fn, loc: caller(2)}
}

const (
	noException        = "no exception"
	differentException = "different exception"
	unknownException   = "unknown exception"
	unknownType        = "<unknown type>"
)

// ToThrow fails unless wrapped function panics with a value of the type
// given target points to.  target must be a non-nil pointer, just like
// the target of errors.As.  The panic value is stored in *target if it
// matches.  An error panic value also matches if an error of its chain
// matches in the sense of errors.As.
func (c *Callable) ToThrow(target any) {
	name := typeName(target)
	recovered, panicked := guard(c.fn)
	if !panicked {
		panic(NewAssertionError(noException, name, c.loc))
	}
	if !assign(recovered, target) {
		panic(NewAssertionError(differentException, name, c.loc))
	}
}

// ToNotThrow fails if wrapped function panics.
func (c *Callable) ToNotThrow() {
	recovered, panicked := guard(c.fn)
	if !panicked {
		return
	}
	if err, ok := recovered.(error); ok {
		panic(NewAssertionError(err.Error(), noException, c.loc))
	}
	panic(NewAssertionError(unknownException, noException, c.loc))
}

// typeName returns the name of the type given pointer points to or
// unknownType if target is not a non-nil pointer.
func typeName(target any) string {
	tt := reflect.TypeOf(target)
	if tt == nil || tt.Kind() != reflect.Pointer {
		return unknownType
	}
	if name := tt.Elem().String(); name != "" {
		return name
	}
	return unknownType
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// assign stores given panic value in given target if it matches
// target's element type and reports if it did so.
func assign(recovered, target any) bool {
	tv := reflect.ValueOf(target)
	if !tv.IsValid() || tv.Kind() != reflect.Pointer || tv.IsNil() {
		return false
	}
	elem := tv.Type().Elem()
	if recovered != nil {
		if rt := reflect.TypeOf(recovered); rt.AssignableTo(elem) {
			tv.Elem().Set(reflect.ValueOf(recovered))
			return true
		}
	}
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	// errors.As panics for targets which are neither an interface nor
	// implement error.
	if elem.Kind() != reflect.Interface && !elem.Implements(errorType) {
		return false
	}
	return errors.As(err, target)
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

import (
	"fmt"
	"reflect"
	"strings"
)

// NonPrintable is the textual representation of a value which can't be
// formatted.
const NonPrintable = "<non-printable>"

// Stringify returns the textual representation of given value.  It
// tries in this order
//   - structured formatting: a string is itself, a fmt.Formatter is
//     formatted with %v, an error returns its message and a
//     fmt.Stringer its String value,
//   - generic formatting with %v for any kind fmt prints meaningfully,
//   - NonPrintable for anything else.
//
// A formatting tier which panics falls through to the next one, i.e.
// Stringify never panics.  It is used on failure reporting paths which
// must not fail themselves.
func Stringify(v any) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := try(func() (string, bool) { return structured(v) }); ok {
		return s
	}
	if s, ok := try(func() (string, bool) { return generic(v) }); ok {
		return s
	}
	return NonPrintable
}

// try calls given formatter reporting a panic as a failed formatting.
func try(format func() (string, bool)) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()
	return format()
}

func structured(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case fmt.Formatter:
		return fmt.Sprintf("%v", v), true
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

func generic(v any) (string, bool) {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Invalid, reflect.Func, reflect.Chan,
		reflect.UnsafePointer:
		return "", false
	}
	s := fmt.Sprintf("%v", v)
	if strings.HasPrefix(s, "%!v(PANIC=") {
		return "", false
	}
	return s, true
}

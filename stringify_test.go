// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest_test

import (
	"errors"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/flul/flultest"
)

type point struct{ X, Y int }

type named string

func (n named) String() string { return "named:" + string(n) }

type brokenStringer struct{}

func (brokenStringer) String() string { panic("broken") }

type brokenPtr struct{ p *point }

func (b *brokenPtr) String() string { return b.p.String() }

func (p *point) String() string { return "p" + string(rune('0'+p.X)) }

func Test_stringify_renders_printable_values(t *testing.T) {
	for name, c := range map[string]struct {
		value any
		want  string
	}{
		"nil":      {nil, "<nil>"},
		"string":   {"abc", "abc"},
		"int":      {42, "42"},
		"float":    {3.5, "3.5"},
		"bool":     {true, "true"},
		"error":    {errors.New("boom"), "boom"},
		"stringer": {named("x"), "named:x"},
		"duration": {1500 * time.Millisecond, "1.5s"},
		"struct":   {point{1, 2}, "{1 2}"},
		"slice":    {[]int{1, 2}, "[1 2]"},
		"map":      {map[string]int{"a": 1}, "map[a:1]"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, flultest.Stringify(c.value))
		})
	}
}

func Test_stringify_falls_back_to_non_printable(t *testing.T) {
	x := 0
	for name, value := range map[string]any{
		"func":           func() {},
		"chan":           make(chan int),
		"unsafe pointer": unsafe.Pointer(&x),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, flultest.NonPrintable, flultest.Stringify(value))
		})
	}
}

func Test_stringify_never_panics(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, flultest.NonPrintable,
			flultest.Stringify(brokenStringer{}))
	})
	assert.NotPanics(t, func() {
		assert.Equal(t, flultest.NonPrintable,
			flultest.Stringify(&brokenPtr{}))
	})
}

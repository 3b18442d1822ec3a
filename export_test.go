// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package flultest

// Invoke exposes the classification of a test function's end.
func Invoke(fn func()) Outcome { return invoke(fn) }

// Locked reports if given registry is locked by a running runner.
func Locked(r *Registry) bool { return r.running > 0 }

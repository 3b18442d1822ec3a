// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Flulselftest runs flultest's self-checks, i.e. flultest's assertions,
registry, runner and fixtures checked with flultest itself:

	flulselftest --list-verbose
	flulselftest --tag fast --report-table
	flulselftest --exclude-tag listing --report-json out/run.json

See package cli for all flags.
*/
package main

import (
	"os"

	"github.com/flul/flultest"
	"github.com/flul/flultest/internal/selfcheck"
	"github.com/flul/flultest/pkg/cli"
)

func main() {
	reg := &flultest.Registry{}
	selfcheck.Register(reg)
	os.Exit(cli.Run(os.Args, reg))
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli turns the command line of a test binary into registry
// filter calls and either lists the remaining tests or runs them:
//
//	func main() {
//	    reg := &flultest.Registry{}
//	    stack_test.Register(reg)
//	    os.Exit(cli.Run(os.Args, reg))
//	}
//
// Filters are applied in the order name filter, include tags, exclude
// tags.  Malformed usage is reported together with the usage on the
// error stream and exits with ExitUsage before any test runs.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flul/flultest"
	"github.com/flul/flultest/pkg/config"
	"github.com/flul/flultest/pkg/report"
)

// Exit codes of Run.
const (
	ExitOK     = flultest.ExitPassed
	ExitFailed = flultest.ExitFailed
	ExitUsage  = 1
)

// UsageError reports malformed usage of the command line or an invalid
// configuration.
type UsageError struct {
	Cause error
}

func (e *UsageError) Error() string { return e.Cause.Error() }

func (e *UsageError) Unwrap() error { return e.Cause }

// App dispatches a test binary's command line.  The zero value writes
// to os.Stdout and os.Stderr and reads os.Getenv.
type App struct {
	Registry *flultest.Registry

	// Out receives listings, help and test results.
	Out io.Writer

	// Err receives usage errors and log records.
	Err io.Writer

	// Getenv looks up environment variables.
	Getenv func(string) string
}

// Run dispatches given command line, i.e. os.Args including the
// program name, for given registry.
func Run(args []string, reg *flultest.Registry) int {
	return (&App{Registry: reg}).Run(args)
}

type options struct {
	list, listVerbose bool
	filter            string
	tags, excludeTags []string
	config            string
	reportJSON        string
	reportTable       bool
	metricsFile       string
	logLevel          string
}

// Run dispatches given command line and returns the process exit code.
func (a *App) Run(args []string) int {
	name := "flultest"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}
	if len(args) == 0 {
		// cobra falls back to os.Args for nil arguments
		args = []string{}
	}
	code := ExitOK
	opts := &options{}
	cmd := a.command(name, opts, &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(a.errw(), "error: %v\n", err)
		fmt.Fprint(a.errw(), cmd.UsageString())
		return ExitUsage
	}
	return code
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) errw() io.Writer {
	if a.Err == nil {
		return os.Stderr
	}
	return a.Err
}

func (a *App) getenv(key string) string {
	if a.Getenv == nil {
		return os.Getenv(key)
	}
	return a.Getenv(key)
}

func (a *App) command(name string, o *options, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags]",
		Short: "Run the registered tests",
		Long: "Run the registered tests or list them.  Filters apply " +
			"in the order --filter, --tag, --exclude-tag.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(o)
			if err != nil {
				return &UsageError{Cause: err}
			}
			merge(cmd, o, cfg)
			if err := config.CheckLevel(o.logLevel); err != nil {
				return &UsageError{Cause: err}
			}
			*code = a.dispatch(o)
			return nil
		},
	}
	cmd.SetOut(a.out())
	cmd.SetErr(a.errw())
	cmd.CompletionOptions.DisableDefaultCmd = true

	ff := cmd.Flags()
	ff.BoolVar(&o.list, "list", false,
		"print the selected tests as suite::test lines and exit")
	ff.BoolVar(&o.listVerbose, "list-verbose", false,
		"print the selected tests with their tags and exit")
	ff.StringVar(&o.filter, "filter", "",
		"select tests whose suite::test contains `pattern`")
	ff.StringArrayVar(&o.tags, "tag", nil,
		"select tests having `tag` (repeatable)")
	ff.StringArrayVar(&o.excludeTags, "exclude-tag", nil,
		"deselect tests having `tag` (repeatable)")
	ff.StringVar(&o.config, "config", "",
		"read defaults from YAML `file` (env "+config.EnvVar+")")
	ff.StringVar(&o.reportJSON, "report-json", "",
		"write a JSON report to `file`")
	ff.BoolVar(&o.reportTable, "report-table", false,
		"print a summary table after the run")
	ff.StringVar(&o.metricsFile, "metrics-file", "",
		"write prometheus metrics to `file`")
	ff.StringVar(&o.logLevel, "log-level", "",
		"log `level`: debug, info, warn or error")
	ff.SortFlags = false
	return cmd
}

// loadConfig loads the configuration named by the --config flag or the
// environment; it returns the zero configuration if neither is given.
func (a *App) loadConfig(o *options) (*config.Config, error) {
	path := o.config
	if path == "" {
		path = a.getenv(config.EnvVar)
	}
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge fills the options which were not set on the command line from
// given configuration.
func merge(cmd *cobra.Command, o *options, cfg *config.Config) {
	ff := cmd.Flags()
	if !ff.Changed("filter") {
		o.filter = cfg.Filter
	}
	if !ff.Changed("tag") {
		o.tags = cfg.Tags
	}
	if !ff.Changed("exclude-tag") {
		o.excludeTags = cfg.ExcludeTags
	}
	if !ff.Changed("log-level") {
		o.logLevel = cfg.LogLevel
	}
	if !ff.Changed("report-json") {
		o.reportJSON = cfg.Report.JSON
	}
	if !ff.Changed("report-table") {
		o.reportTable = cfg.Report.Table
	}
	if !ff.Changed("metrics-file") {
		o.metricsFile = cfg.Report.Metrics
	}
}

// dispatch applies the filters and lists or runs the remaining tests.
func (a *App) dispatch(o *options) int {
	reg := a.Registry
	logger := slog.New(slog.NewTextHandler(a.errw(),
		&slog.HandlerOptions{Level: config.ParseLevel(o.logLevel)}))
	if reg.Logger == nil {
		reg.Logger = logger
	}
	if reg.Out == nil {
		reg.Out = a.out()
	}

	if o.filter != "" {
		reg.Filter(o.filter)
	}
	reg.FilterByTag(o.tags)
	reg.ExcludeByTag(o.excludeTags)
	logger.Debug("tests selected", "count", reg.Len(),
		"filter", o.filter, "tags", o.tags, "exclude_tags", o.excludeTags)

	if o.list {
		reg.List()
		return ExitOK
	}
	if o.listVerbose {
		reg.ListVerbose()
		return ExitOK
	}

	runner := flultest.NewRunner(reg)
	runner.Out = a.out()
	runner.Logger = logger
	runner.RunID = report.NewRunID()
	runner.Reporters = reporters(a.out(), o)
	return runner.RunAll()
}

func reporters(out io.Writer, o *options) []flultest.Reporter {
	var rr []flultest.Reporter
	if o.reportJSON != "" {
		rr = append(rr, &report.JSON{Path: o.reportJSON})
	}
	if o.reportTable {
		rr = append(rr, &report.Table{Out: out})
	}
	if o.metricsFile != "" {
		rr = append(rr, report.NewMetrics(o.metricsFile))
	}
	return rr
}

// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command bindguard reports Python and Starlark variables read before they are
// bound on every path.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fillmore-labs.com/bindguard/analyzer"
	"fillmore-labs.com/bindguard/internal/logflags"
	"fillmore-labs.com/bindguard/internal/report"
	"fillmore-labs.com/bindguard/internal/run"
	"fillmore-labs.com/bindguard/internal/settings"
)

// Exit codes.
const (
	exitOK          = 0
	exitDiagnostics = 1
	exitError       = 2
)

var (
	// ErrDiagnostics is returned when diagnostics were reported.
	ErrDiagnostics = errors.New("diagnostics reported")

	errColor = errors.New("invalid color mode")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// execute runs the command line and returns the exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, ErrDiagnostics):
		return exitDiagnostics

	default:
		fmt.Fprintln(stderr, "bindguard:", err) // ignore error

		return exitError
	}
}

type cli struct {
	configPath string
	format     string
	color      string
	jobs       int
	log        bool
	logOutput  string

	// analyzerFlags holds the analyzer flags, replayed over the configuration file settings.
	analyzerFlags *pflag.FlagSet

	stdout, stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	rootCommand := &cobra.Command{
		Use:   "bindguard [flags] paths...",
		Short: "Report variables read before they are assigned on every path.",
		Long: `bindguard checks Python and Starlark files for reads of variables that are not
bound on every control flow path leading to them, and for reads of variables
bound nowhere.

Directories are searched for *.py, *.pyi, *.star, *.bzl, BUILD and WORKSPACE files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}

	flags := rootCommand.Flags()
	flags.StringVar(&c.configPath, "config", "", "configuration file (default "+settings.DefaultFile+" if present)")
	flags.StringVar(&c.format, "format", "text", "output format: text or json")
	flags.StringVar(&c.color, "color", "auto", "colorize output: auto, always or never")
	flags.IntVarP(&c.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files analyzed in parallel")
	flags.BoolVar(&c.log, "log", false, "enable debug logging")
	flags.StringVar(&c.logOutput, "log-output", "", "comma-separated layers to log: pipeline, parser, settings")

	c.analyzerFlags = pflag.NewFlagSet(analyzer.Name, pflag.ContinueOnError)
	analyzer.New().RegisterFlags(c.analyzerFlags)
	flags.AddFlagSet(c.analyzerFlags)

	return rootCommand
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	if c.log || c.logOutput != "" {
		if err := logflags.Setup(c.log, c.logOutput, c.stderr); err != nil {
			return err
		}
	}

	format, err := report.ParseFormat(c.format)
	if err != nil {
		return err
	}

	out, color, err := c.output()
	if err != nil {
		return err
	}

	a, err := c.analyzer()
	if err != nil {
		return err
	}

	results, err := run.Files(cmd.Context(), args, c.jobs, a.Analyze)
	if err != nil {
		return err
	}

	p := report.NewPrinter(out, format, color)

	var failed, reported int

	for _, r := range results {
		if r.Err != nil {
			failed++

			if err := p.PrintError(r.Path, r.Err); err != nil {
				return err
			}

			continue
		}

		reported += len(r.Diagnostics)

		if err := p.Print(r.File, r.Diagnostics); err != nil {
			return err
		}
	}

	switch {
	case failed > 0:
		return fmt.Errorf("%d of %d files could not be analyzed", failed, len(results))

	case reported > 0:
		return fmt.Errorf("%d %w", reported, ErrDiagnostics)

	default:
		return nil
	}
}

// analyzer creates the analyzer from the configuration file, overridden by
// the analyzer flags set on the command line.
func (c *cli) analyzer() (*analyzer.Analyzer, error) {
	s, err := settings.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	opts := s.Options()
	logflags.SettingsLogger().Debugf("configuration options %v", analyzer.Options(opts).LogValue())

	a := analyzer.New(opts...)

	flags := pflag.NewFlagSet(analyzer.Name, pflag.ContinueOnError)
	a.RegisterFlags(flags)

	c.analyzerFlags.VisitAll(func(f *pflag.Flag) {
		if f.Changed && err == nil {
			err = flags.Set(f.Name, f.Value.String())
		}
	})

	return a, err
}

// output returns the writer for results and whether it is colorized.
func (c *cli) output() (io.Writer, bool, error) {
	f, isFile := c.stdout.(*os.File)

	var color bool

	switch c.color {
	case "always":
		color = true

	case "never":

	case "auto":
		color = isFile && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))

	default:
		return nil, false, fmt.Errorf("%w: %q", errColor, c.color)
	}

	if color && isFile {
		return colorable.NewColorable(f), true, nil
	}

	return c.stdout, color, nil
}

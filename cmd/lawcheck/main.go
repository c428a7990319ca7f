// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command lawcheck checks the algebraic laws of the built-in instances against
// generated samples and reports every violation.
//
// Usage:
//
//	lawcheck run [--config lawcheck.yaml] [--samples N] [--seed S] [--verbose]
//	lawcheck classes [--instances]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wdamron/prelude"
	"github.com/wdamron/prelude/instances"
	"github.com/wdamron/prelude/laws"
	"github.com/wdamron/prelude/typeclass"
)

var errViolations = errors.New("laws violated")

type options struct {
	config  string
	samples int
	seed    uint64
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "lawcheck",
		Short:         "Check the algebraic laws of the built-in capability instances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every law that holds")
	cmd.AddCommand(newRunCmd(opts), newClassesCmd())
	return cmd
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [subject...]",
		Short: "Run the law catalogue; subjects filter by name prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return runCatalog(cmd.OutOrStdout(), laws.NewChecker(cfg, logger), args)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML config file")
	cmd.Flags().IntVar(&opts.samples, "samples", laws.DefaultConfig().Samples, "sample draws per law")
	cmd.Flags().Uint64Var(&opts.seed, "seed", laws.DefaultConfig().Seed, "sampling seed")
	return cmd
}

// loadConfig reads --config, if any, then applies flags set explicitly on the command line.
func loadConfig(cmd *cobra.Command, opts *options) (laws.Config, error) {
	cfg := laws.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = laws.LoadConfig(opts.config); err != nil {
			return laws.Config{}, err
		}
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = opts.samples
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = opts.seed
	}
	return cfg, cfg.Validate()
}

func runCatalog(w io.Writer, checker *laws.Checker, filters []string) error {
	var reports []laws.Report
	for _, s := range catalog() {
		if !matches(s.name, filters) {
			continue
		}
		reports = append(reports, s.run(checker))
	}
	if len(reports) == 0 {
		return fmt.Errorf("no subject matches %q", strings.Join(filters, ", "))
	}
	if err := writeReports(w, checker.Config(), reports); err != nil {
		return err
	}
	for _, r := range reports {
		if !r.Passed() {
			return errViolations
		}
	}
	return nil
}

func matches(name string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.HasPrefix(name, f) {
			return true
		}
	}
	return false
}

func newClassesCmd() *cobra.Command {
	var withInstances bool
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the capability classes, super-classes first",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, c := range prelude.Classes() {
				supers := c.Supers()
				if len(supers) == 0 {
					fmt.Fprintln(w, c.Name)
					continue
				}
				names := make([]string, len(supers))
				for i, s := range supers {
					names[i] = s.Name
				}
				fmt.Fprintf(w, "%s refines %s\n", c.Name, strings.Join(names, ", "))
			}
			if !withInstances {
				return nil
			}
			fmt.Fprintln(w)
			defaultRegistry().Range(func(inst typeclass.Instance) bool {
				fmt.Fprintf(w, "%s %s\n", inst.Class.Name, inst.Key)
				return true
			})
			return nil
		},
	}
	cmd.Flags().BoolVar(&withInstances, "instances", false, "also list the registered instances")
	return cmd
}

// defaultRegistry holds the standard instances and the int-to-int slice and option applicatives.
func defaultRegistry() typeclass.Registry {
	r := prelude.Standard()
	r = instances.RegisterSlice[int, int](r)
	r = instances.RegisterOption[int, int](r)
	return r
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lawcheck:", err)
		os.Exit(1)
	}
}

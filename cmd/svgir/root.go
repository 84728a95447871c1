// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"

	"cogentcore.org/svgir/base/logx"
	"cogentcore.org/svgir/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands, and the
// configuration loaded from them.
type options struct {
	configFile string
	verbose    bool
	noColor    bool

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "svgir",
		Short: "Resolve SVG documents into a renderable intermediate representation",
		Long: `svgir loads SVG documents, resolves their styles, paints, gradients,
clip paths and masks, and prints the result with the problems found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "TOML configuration file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newResolveCommand(opts), newIDsCommand(opts), newConfigCommand(opts))
	return root
}

// setup loads the configuration and installs the logger.
func (o *options) setup(cmd *cobra.Command) error {
	o.cfg = config.Default()
	if o.configFile != "" {
		cfg, err := config.Open(o.configFile)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	logx.UserLevel = logx.ParseLevel(o.cfg.LogLevel)
	if o.verbose {
		logx.UserLevel = slog.LevelDebug
	}
	logx.SetDefault(cmd.ErrOrStderr())
	return nil
}

// output returns a terminal output for w, which is colored
// unless disabled or w is not a terminal.
func (o *options) output(w io.Writer) *termenv.Output {
	if o.noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

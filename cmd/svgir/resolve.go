// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cogentcore.org/svgir/base/errors"
	"cogentcore.org/svgir/config"
	"cogentcore.org/svgir/svg"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newResolveCommand(opts *options) *cobra.Command {
	var (
		format string
		strict bool
		quiet  bool
	)
	cmd := &cobra.Command{
		Use:   "resolve <file.svg>",
		Short: "Print the resolved tree of an SVG document",
		Long: `Print the resolved tree of an SVG document, with the effective style
of every node, and then the list of problems found in it.

Use - to read the document from the standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := load(cmd.Context(), cmd.InOrStdin(), args[0], opts.cfg)
			if err != nil {
				return err
			}
			if !quiet {
				if err := writeSnapshot(cmd.OutOrStdout(), res.Document.Snapshot(), format); err != nil {
					return err
				}
			}
			reportErrors(opts.output(cmd.ErrOrStderr()), res.Errors)
			if strict && !res.OK {
				return fmt.Errorf("%s: %d problems found", args[0], len(res.Errors))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any problem is found")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the problems")
	return cmd
}

// load loads the named SVG file, or stdin for "-".
func load(ctx context.Context, stdin io.Reader, filename string, cfg *config.Config) (*svg.Result, error) {
	if filename == "-" {
		return svg.LoadContext(ctx, stdin, cfg)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := svg.LoadContext(ctx, bufio.NewReader(f), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return res, nil
}

// writeSnapshot writes the snapshot in the given format.
func writeSnapshot(w io.Writer, s *svg.Snapshot, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return fmt.Errorf("unknown format %q: must be yaml or json", format)
}

// reportErrors writes one line per error, labeled by its kind.
func reportErrors(out *termenv.Output, errs []error) {
	for _, err := range errs {
		label, color := classify(err)
		fmt.Fprintf(out, "%s %v\n", out.String(label).Foreground(out.Color(color)).Bold(), err)
	}
}

// classify returns the label and ANSI color of an error.
func classify(err error) (label, color string) {
	var (
		circ *svg.CircularReferenceError
		unr  *svg.UnresolvedReferenceError
		dup  *svg.DuplicateIDError
		perr *svg.ParseError
	)
	switch {
	case errors.As(err, &circ):
		return "circular", "1"
	case errors.As(err, &unr):
		return "unresolved", "3"
	case errors.As(err, &dup):
		return "duplicate", "5"
	case errors.As(err, &perr):
		return "parse", "6"
	}
	return "error", "1"
}

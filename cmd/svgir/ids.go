// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newIDsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ids <file.svg>",
		Short: "List the ids defined in an SVG document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := load(cmd.Context(), cmd.InOrStdin(), args[0], opts.cfg)
			if err != nil {
				return err
			}
			d := res.Document
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, id := range d.IDs() {
				fmt.Fprintf(tw, "%s\t%s\n", id, d.LookupNode(id).Type)
			}
			for id, g := range d.Gradients.All() {
				fmt.Fprintf(tw, "%s\t%sGradient\n", id, g.Kind)
			}
			return tw.Flush()
		},
	}
}

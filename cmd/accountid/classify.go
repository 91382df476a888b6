// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/nearkit/accountid/cmd/accountid/cli"
	"github.com/nearkit/accountid/lib/accountid"
)

func classifyCommand(stdout io.Writer) *cli.Command {
	var long bool

	flags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("classify", pflag.ContinueOnError)
		flagSet.BoolVarP(&long, "long", "l", false, "include parent and top-level columns")
		return flagSet
	}

	return &cli.Command{
		Name:    "classify",
		Summary: "Report the account type of each identifier",
		Description: `Classify each identifier as named, near-implicit, or eth-implicit.

With -l, also prints whether the account is top-level and its parent
account (or "-" for accounts without one).`,
		Usage: "accountid classify [-l] <id>...",
		Examples: []cli.Example{
			{
				Description: "Classify a named and an implicit account",
				Command:     "accountid classify app.alice.near 0xb794f5ea0ba39494ce839613fffba74279579268",
			},
		},
		Flags: flags,
		Run: func(args []string) error {
			if len(args) == 0 {
				return errors.New("classify requires at least one identifier")
			}
			return runClassify(stdout, args, long)
		},
	}
}

func runClassify(stdout io.Writer, ids []string, long bool) error {
	tw := tabwriter.NewWriter(stdout, 2, 0, 3, ' ', 0)
	defer tw.Flush()

	for _, raw := range ids {
		id, err := accountid.Parse(raw)
		if err != nil {
			return fmt.Errorf("classify %q: %w", raw, err)
		}
		if !long {
			fmt.Fprintf(tw, "%s\t%s\n", id, id.Type())
			continue
		}
		parentColumn := "-"
		if parent, ok := id.Parent(); ok {
			parentColumn = parent.String()
		}
		fmt.Fprintf(tw, "%s\t%s\ttop-level=%t\tparent=%s\n",
			id, id.Type(), id.IsTopLevel(), parentColumn)
	}
	return nil
}

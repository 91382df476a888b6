// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/nearkit/accountid/cmd/accountid/cli"
	"github.com/nearkit/accountid/lib/accountid"
)

func validateCommand(stdout io.Writer) *cli.Command {
	var quiet bool

	flags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
		flagSet.BoolVarP(&quiet, "quiet", "q", false, "suppress output, report via exit status only")
		return flagSet
	}

	return &cli.Command{
		Name:    "validate",
		Summary: "Check identifiers against the account ID grammar",
		Description: `Validate each identifier against the account ID grammar.

Prints one line per identifier: "ok" for valid IDs, or the validation
error with its character position. Exits non-zero when any identifier
is invalid.`,
		Usage: "accountid validate [-q] <id>...",
		Examples: []cli.Example{
			{
				Description: "Validate two identifiers",
				Command:     "accountid validate alice.near bob-near",
			},
			{
				Description: "Use in a shell condition",
				Command:     "accountid validate -q \"$candidate\" && deploy \"$candidate\"",
			},
		},
		Flags: flags,
		Run: func(args []string) error {
			if len(args) == 0 {
				return errors.New("validate requires at least one identifier")
			}
			return runValidate(stdout, args, quiet)
		},
	}
}

func runValidate(stdout io.Writer, ids []string, quiet bool) error {
	invalid := 0
	for _, id := range ids {
		err := accountid.Validate(id)
		if err != nil {
			invalid++
		}
		if quiet {
			continue
		}
		if err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", id, err)
		} else {
			fmt.Fprintf(stdout, "%s: ok\n", id)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d identifiers invalid", invalid, len(ids))
	}
	return nil
}

// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

// Command accountid validates, classifies, generates, and transcodes
// NEAR account identifiers from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/nearkit/accountid/cmd/accountid/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCommand().Execute(os.Args[1:])
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "accountid",
		Description: `Work with NEAR account identifiers.

Validates identifiers against the account ID grammar, classifies them
as named or implicit accounts, generates random well-formed IDs, and
converts between the text and length-prefixed binary wire forms.`,
		Subcommands: []*cli.Command{
			validateCommand(os.Stdout),
			classifyCommand(os.Stdout),
			generateCommand(os.Stdout),
			schemaCommand(os.Stdout),
			encodeCommand(os.Stdout),
			decodeCommand(os.Stdin, os.Stdout),
		},
	}
}

// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/nearkit/accountid/cmd/accountid/cli"
	"github.com/nearkit/accountid/lib/accountid"
)

func schemaCommand(stdout io.Writer) *cli.Command {
	var format string

	flags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("schema", pflag.ContinueOnError)
		flagSet.StringVarP(&format, "format", "f", "json", "output format: json or yaml")
		return flagSet
	}

	return &cli.Command{
		Name:    "schema",
		Summary: "Print the JSON Schema for account identifiers",
		Description: `Print the JSON Schema fragment describing the account ID text form.

The schema carries the grammar as a regular expression plus the length
bounds, suitable for embedding in API schemas that carry account IDs
as strings.`,
		Usage: "accountid schema [-f json|yaml]",
		Examples: []cli.Example{
			{
				Description: "Emit the schema as YAML",
				Command:     "accountid schema -f yaml",
			},
		},
		Flags: flags,
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("schema takes no positional arguments, got %q", args[0])
			}
			return runSchema(stdout, format)
		},
	}
}

func runSchema(stdout io.Writer, format string) error {
	schema := accountid.JSONSchema()

	switch format {
	case "json":
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(schema)
	case "yaml":
		data, err := yaml.Marshal(schema)
		if err != nil {
			return fmt.Errorf("marshal schema: %w", err)
		}
		_, err = stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

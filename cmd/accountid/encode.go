// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/nearkit/accountid/cmd/accountid/cli"
	"github.com/nearkit/accountid/lib/accountid"
	"github.com/nearkit/accountid/lib/codec"
)

func encodeCommand(stdout io.Writer) *cli.Command {
	var (
		hexOutput  bool
		cborOutput bool
	)

	flags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
		flagSet.BoolVarP(&hexOutput, "hex", "x", false, "write hex-encoded frames, one per line")
		flagSet.BoolVar(&cborOutput, "cbor", false, "emit CBOR text strings instead of length-prefixed frames")
		return flagSet
	}

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert identifiers to a binary wire form",
		Description: `Encode each identifier as a length-prefixed binary frame on stdout.

Frames are written back to back, matching the stream format that
"accountid decode" reads. With --cbor, identifiers are written as a
CBOR sequence of text strings instead. With -x, each frame is written
as a hex string on its own line instead of raw bytes.`,
		Usage: "accountid encode [--cbor] [-x] <id>...",
		Examples: []cli.Example{
			{
				Description: "Inspect a frame as hex",
				Command:     "accountid encode -x alice.near",
			},
			{
				Description: "Round-trip through the binary form",
				Command:     "accountid encode alice.near bob.near | accountid decode",
			},
		},
		Flags: flags,
		Run: func(args []string) error {
			if len(args) == 0 {
				return errors.New("encode requires at least one identifier")
			}
			return runEncode(stdout, args, hexOutput, cborOutput)
		},
	}
}

func runEncode(stdout io.Writer, ids []string, hexOutput, cborOutput bool) error {
	for _, raw := range ids {
		id, err := accountid.Parse(raw)
		if err != nil {
			return fmt.Errorf("encode %q: %w", raw, err)
		}

		var frame []byte
		if cborOutput {
			frame, err = codec.Marshal(id)
		} else {
			frame, err = id.MarshalBinary()
		}
		if err != nil {
			return fmt.Errorf("encode %q: %w", raw, err)
		}

		if hexOutput {
			fmt.Fprintln(stdout, hex.EncodeToString(frame))
			continue
		}
		if _, err := stdout.Write(frame); err != nil {
			return fmt.Errorf("write frame for %q: %w", raw, err)
		}
	}
	return nil
}

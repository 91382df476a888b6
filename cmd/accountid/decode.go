// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nearkit/accountid/cmd/accountid/cli"
	"github.com/nearkit/accountid/lib/accountid"
	"github.com/nearkit/accountid/lib/codec"
)

func decodeCommand(stdin io.Reader, stdout io.Writer) *cli.Command {
	var (
		hexInput  bool
		cborInput bool
	)

	flags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
		flagSet.BoolVarP(&hexInput, "hex", "x", false, "decode hex-encoded frames given as arguments")
		flagSet.BoolVar(&cborInput, "cbor", false, "read a CBOR sequence of text strings instead of length-prefixed frames")
		return flagSet
	}

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert binary wire frames back to identifiers",
		Description: `Read length-prefixed binary frames from stdin and print one
identifier per line.

Every decoded identifier is re-validated against the grammar, so a
corrupt or hand-crafted frame is rejected rather than smuggled through.
With --cbor, stdin is read as a CBOR sequence of text strings. With -x,
frames are given as hex strings on the command line instead of raw
bytes on stdin.`,
		Usage: "accountid decode [--cbor] [-x <hex-frame>...]",
		Examples: []cli.Example{
			{
				Description: "Decode a stream of frames",
				Command:     "accountid encode alice.near bob.near | accountid decode",
			},
			{
				Description: "Decode a single hex frame",
				Command:     "accountid decode -x 0a000000616c6963652e6e656172",
			},
		},
		Flags: flags,
		Run: func(args []string) error {
			if hexInput {
				if len(args) == 0 {
					return errors.New("decode -x requires at least one hex frame")
				}
				return runDecodeHex(stdout, args, cborInput)
			}
			if len(args) > 0 {
				return fmt.Errorf("decode reads stdin and takes no positional arguments, got %q", args[0])
			}
			if cborInput {
				return runDecodeCBOR(stdin, stdout)
			}
			return runDecode(stdin, stdout)
		},
	}
}

func runDecode(stdin io.Reader, stdout io.Writer) error {
	for frame := 0; ; frame++ {
		id, err := accountid.ReadBinary(stdin)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if frame == 0 {
					return errors.New("empty input: expected binary frames on stdin")
				}
				return nil
			}
			return fmt.Errorf("decode frame %d: %w", frame, err)
		}
		fmt.Fprintln(stdout, id)
	}
}

func runDecodeCBOR(stdin io.Reader, stdout io.Writer) error {
	decoder := codec.NewDecoder(stdin)
	for frame := 0; ; frame++ {
		var id accountid.AccountID
		if err := decoder.Decode(&id); err != nil {
			if errors.Is(err, io.EOF) {
				if frame == 0 {
					return errors.New("empty input: expected a CBOR sequence on stdin")
				}
				return nil
			}
			return fmt.Errorf("decode CBOR item %d: %w", frame, err)
		}
		fmt.Fprintln(stdout, id)
	}
}

func runDecodeHex(stdout io.Writer, frames []string, cborInput bool) error {
	for _, arg := range frames {
		data, err := hex.DecodeString(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("decode hex %q: %w", arg, err)
		}
		var id accountid.AccountID
		if cborInput {
			err = codec.Unmarshal(data, &id)
		} else {
			err = id.UnmarshalBinary(data)
		}
		if err != nil {
			return fmt.Errorf("decode frame %q: %w", arg, err)
		}
		fmt.Fprintln(stdout, id)
	}
	return nil
}

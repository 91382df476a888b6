// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the lightweight command framework for the
// accountid tool. A [Command] carries its own help text, flags, and
// either a Run function or nested subcommands. The tree is assembled
// in main and dispatched through [Command.Execute].
package cli

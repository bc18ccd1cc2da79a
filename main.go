// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for bigcalc.
//
// Usage:
//
//	go run . [flags]
//	./bigcalc [flags]
//
// This launches the bigcalc CLI. See --help for options.
package main

import (
	"os"

	"github.com/liuyuxun641102/liuyuxun/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

// Package main is the entry point for the wire CLI.
//
// Usage:
//
//	wire [flags] <command> [subcommand] [args]
//
// Commands:
//
//	frame     - Length-prefixed framing (encode, decode, pack, unpack)
//	addr      - Socket address parsing and identity
//	response  - HTTP/1 response head and body encoding
package main

import (
	"fmt"
	"os"

	"github.com/brickingsoft/wire/cmd/wire/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the netgen CLI.
//
// netgen renders the network template of a deployment: one network and
// its regional subnetworks, with dependency links the deployment engine
// uses to order creation. It validates the deployment context and emits a
// resource manifest without calling any cloud API.
//
// Commands: generate, validate, version, completion.
//
// For detailed usage information, run:
//
//	netgen --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/netgen/cmd/netgen/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

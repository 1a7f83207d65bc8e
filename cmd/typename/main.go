// Package main provides the CLI entrypoint for typename.
//
// typename loads Go packages, converts their exported named types into the
// resolver's type model and prints, for each type:
//   - its canonical name (source or binary form)
//   - its binary name, used as a runtime lookup key
//   - the name of its generated adapter
//   - its application supertype chain
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Package main is the single-binary entrypoint for TableShare.
package main

import "github.com/tableshare/tableshare/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}

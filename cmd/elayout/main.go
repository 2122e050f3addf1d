// Package main provides the elayout CLI.
//
// Usage:
//
//	elayout check "<constraint>"...   Validate constraint strings
//	elayout render <file.toml>        Compute and print a layout
//	elayout version                   Print version information
//	elayout help                      Show help
//
// Examples:
//
//	elayout check "CENTER 0 0 0 0 PERCENT ABSOLUTE 70 100 2147483647 2147483647"
//	elayout render testdata/sidebar.toml
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `elayout - constraint-driven box layout engine

Usage:
  elayout <command> [args...]

Commands:
  check       Parse and validate constraint strings
  render      Load a layout definition from TOML, compute it, and print
              the resulting bounds with a scaled preview
  version     Print version information
  help        Show this help message

Examples:
  elayout check "CENTER 0 0 0 0 PERCENT ABSOLUTE 70 100 2147483647 2147483647"
  elayout render layout.toml

The constraint wire format is 11 space-separated tokens:
  ALIGN LEFT RIGHT TOP BOT WIDTHTYPE HEIGHTTYPE WIDTH HEIGHT MAXW MAXH
with ALIGN one of LEFT/RIGHT/CENTER and the type tokens one of
PERCENT/ABSOLUTE/SQUARE/RATIO/REST. 2147483647 means "no maximum".
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		os.Exit(runCheck(os.Args[2:]))
	case "render":
		if len(os.Args) != 3 {
			fmt.Fprintln(os.Stderr, "render takes exactly one TOML file")
			os.Exit(1)
		}
		if err := runRender(os.Stdout, os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("elayout %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		fmt.Print(usage)
		os.Exit(1)
	}
}

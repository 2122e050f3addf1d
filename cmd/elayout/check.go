package main

import (
	"fmt"
	"os"

	"github.com/emrgncr/elayout/pkg/layout"
)

// runCheck parses each argument as constraint text and reports the result.
// Returns a nonzero exit code if any argument fails to parse.
func runCheck(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "check takes one or more constraint strings")
		return 1
	}

	code := 0
	for _, text := range args {
		c, err := layout.Parse(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
			code = 1
			continue
		}
		fmt.Printf("ok: align=%s width=%s(%g) height=%s(%g)\n",
			c.Align, c.Width.Unit, c.Width.Amount, c.Height.Unit, c.Height.Amount)
	}
	return code
}

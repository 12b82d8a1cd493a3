// Command formcheck validates answers against a form definition offline,
// lints form definition files and mints author tokens for local testing.
//
// Exit codes: 0 = success, 1 = error, 2 = submission rejected.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
	case errors.Is(err, errRejected):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Command treetags is the CLI entry point: flag parsing and orchestration
// live here, the actual pipeline lives in internal/engine so it can be
// exercised without going through cobra, matching the teacher's own
// convention of keeping package main thin around a testable core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "treetags: %v\n", err)
		os.Exit(1)
	}
}

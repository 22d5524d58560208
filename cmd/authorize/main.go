// Command authorize performs the one-time OAuth consent flow that produces the token file used by
// the wishes service, and checks that the resulting credentials can read the target sheet.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

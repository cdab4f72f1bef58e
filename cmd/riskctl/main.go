// Command riskctl runs the scoring engine on local JSON input, for checking
// instrument submissions and feature vectors without a running server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

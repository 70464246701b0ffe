// Command signup serves the registration form over HTTP, runs it as a
// terminal prompt, and prints its rendered form or contract document.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

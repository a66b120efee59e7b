// Command hakim is the command-line front end for the kernel: it can
// check a single tactic script against a goal (prove), drive an
// interactive proof session from a terminal (repl), or run a directory
// of example scenarios concurrently (run-examples).
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

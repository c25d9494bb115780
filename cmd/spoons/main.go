// ABOUTME: Entry point for the spoons CLI.
// ABOUTME: Invokes the root Cobra command and always releases the store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs the root command. PersistentPostRunE is skipped when a
// command fails, so the store is closed here as well.
func execute() error {
	err := rootCmd.Execute()
	if cerr := closeGateway(); err == nil {
		err = cerr
	}
	return err
}

// Package main provides the registrar CLI: a thin presentation layer over
// the validated entity model, the SQLite store, and the query facade.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

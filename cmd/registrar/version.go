// Version command for the registrar CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/registrar/pkg/registrar"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the registrar version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("registrar", registrar.Version)
	},
}

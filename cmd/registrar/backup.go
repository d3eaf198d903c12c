package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup <target-path>",
	Short: "Write a consistent copy of the database to target-path",
	Long: `Backup produces a standalone database file at target-path while the
store stays open. The copy reflects a single consistent point in time.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.Backup(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("backup written to %s\n", args[0])
	},
}

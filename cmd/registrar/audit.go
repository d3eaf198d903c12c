package main

import (
	"time"

	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the store's mutation history",
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		entries, err := s.AuditLog()
		if err != nil {
			fail(err)
		}

		if flagJSON {
			if err := printJSON(entries); err != nil {
				fail(err)
			}
			return
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				e.CreatedAt.Format(time.RFC3339),
				e.Action,
				e.Details,
			})
		}
		renderTable([]string{"time", "action", "details"}, rows)
	},
}

// Export command: CSV snapshots per entity kind.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/registrar/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <students|instructors|courses>",
	Short: "Export records of one kind as CSV",
	Long: `Export writes all records of the given kind as CSV to --out (or stdout).
Related-id cells are joined with ";" so they split back unambiguously.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		w := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				fail(fmt.Errorf("create export file: %w", err))
			}
			defer f.Close()
			w = f
		}

		switch args[0] {
		case "students":
			err = export.Students(w, s)
		case "instructors":
			err = export.Instructors(w, s)
		case "courses":
			err = export.Courses(w, s)
		default:
			err = fmt.Errorf("unknown kind %q (valid: students, instructors, courses)", args[0])
		}
		if err != nil {
			fail(err)
		}

		if exportOut != "" {
			fmt.Printf("exported %s to %s\n", args[0], exportOut)
		}
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
}

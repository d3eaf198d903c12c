// Enroll and assign commands: the two relation mutations.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <student_id> <course_id>",
	Short: "Enroll a student in a course (idempotent)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.EnrollStudent(args[0], args[1]); err != nil {
			fail(err)
		}
		fmt.Printf("enrolled %s in %s\n", args[0], args[1])
	},
}

var assignCmd = &cobra.Command{
	Use:   "assign <course_id> <instructor_id>",
	Short: "Assign an instructor to a course (overwrites any prior assignment)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.AssignInstructor(args[0], args[1]); err != nil {
			fail(err)
		}
		fmt.Printf("assigned %s to %s\n", args[1], args[0])
	},
}

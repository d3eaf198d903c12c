// Course commands: add, update, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/registrar/pkg/model"
)

var (
	courseName       string
	courseInstructor string
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Manage course records",
}

var courseAddCmd = &cobra.Command{
	Use:   "add <course_id>",
	Short: "Add a course, optionally assigned to an instructor",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := model.NewCourse(args[0], courseName, courseInstructor)
		if err != nil {
			fail(err)
		}

		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.AddCourse(c); err != nil {
			fail(err)
		}
		fmt.Printf("added course %s\n", c.CourseID)
	},
}

var courseUpdateCmd = &cobra.Command{
	Use:   "update <course_id>",
	Short: "Replace a course's non-key fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := model.NewCourse(args[0], courseName, courseInstructor)
		if err != nil {
			fail(err)
		}

		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.UpdateCourse(c); err != nil {
			fail(err)
		}
		fmt.Printf("updated course %s\n", c.CourseID)
	},
}

var courseDeleteCmd = &cobra.Command{
	Use:   "delete <course_id>",
	Short: "Delete a course and its registrations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.DeleteCourse(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("deleted course %s\n", args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{courseAddCmd, courseUpdateCmd} {
		c.Flags().StringVar(&courseName, "name", "", "course title (required)")
		c.Flags().StringVar(&courseInstructor, "instructor", "", "teaching instructor id (optional)")
		c.MarkFlagRequired("name")
	}

	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseUpdateCmd)
	courseCmd.AddCommand(courseDeleteCmd)
}

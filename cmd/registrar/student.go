// Student commands: add, update, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/registrar/pkg/model"
)

var (
	studentName  string
	studentAge   string
	studentEmail string
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student records",
}

var studentAddCmd = &cobra.Command{
	Use:   "add <student_id>",
	Short: "Add a student",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st, err := buildStudent(args[0])
		if err != nil {
			fail(err)
		}

		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.AddStudent(st); err != nil {
			fail(err)
		}
		fmt.Printf("added student %s\n", st.StudentID)
	},
}

var studentUpdateCmd = &cobra.Command{
	Use:   "update <student_id>",
	Short: "Replace a student's non-key fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		st, err := buildStudent(args[0])
		if err != nil {
			fail(err)
		}

		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.UpdateStudent(st); err != nil {
			fail(err)
		}
		fmt.Printf("updated student %s\n", st.StudentID)
	},
}

var studentDeleteCmd = &cobra.Command{
	Use:   "delete <student_id>",
	Short: "Delete a student and their registrations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.DeleteStudent(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("deleted student %s\n", args[0])
	},
}

// buildStudent runs the entity constructor over the flag values; validation
// happens here, before the store is ever opened.
func buildStudent(id string) (model.Student, error) {
	age, err := parseAge(studentAge)
	if err != nil {
		return model.Student{}, err
	}
	return model.NewStudent(studentName, age, studentEmail, id)
}

func init() {
	for _, c := range []*cobra.Command{studentAddCmd, studentUpdateCmd} {
		c.Flags().StringVar(&studentName, "name", "", "full name (required)")
		c.Flags().StringVar(&studentAge, "age", "", "age in years, 0-120 (required)")
		c.Flags().StringVar(&studentEmail, "email", "", "contact email (required)")
		c.MarkFlagRequired("name")
		c.MarkFlagRequired("age")
		c.MarkFlagRequired("email")
	}

	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentUpdateCmd)
	studentCmd.AddCommand(studentDeleteCmd)
}

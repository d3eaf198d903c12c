// Instructor commands: add, update, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/registrar/pkg/model"
)

var (
	instructorName  string
	instructorAge   string
	instructorEmail string
)

var instructorCmd = &cobra.Command{
	Use:   "instructor",
	Short: "Manage instructor records",
}

var instructorAddCmd = &cobra.Command{
	Use:   "add <instructor_id>",
	Short: "Add an instructor",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ins, err := buildInstructor(args[0])
		if err != nil {
			fail(err)
		}

		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.AddInstructor(ins); err != nil {
			fail(err)
		}
		fmt.Printf("added instructor %s\n", ins.InstructorID)
	},
}

var instructorUpdateCmd = &cobra.Command{
	Use:   "update <instructor_id>",
	Short: "Replace an instructor's non-key fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ins, err := buildInstructor(args[0])
		if err != nil {
			fail(err)
		}

		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.UpdateInstructor(ins); err != nil {
			fail(err)
		}
		fmt.Printf("updated instructor %s\n", ins.InstructorID)
	},
}

var instructorDeleteCmd = &cobra.Command{
	Use:   "delete <instructor_id>",
	Short: "Delete an instructor, unassigning their courses",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		if err := s.DeleteInstructor(args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("deleted instructor %s\n", args[0])
	},
}

func buildInstructor(id string) (model.Instructor, error) {
	age, err := parseAge(instructorAge)
	if err != nil {
		return model.Instructor{}, err
	}
	return model.NewInstructor(instructorName, age, instructorEmail, id)
}

func init() {
	for _, c := range []*cobra.Command{instructorAddCmd, instructorUpdateCmd} {
		c.Flags().StringVar(&instructorName, "name", "", "full name (required)")
		c.Flags().StringVar(&instructorAge, "age", "", "age in years, 0-120 (required)")
		c.Flags().StringVar(&instructorEmail, "email", "", "contact email (required)")
		c.MarkFlagRequired("name")
		c.MarkFlagRequired("age")
		c.MarkFlagRequired("email")
	}

	instructorCmd.AddCommand(instructorAddCmd)
	instructorCmd.AddCommand(instructorUpdateCmd)
	instructorCmd.AddCommand(instructorDeleteCmd)
}

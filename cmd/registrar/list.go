// List command: filtered listings of students, instructors, or courses with
// their related ids joined in.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dukaforge/registrar/pkg/query"
)

var listSearch string

var listCmd = &cobra.Command{
	Use:   "list <students|instructors|courses>",
	Short: "List records of one kind, optionally filtered",
	Long: `List prints all records of the given kind together with their related
ids (enrolled courses, taught courses, or student roster). With --search the
listing keeps only rows whose fields contain the term, case-insensitively.

Example:
  registrar list students
  registrar list students --search may
  registrar list courses --json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openStore()
		if err != nil {
			fail(err)
		}
		defer s.Close()

		switch args[0] {
		case "students":
			rows, err := query.Students(s, listSearch)
			if err != nil {
				fail(err)
			}
			if flagJSON {
				if err := printJSON(rows); err != nil {
					fail(err)
				}
				return
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.StudentID, r.Name, strconv.Itoa(r.Age), r.Email, r.CoursesDisplay()})
			}
			renderTable([]string{"student_id", "name", "age", "email", "courses"}, out)

		case "instructors":
			rows, err := query.Instructors(s, listSearch)
			if err != nil {
				fail(err)
			}
			if flagJSON {
				if err := printJSON(rows); err != nil {
					fail(err)
				}
				return
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.InstructorID, r.Name, strconv.Itoa(r.Age), r.Email, r.CoursesDisplay()})
			}
			renderTable([]string{"instructor_id", "name", "age", "email", "courses"}, out)

		case "courses":
			rows, err := query.Courses(s, listSearch)
			if err != nil {
				fail(err)
			}
			if flagJSON {
				if err := printJSON(rows); err != nil {
					fail(err)
				}
				return
			}
			out := make([][]string, 0, len(rows))
			for _, r := range rows {
				out = append(out, []string{r.CourseID, r.CourseName, r.InstructorID, r.RosterDisplay()})
			}
			renderTable([]string{"course_id", "course_name", "instructor_id", "students"}, out)

		default:
			fail(fmt.Errorf("unknown kind %q (valid: students, instructors, courses)", args[0]))
		}
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive filter over all displayed fields")
}

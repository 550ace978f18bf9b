package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/cmd/globals"
	"github.com/abcu/advisor/internal/cmd/output"
	"github.com/abcu/advisor/internal/cmd/table"
	"github.com/abcu/advisor/pkg/catalog"
	"github.com/abcu/advisor/pkg/errors"
	"github.com/abcu/advisor/pkg/logging"
)

// showCmd looks up one course by its course number.
var showCmd = &cobra.Command{
	Use:     "show <course-id>",
	Short:   "Show one course and its prerequisites",
	Aliases: []string{"get", "find"},
	Args:    cobra.ExactArgs(1),
	Example: `  advisor show CSCI200             # Course details with prerequisite titles
  advisor show csci200,            # Input is cleaned up before lookup
  advisor show CSCI200 -o json     # Emit the course as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := catalog.NormalizeLookupID(args[0])
		if !ok {
			cmd.SilenceUsage = true
			return errors.NewValidationError("course-id", args[0],
				"course number must start with letters and end with digits")
		}
		if id != strings.ToUpper(strings.TrimSpace(args[0])) {
			logging.Info().Str("course", id).Msg("cleaned up course number before lookup")
		}

		cat, _, err := loadCatalog(nil)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		course, found := cat.Get(id)
		if !found {
			cmd.SilenceUsage = true
			return errors.NewNotFoundError("course", id)
		}

		globalFlags, err := globals.Parse(cmd)
		if err != nil {
			return err
		}

		// For table output, show the detail view
		switch output.Format(globalFlags.Output) {
		case output.FormatTable, output.FormatWide, "":
			printCourseDetails(course, cat)
			return nil
		}

		// For structured output, return the course
		formatter := output.NewFormatter(output.Format(globalFlags.Output))
		return formatter.Format(os.Stdout, course)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// printCourseDetails prints one course along with the titles of its
// prerequisites, calling out any that are missing from the catalog.
func printCourseDetails(course *catalog.Course, cat *catalog.Catalog) {
	fmt.Printf("%s, %s\n", course.ID, course.Title)

	if len(course.Prerequisites) == 0 {
		fmt.Println("Prerequisites: none")
		return
	}

	fmt.Println("Prerequisites:")
	formatter := output.NewFormatter(output.FormatTable)
	tableData := table.CourseDetailsToTableData(course, cat)
	_ = formatter.Format(os.Stdout, output.Data{
		Headers: tableData.Headers,
		Rows:    tableData.Rows,
	})
}

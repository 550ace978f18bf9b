package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/cmd/globals"
	"github.com/abcu/advisor/internal/cmd/output"
	"github.com/abcu/advisor/internal/cmd/table"
)

// listCmd prints the full course list in alphanumeric order.
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all courses in alphanumeric order",
	Aliases: []string{"ls"},
	Example: `  advisor list                     # Sorted course list
  advisor list -o wide             # Include prerequisite counts
  advisor list -o yaml             # Emit courses as YAML`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(nil)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		globalFlags, err := globals.Parse(cmd)
		if err != nil {
			return err
		}

		courses := sortedCourses(cat)
		formatter := output.NewFormatter(output.Format(globalFlags.Output))

		// Transform to output format
		var outputData any
		switch output.Format(globalFlags.Output) {
		case output.FormatTable, output.FormatWide, "":
			tableData := table.CoursesToTableData(courses, output.Format(globalFlags.Output) == output.FormatWide)
			outputData = output.Data{
				Headers: tableData.Headers,
				Rows:    tableData.Rows,
			}
		default:
			outputData = courses
		}

		if !globalFlags.Quiet {
			fmt.Fprintf(os.Stderr, "Found %d courses\n", len(courses))
		}

		return formatter.Format(os.Stdout, outputData)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

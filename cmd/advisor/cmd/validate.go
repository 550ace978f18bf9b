package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/cmd/globals"
	"github.com/abcu/advisor/internal/cmd/output"
	"github.com/abcu/advisor/internal/cmd/table"
	"github.com/abcu/advisor/pkg/catalog"
	"github.com/abcu/advisor/pkg/errors"
)

// validateCmd loads the course file and reports every data-quality
// problem, failing the command when no valid courses were produced.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a course file and report every problem",
	Long: `Validate loads the course file the same way load does and reports the
full result: counts, every parser warning, and the sorted list of
dangling prerequisite references. The command exits non-zero when the
file yields no valid courses.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  advisor validate                     # Validate the configured course file
  advisor validate data/courses.csv    # Validate a specific file
  advisor validate -o yaml             # Emit the report as YAML`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveCatalogPath(args)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		result := catalog.New().Load(path)

		globalFlags, err := globals.Parse(cmd)
		if err != nil {
			return err
		}

		formatter := output.NewFormatter(output.Format(globalFlags.Output))
		switch output.Format(globalFlags.Output) {
		case output.FormatTable, output.FormatWide, "":
			printValidationReport(result, formatter)
		default:
			if err := formatter.Format(os.Stdout, result); err != nil {
				return err
			}
		}

		if !result.OK {
			cmd.SilenceUsage = true
			return &errors.LoadError{Path: result.Path, Warnings: result.Warnings}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validationSummary is the property/value view of a load result; the
// slices are collapsed to counts so the tables below stay readable.
type validationSummary struct {
	OK                   bool   `json:"ok"`
	Courses              int    `json:"courses"`
	Warnings             int    `json:"warnings"`
	MissingPrerequisites int    `json:"missing_prerequisites"`
	Path                 string `json:"path"`
}

// printValidationReport renders the load result as a summary table,
// the warnings one per row, and the dangling prerequisite list.
func printValidationReport(result *catalog.LoadResult, formatter output.Formatter) {
	_ = formatter.Format(os.Stdout, validationSummary{
		OK:                   result.OK,
		Courses:              result.Courses,
		Warnings:             len(result.Warnings),
		MissingPrerequisites: len(result.MissingPrerequisites),
		Path:                 result.Path,
	})

	if len(result.Warnings) > 0 {
		fmt.Println()
		tableData := table.LoadWarningsToTableData(result.Warnings)
		_ = formatter.Format(os.Stdout, output.Data{
			Headers: tableData.Headers,
			Rows:    tableData.Rows,
		})
	}

	if len(result.MissingPrerequisites) > 0 {
		fmt.Println()
		for _, missing := range result.MissingPrerequisites {
			fmt.Printf("Prerequisite missing from catalog: %s\n", missing)
		}
	} else if result.OK {
		fmt.Println("All prerequisites found in the loaded catalog.")
	}
}

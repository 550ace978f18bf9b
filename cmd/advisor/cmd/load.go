package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abcu/advisor/internal/cmd/globals"
	"github.com/abcu/advisor/internal/cmd/output"
	"github.com/abcu/advisor/pkg/catalog"
	"github.com/abcu/advisor/pkg/errors"
)

// loadCmd loads the course file and reports the outcome.
var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load the course catalog and report the outcome",
	Long: `Load parses the course file, validates every line, and reports the
outcome: course count, every warning generated while parsing, and any
prerequisites that reference courses missing from the loaded catalog.

Malformed lines are skipped with a warning. The load fails only when
the file cannot be read or yields no valid courses at all.`,
	Args: cobra.MaximumNArgs(1),
	Example: `  advisor load                         # Load the configured course file
  advisor load data/courses.csv        # Load a specific file
  advisor load courses.csv -o json     # Emit the load report as JSON`,
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

		// Structured output gets the whole report verbatim.
		switch output.Format(globalFlags.Output) {
		case output.FormatJSON, output.FormatYAML:
			formatter := output.NewFormatter(output.Format(globalFlags.Output))
			if err := formatter.Format(os.Stdout, result); err != nil {
				return err
			}
			if !result.OK {
				cmd.SilenceUsage = true
				return &errors.LoadError{Path: result.Path, Warnings: result.Warnings}
			}
			return nil
		}

		reportLoadResult(result, globalFlags.Quiet)
		if !result.OK {
			cmd.SilenceUsage = true
			return &errors.LoadError{Path: result.Path, Warnings: result.Warnings}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

// reportLoadResult renders a load report the way the interactive
// advisor always has: every warning verbatim, then the count and the
// missing-prerequisite list.
func reportLoadResult(result *catalog.LoadResult, quiet bool) {
	for _, warning := range result.Warnings {
		fmt.Fprintln(os.Stderr, warning)
	}

	if !result.OK {
		fmt.Fprintf(os.Stderr, "No courses were loaded from %s\n", result.Path)
		return
	}

	if quiet {
		return
	}

	fmt.Printf("Loaded %d courses from %s\n", result.Courses, result.Path)
	if len(result.MissingPrerequisites) == 0 {
		fmt.Println("All prerequisites found in the loaded catalog.")
	} else {
		for _, missing := range result.MissingPrerequisites {
			fmt.Printf("Prerequisite missing from catalog: %s\n", missing)
		}
	}
}

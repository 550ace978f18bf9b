package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abcu/advisor/pkg/errors"
	"github.com/abcu/advisor/pkg/logging"
)

// dashboardCmd hands the resolved course file path off to the separate
// dashboard binary. The two programs share nothing but that path: the
// dashboard loads its own catalog instance from it.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the graphical dashboard for the current course file",
	Long: `Dashboard launches the separately built graphical front-end, passing
the resolved course file path as its only argument. The dashboard runs
its own independent catalog load; no state is shared with this CLI
beyond the path string.`,
	Example: `  advisor dashboard                    # Launch with the configured course file
  advisor dashboard -f courses.csv     # Launch with a specific file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveCatalogPath(nil)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		binary := dashboardBinary()
		logging.Debug().Str("binary", binary).Str("catalog", path).Msg("launching dashboard")

		dashboard := exec.CommandContext(cmd.Context(), binary, path)
		dashboard.Stdout = os.Stdout
		dashboard.Stderr = os.Stderr

		if err := dashboard.Run(); err != nil {
			cmd.SilenceUsage = true
			exitCode := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			}
			return &errors.ProcessError{
				Operation: "dashboard launch",
				Command:   fmt.Sprintf("%s %s", binary, path),
				ExitCode:  exitCode,
				Err:       err,
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// dashboardBinary resolves the dashboard executable: a build sitting
// next to this CLI wins, otherwise the configured name is left for
// PATH lookup.
func dashboardBinary() string {
	name := viper.GetString("gui.binary")
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	executable, err := os.Executable()
	if err != nil {
		return name
	}

	candidate := filepath.Join(filepath.Dir(executable), name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return name
}

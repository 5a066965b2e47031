package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/radux/radux-launch/internal/output"
	"github.com/radux/radux-launch/internal/version"
	"github.com/spf13/cobra"
)

// errLaunchFailed marks a menu invocation that was already reported on
// stderr by the launcher; Execute exits non-zero without printing it again.
var errLaunchFailed = errors.New("launch failed")

var rootCmd = &cobra.Command{
	Use:   "radux-launch",
	Short: "Launch the radux radial menu at a screen position",
	Long: `Launcher for the radux-menu radial menu binary.

Run with no arguments to open the menu at the current pointer position.
Use the open subcommand for explicit coordinates or a config override.`,
	RunE:          runOpen,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errLaunchFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = "yaml"
		}
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		return nil
	}
}

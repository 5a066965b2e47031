package cmd

import (
	"fmt"

	"github.com/radux/radux-launch/internal/launcher"
	"github.com/radux/radux-launch/internal/output"
	"github.com/radux/radux-launch/internal/platform"
	"github.com/spf13/cobra"
)

// OpenResult is the YAML output of a menu invocation.
type OpenResult struct {
	OK      bool     `yaml:"ok"              json:"ok"`
	Action  string   `yaml:"action"          json:"action"`
	X       int      `yaml:"x"               json:"x"`
	Y       int      `yaml:"y"               json:"y"`
	Command []string `yaml:"command"         json:"command"`
	Error   string   `yaml:"error,omitempty" json:"error,omitempty"`
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the radial menu at a position",
	Long: `Open the radial menu at explicit screen coordinates, or at the current
pointer position when --x/--y are omitted. The two coordinates always travel
as a pair: give both or neither.`,
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().Int("x", 0, "X screen coordinate (requires --y)")
	openCmd.Flags().Int("y", 0, "Y screen coordinate (requires --x)")
	openCmd.Flags().String("cli", "", "Configuration override passed to radux-menu via --cli")
	openCmd.Flags().String("menu-bin", "", "Path to the radux-menu binary (default: <install root>/bin/radux-menu)")
}

func runOpen(cmd *cobra.Command, args []string) error {
	menuBin := ""
	if cmd.Flags().Changed("menu-bin") {
		menuBin, _ = cmd.Flags().GetString("menu-bin")
	}
	cfg, settings, err := loadLauncherConfig(menuBin)
	if err != nil {
		return err
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	opts := launcher.RunOptions{ConfigOverride: settings.CLIConfig}
	if cmd.Flags().Changed("cli") {
		opts.ConfigOverride, _ = cmd.Flags().GetString("cli")
	}
	opts.X, opts.Y, err = coordPair(cmd)
	if err != nil {
		return err
	}

	outcome, err := launcher.New(cfg, provider.Locator).Run(opts)
	if err != nil {
		return err
	}

	result := OpenResult{
		OK:      outcome.Status == launcher.StatusOK,
		Action:  "open",
		X:       outcome.X,
		Y:       outcome.Y,
		Command: outcome.Args,
		Error:   outcome.Detail,
	}
	if err := output.Print(result); err != nil {
		return err
	}
	if outcome.Status != launcher.StatusOK {
		return errLaunchFailed
	}
	return nil
}

// coordPair reads --x/--y, enforcing both-or-neither. A nil pair means the
// launcher queries the pointer for both coordinates.
func coordPair(cmd *cobra.Command) (*int, *int, error) {
	hasX := cmd.Flags().Changed("x")
	hasY := cmd.Flags().Changed("y")
	if hasX != hasY {
		return nil, nil, fmt.Errorf("--x and --y must be given together")
	}
	if !hasX {
		return nil, nil, nil
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	return &x, &y, nil
}

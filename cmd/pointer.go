package cmd

import (
	"github.com/radux/radux-launch/internal/output"
	"github.com/radux/radux-launch/internal/platform"
	"github.com/spf13/cobra"
)

// PointerResult is the YAML output of a pointer query.
type PointerResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	X      int    `yaml:"x"      json:"x"`
	Y      int    `yaml:"y"      json:"y"`
}

var pointerCmd = &cobra.Command{
	Use:   "pointer",
	Short: "Print the current pointer position",
	Long:  "Query the windowing system for the current global pointer position and print it.",
	RunE:  runPointer,
}

func init() {
	rootCmd.AddCommand(pointerCmd)
}

func runPointer(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	x, y, err := provider.Locator.PointerPosition()
	if err != nil {
		return err
	}
	return output.Print(PointerResult{OK: true, Action: "pointer", X: x, Y: y})
}

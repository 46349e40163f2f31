package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/headerdrop/internal/dropdown"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in dropdown presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		showLinks, _ := cmd.Flags().GetBool("links")
		for _, name := range dropdown.PresetNames() {
			spec, err := dropdown.Preset(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %q (%d links)\n", name, spec.Title, len(spec.Links))
			if showLinks {
				for _, l := range spec.Links {
					fmt.Printf("    %s  %s\n", l.Text, l.URL)
				}
			}
		}
		return nil
	},
}

func init() {
	presetsCmd.Flags().Bool("links", false, "also print every preset link")
	rootCmd.AddCommand(presetsCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/headerdrop/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize headerdrop configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure header dropdowns for your docs and writes the config file given by --config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

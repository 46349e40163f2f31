package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/headerdrop/internal/config"
	"github.com/ziadkadry99/headerdrop/internal/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "headerdrop",
	Short: "Configurable dropdown menus for documentation site headers",
	Long: `headerdrop builds a static documentation site from markdown and adds
dropdown menus to the header of every page. Dropdowns come from a built-in
preset, an external YAML file and inline configuration. They are rendered
either through a header template override or by splicing markup into the
finished pages, which also works on sites built by other tools.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log := logger.Setup(verbose)
		cmd.SetContext(logger.WithLogger(cmd.Context(), log))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

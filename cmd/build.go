package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/headerdrop/internal/config"
	"github.com/ziadkadry99/headerdrop/internal/headerdropdown"
	"github.com/ziadkadry99/headerdrop/internal/progress"
	"github.com/ziadkadry99/headerdrop/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the documentation site with header dropdowns",
	Long:  `Renders the markdown docs directory into a static HTML site and adds the configured header dropdowns to every page.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override the site output directory")
	buildCmd.Flags().String("strategy", "", "override header_dropdown.strategy (template or inject)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.SiteDir = output
	}
	if strategy, _ := cmd.Flags().GetString("strategy"); strategy != "" {
		cfg.HeaderDropdown.Strategy = config.Strategy(strategy)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(cfg.DocsDir); os.IsNotExist(err) {
		return fmt.Errorf("docs directory not found at %s", cfg.DocsDir)
	}

	pageCount, plugin, err := buildSite(cmd.Context(), cfg, progress.NewReporter("Rendering"))
	if err != nil {
		return err
	}

	fmt.Printf("Static site generated: %s (%d pages, %d header dropdowns, strategy %s)\n",
		cfg.SiteDir, pageCount, len(plugin.Dropdowns()), cfg.HeaderDropdown.Strategy)
	return nil
}

// buildSite runs one full site build with the header dropdown plugin.
func buildSite(ctx context.Context, cfg *config.Config, reporter progress.Reporter) (int, *headerdropdown.Plugin, error) {
	plugin := headerdropdown.New(cfg.HeaderDropdown)
	generator := site.NewSiteGenerator(buildConfig(cfg), plugin)
	generator.Reporter = reporter

	pageCount, err := generator.Generate(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("generating site: %w", err)
	}
	return pageCount, plugin, nil
}

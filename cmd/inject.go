package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/headerdrop/internal/headerdropdown"
	"github.com/ziadkadry99/headerdrop/internal/progress"
)

var injectCmd = &cobra.Command{
	Use:   "inject [site-dir]",
	Short: "Add header dropdowns to an already built site",
	Long: `Rewrites the HTML pages of an existing site in place, splicing the configured
dropdowns after the header search form, or before the repository link when a
page has no search form. Pages that already carry the dropdowns are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInject,
}

func init() {
	injectCmd.Flags().StringSlice("include", nil, "override inject.include glob patterns")
	injectCmd.Flags().StringSlice("exclude", nil, "override inject.exclude glob patterns")
	rootCmd.AddCommand(injectCmd)
}

func runInject(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	siteDir := cfg.SiteDir
	if len(args) == 1 {
		siteDir = args[0]
	}
	if info, err := os.Stat(siteDir); err != nil || !info.IsDir() {
		return fmt.Errorf("site directory not found at %s\nRun `headerdrop build` or point inject at a built site", siteDir)
	}

	include := cfg.Inject.Include
	if cmd.Flags().Changed("include") {
		include, _ = cmd.Flags().GetStringSlice("include")
	}
	exclude := cfg.Inject.Exclude
	if cmd.Flags().Changed("exclude") {
		exclude, _ = cmd.Flags().GetStringSlice("exclude")
	}

	plugin := headerdropdown.New(cfg.HeaderDropdown)
	dropdowns, err := plugin.Resolve(cmd.Context(), cfg.DocsDir)
	if err != nil {
		return err
	}
	if len(dropdowns) == 0 {
		fmt.Println("No header dropdowns configured; nothing to inject.")
		return nil
	}

	res, err := plugin.InjectSite(cmd.Context(), headerdropdown.InjectOptions{
		SiteDir:  siteDir,
		Include:  include,
		Exclude:  exclude,
		Reporter: progress.NewReporter("Injecting"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Injected %d of %d pages in %s (%d already injected, %d without a header anchor)\n",
		res.Injected, res.Pages, siteDir, res.Already, res.NoAnchor)
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/headerdrop/internal/progress"
	"github.com/ziadkadry99/headerdrop/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally",
	Long:  `Builds the site, then serves it over HTTP. With --watch, changes to the docs directory rebuild the site and reload open browsers.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port for the local dev server")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("watch", false, "rebuild and live reload on docs changes")
	serveCmd.Flags().Bool("allow-all-origins", false, "allow cross-origin requests from any origin")
	serveCmd.Flags().Bool("no-build", false, "serve the existing site dir without building first")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if noBuild, _ := cmd.Flags().GetBool("no-build"); !noBuild {
		pageCount, _, err := buildSite(ctx, cfg, progress.NewReporter("Rendering"))
		if err != nil {
			return err
		}
		fmt.Printf("Static site generated: %s (%d pages)\n", cfg.SiteDir, pageCount)
	}

	port, _ := cmd.Flags().GetInt("port")
	open, _ := cmd.Flags().GetBool("open")
	allowAll, _ := cmd.Flags().GetBool("allow-all-origins")
	opts := site.ServeOptions{
		Dir:      cfg.SiteDir,
		Port:     port,
		Open:     open,
		AllowAll: allowAll,
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		opts.WatchDir = cfg.DocsDir
		opts.Rebuild = func(ctx context.Context) error {
			pageCount, _, err := buildSite(ctx, cfg, progress.Nop{})
			if err == nil {
				fmt.Printf("Rebuilt %d pages\n", pageCount)
			}
			return err
		}
	}

	fmt.Printf("Serving at http://localhost:%d, press Ctrl+C to stop\n", port)
	if err := site.Serve(ctx, opts); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/ziadkadry99/headerdrop/internal/config"
	"github.com/ziadkadry99/headerdrop/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `headerdrop init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// buildConfig converts the loaded config into the site build settings.
func buildConfig(cfg *config.Config) *site.BuildConfig {
	return &site.BuildConfig{
		SiteName: cfg.SiteName,
		DocsDir:  cfg.DocsDir,
		SiteDir:  cfg.SiteDir,
		RepoURL:  cfg.RepoURL,
	}
}

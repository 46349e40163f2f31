// Package headerdropdown adds configurable dropdown menus to the header of
// every page of a site build.
package headerdropdown

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/headerdrop/internal/config"
	"github.com/ziadkadry99/headerdrop/internal/dropdown"
	"github.com/ziadkadry99/headerdrop/internal/logger"
	"github.com/ziadkadry99/headerdrop/internal/render"
	"github.com/ziadkadry99/headerdrop/internal/site"
)

// Name identifies the plugin in build errors and logs.
const Name = "header-dropdown"

// Plugin resolves the configured dropdowns once per build and delivers them
// to pages with the configured strategy.
type Plugin struct {
	cfg       config.HeaderDropdownConfig
	dropdowns []dropdown.Spec
	resolved  bool
}

// New returns a plugin for cfg. A blank strategy means template.
func New(cfg config.HeaderDropdownConfig) *Plugin {
	if cfg.Strategy == "" {
		cfg.Strategy = config.StrategyTemplate
	}
	return &Plugin{cfg: cfg}
}

func (p *Plugin) Name() string { return Name }

// Resolve merges the configured sources relative to docsDir and stores the
// result for the rest of the build.
func (p *Plugin) Resolve(ctx context.Context, docsDir string) ([]dropdown.Spec, error) {
	specs, err := dropdown.Resolve(ctx, dropdown.Options{
		Preset:     p.cfg.Preset,
		ConfigFile: p.cfg.ConfigFile,
		Inline:     p.cfg.Dropdowns,
		DocsDir:    docsDir,
	})
	if err != nil {
		return nil, err
	}
	p.dropdowns = specs
	p.resolved = true
	return p.Dropdowns(), nil
}

// Dropdowns returns a copy of the resolved dropdowns.
func (p *Plugin) Dropdowns() []dropdown.Spec {
	if p.dropdowns == nil {
		return nil
	}
	out := make([]dropdown.Spec, len(p.dropdowns))
	for i, d := range p.dropdowns {
		out[i] = d.Clone()
	}
	return out
}

// OnConfig resolves the dropdowns and publishes them to page templates.
func (p *Plugin) OnConfig(ctx context.Context, cfg *site.BuildConfig) error {
	specs, err := p.Resolve(ctx, cfg.DocsDir)
	if err != nil {
		return err
	}
	cfg.Extra[dropdown.ExtraKey] = specs
	logger.FromContext(ctx).Info("header dropdowns ready",
		"count", len(specs), "strategy", string(p.cfg.Strategy))
	return nil
}

// OnEnv puts the header override in front of the theme when rendering
// through templates.
func (p *Plugin) OnEnv(_ context.Context, theme *site.Theme, _ *site.BuildConfig) error {
	if p.cfg.Strategy == config.StrategyTemplate {
		theme.Prepend(render.Overrides())
	}
	return nil
}

// OnPostPage splices the dropdowns into each rendered page when rendering
// through text injection.
func (p *Plugin) OnPostPage(ctx context.Context, output string, page *site.Page, _ *site.BuildConfig) (string, error) {
	if p.cfg.Strategy != config.StrategyInject {
		return output, nil
	}
	if !p.resolved {
		return "", fmt.Errorf("dropdowns used before the build configuration was resolved")
	}
	if len(p.dropdowns) > 0 {
		if _, _, ok := render.FindAnchor(output); !ok {
			logger.FromContext(ctx).V(1).Info("no header anchor, page left unchanged", "page", page.URL)
		}
	}
	return render.Inject(output, p.dropdowns)
}

// OnPostBuild copies the bundled icons into the site.
func (p *Plugin) OnPostBuild(ctx context.Context, cfg *site.BuildConfig) error {
	n, err := render.WriteAssets(cfg.SiteDir)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).V(1).Info("copied dropdown assets", "files", n)
	return nil
}

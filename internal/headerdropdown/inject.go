package headerdropdown

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ziadkadry99/headerdrop/internal/logger"
	"github.com/ziadkadry99/headerdrop/internal/progress"
	"github.com/ziadkadry99/headerdrop/internal/render"
	"github.com/ziadkadry99/headerdrop/internal/walker"
)

// InjectOptions selects the pages of an already built site to rewrite.
type InjectOptions struct {
	SiteDir  string
	Include  []string
	Exclude  []string
	Reporter progress.Reporter
}

// InjectResult counts what happened to each page.
type InjectResult struct {
	Pages      int // pages examined
	Injected   int // pages rewritten
	Already    int // pages that already carried the dropdowns
	NoAnchor   int // pages without a header anchor
	AssetFiles int // bundled files copied into the site
}

// InjectSite runs text injection over every matching page of a built site
// and copies the bundled assets. Resolve must have been called first.
func (p *Plugin) InjectSite(ctx context.Context, opts InjectOptions) (InjectResult, error) {
	var res InjectResult
	if !p.resolved {
		return res, fmt.Errorf("dropdowns used before the build configuration was resolved")
	}
	log := logger.FromContext(ctx)
	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	pages, err := walker.FindPages(walker.Config{
		RootDir: opts.SiteDir,
		Include: opts.Include,
		Exclude: opts.Exclude,
	})
	if err != nil {
		return res, fmt.Errorf("finding pages: %w", err)
	}
	res.Pages = len(pages)

	reporter.Start(len(pages))
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		data, err := os.ReadFile(page.Path)
		if err != nil {
			return res, fmt.Errorf("reading %s: %w", page.RelPath, err)
		}
		before := string(data)

		switch {
		case strings.Contains(before, render.InjectedMarker):
			res.Already++
		default:
			if _, _, ok := render.FindAnchor(before); !ok {
				res.NoAnchor++
				log.V(1).Info("no header anchor, page left unchanged", "page", page.RelPath)
				break
			}
			after, err := render.Inject(before, p.dropdowns)
			if err != nil {
				return res, fmt.Errorf("injecting %s: %w", page.RelPath, err)
			}
			if after != before {
				if err := os.WriteFile(page.Path, []byte(after), 0o644); err != nil {
					return res, fmt.Errorf("writing %s: %w", page.RelPath, err)
				}
				res.Injected++
			}
		}
		reporter.Update(i+1, page.RelPath)
	}
	reporter.Finish()

	n, err := render.WriteAssets(opts.SiteDir)
	if err != nil {
		return res, err
	}
	res.AssetFiles = n

	log.Info("injected header dropdowns",
		"pages", res.Pages, "injected", res.Injected, "already", res.Already, "no_anchor", res.NoAnchor)
	return res, nil
}

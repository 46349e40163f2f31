package site

import "context"

// BuildConfig is the build-wide state shared with plugins. Extra is
// published to every page template as .Extra.
type BuildConfig struct {
	SiteName string
	DocsDir  string
	SiteDir  string
	RepoURL  string
	BuildID  string
	Extra    map[string]any
}

// Page identifies one rendered documentation page.
type Page struct {
	SrcPath string // markdown path relative to DocsDir, slash separated
	URL     string // output path relative to SiteDir, slash separated
	Title   string
}

// Plugin is anything that takes part in a build. It participates in build
// phases by also implementing one or more of the hook interfaces below.
type Plugin interface {
	Name() string
}

// ConfigHook runs once after the build configuration is final and before
// any page is rendered.
type ConfigHook interface {
	OnConfig(ctx context.Context, cfg *BuildConfig) error
}

// EnvHook runs once while the template environment is assembled.
type EnvHook interface {
	OnEnv(ctx context.Context, theme *Theme, cfg *BuildConfig) error
}

// PostPageHook runs for every page after it is rendered and may return a
// modified page.
type PostPageHook interface {
	OnPostPage(ctx context.Context, output string, page *Page, cfg *BuildConfig) (string, error)
}

// PostBuildHook runs once after every page is written.
type PostBuildHook interface {
	OnPostBuild(ctx context.Context, cfg *BuildConfig) error
}

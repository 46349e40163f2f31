package config

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = ".headerdrop.yml"

// DefaultInjectInclude matches every rendered page.
var DefaultInjectInclude = []string{"**/*.html"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName: "Documentation",
		DocsDir:  "docs",
		SiteDir:  "site",
		HeaderDropdown: HeaderDropdownConfig{
			Strategy: StrategyTemplate,
		},
		Inject: InjectConfig{
			Include: append([]string(nil), DefaultInjectInclude...),
			Exclude: []string{},
		},
	}
}

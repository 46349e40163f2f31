package config

import "github.com/ziadkadry99/headerdrop/internal/dropdown"

// Strategy selects how dropdown markup reaches the rendered pages.
type Strategy string

const (
	// StrategyTemplate overrides the theme header partial.
	StrategyTemplate Strategy = "template"
	// StrategyInject splices markup into every rendered page.
	StrategyInject Strategy = "inject"
)

// Config is the top-level headerdrop configuration, corresponding to .headerdrop.yml.
type Config struct {
	SiteName       string               `yaml:"site_name" koanf:"site_name"`
	DocsDir        string               `yaml:"docs_dir" koanf:"docs_dir"`
	SiteDir        string               `yaml:"site_dir" koanf:"site_dir"`
	RepoURL        string               `yaml:"repo_url,omitempty" koanf:"repo_url"`
	HeaderDropdown HeaderDropdownConfig `yaml:"header_dropdown" koanf:"header_dropdown"`
	Inject         InjectConfig         `yaml:"inject" koanf:"inject"`
}

// HeaderDropdownConfig holds the plugin settings: the three dropdown sources
// and the rendering strategy.
type HeaderDropdownConfig struct {
	Strategy   Strategy        `yaml:"strategy" koanf:"strategy"`
	Preset     string          `yaml:"preset,omitempty" koanf:"preset"`
	ConfigFile string          `yaml:"config_file,omitempty" koanf:"config_file"`
	Dropdowns  []dropdown.Spec `yaml:"dropdowns,omitempty" koanf:"dropdowns"`
}

// InjectConfig selects the pages of an existing site that the inject command
// rewrites.
type InjectConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/headerdrop/internal/dropdown"
)

// noPreset is the wizard choice for configuring without a preset.
const noPreset = "(none)"

// detectDocsDir returns the first conventional docs directory that exists.
func detectDocsDir() string {
	for _, dir := range []string{"docs", "doc", "documentation"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "docs"
}

// RunWizard runs an interactive configuration wizard and saves the result to
// path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to headerdrop! Let's configure your header dropdowns.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	siteName, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = siteName

	// 2. Docs directory.
	docsPrompt := promptui.Prompt{
		Label:   "Markdown docs directory",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	cfg.DocsDir = docsDir

	// 3. Strategy.
	strategyPrompt := promptui.Select{
		Label: "How should dropdowns be added",
		Items: []string{
			"template: override the header partial",
			"inject: splice into rendered pages",
		},
	}
	strategyIdx, _, err := strategyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("strategy selection: %w", err)
	}
	cfg.HeaderDropdown.Strategy = []Strategy{StrategyTemplate, StrategyInject}[strategyIdx]

	// 4. Preset.
	presetPrompt := promptui.Select{
		Label: "Preset dropdown",
		Items: append([]string{noPreset}, dropdown.PresetNames()...),
	}
	_, preset, err := presetPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("preset selection: %w", err)
	}
	if preset != noPreset {
		cfg.HeaderDropdown.Preset = preset
	}

	// 5. External dropdown file.
	filePrompt := promptui.Prompt{
		Label:   "External dropdown file relative to the project root (leave blank for none)",
		Default: "",
	}
	configFile, err := filePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	cfg.HeaderDropdown.ConfigFile = strings.TrimSpace(configFile)

	if cfg.HeaderDropdown.ConfigFile != "" {
		resolved := dropdown.ResolveConfigPath(cfg.DocsDir, cfg.HeaderDropdown.ConfigFile)
		if _, err := os.Stat(resolved); err != nil {
			fmt.Printf("\nNote: %s does not exist yet; builds fail until it is created.\n", resolved)
		}
	}

	// 6. Pages the inject command skips.
	if cfg.HeaderDropdown.Strategy == StrategyInject {
		excludePrompt := promptui.Prompt{
			Label:   "Pages to leave untouched (comma-separated globs, leave blank for none)",
			Default: "",
		}
		excludeStr, err := excludePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("exclude patterns: %w", err)
		}
		cfg.Inject.Exclude = append(cfg.Inject.Exclude, splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", filepath.Clean(path))
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty items.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

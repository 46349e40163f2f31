package render

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/headerdrop/internal/dropdown"
)

// Bundled images referenced by presets through the __plugin__/ icon prefix.
//
//go:embed assets
var assetFiles embed.FS

// AssetNames lists the bundled asset file names.
func AssetNames() ([]string, error) {
	entries, err := fs.ReadDir(assetFiles, "assets")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// WriteAssets copies the bundled assets into siteDir under the public
// assets subdirectory and returns the number of files written.
func WriteAssets(siteDir string) (int, error) {
	names, err := AssetNames()
	if err != nil {
		return 0, fmt.Errorf("listing bundled assets: %w", err)
	}
	destDir := filepath.Join(siteDir, dropdown.AssetsDir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating assets dir: %w", err)
	}
	for _, name := range names {
		data, err := assetFiles.ReadFile("assets/" + name)
		if err != nil {
			return 0, err
		}
		if err := os.WriteFile(filepath.Join(destDir, name), data, 0o644); err != nil {
			return 0, fmt.Errorf("writing asset %s: %w", name, err)
		}
	}
	return len(names), nil
}

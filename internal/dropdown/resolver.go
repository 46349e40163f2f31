package dropdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ziadkadry99/headerdrop/internal/logger"
)

// fileKey is the top-level key of an external dropdown file.
const fileKey = "dropdowns"

// Options are the three dropdown sources plus the docs root that relative
// config file paths are resolved against.
type Options struct {
	Preset     string
	ConfigFile string
	Inline     []Spec
	DocsDir    string
}

// Resolve merges the preset entry, the external file entries and the inline
// entries, in that order, and normalizes every result. The returned slice
// shares no memory with the registry or with opts.Inline.
func Resolve(ctx context.Context, opts Options) ([]Spec, error) {
	log := logger.FromContext(ctx)
	var out []Spec

	if opts.Preset != "" {
		spec, err := Preset(opts.Preset)
		if err != nil {
			return nil, err
		}
		out = append(out, spec)
	}

	if opts.ConfigFile != "" {
		path := ResolveConfigPath(opts.DocsDir, opts.ConfigFile)
		specs, err := LoadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		log.V(1).Info("loaded dropdown config file", "path", path, "dropdowns", len(specs))
		out = append(out, specs...)
	}

	out = append(out, opts.Inline...)

	for i := range out {
		out[i] = out[i].normalize()
	}
	log.V(1).Info("resolved header dropdowns", "count", len(out), "preset", opts.Preset)
	return out, nil
}

// ResolveConfigPath resolves a dropdown file path against the parent of the
// docs directory. Absolute paths are returned unchanged.
func ResolveConfigPath(docsDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(filepath.Dir(filepath.Clean(docsDir)), path)
}

// RewriteIcon replaces the plugin sentinel prefix with the public assets URL
// prefix. Any other value, including an already rewritten one, is returned
// as is.
func RewriteIcon(icon string) string {
	if !strings.HasPrefix(icon, PluginIconPrefix) {
		return icon
	}
	return AssetsURLPrefix + strings.TrimPrefix(icon, PluginIconPrefix)
}

// LoadFile reads the dropdown entries of a YAML file. A document without a
// dropdowns key yields no entries; a dropdowns value that is not a list of
// mappings is an error.
func LoadFile(ctx context.Context, path string) ([]Spec, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigFileNotFoundError{Path: path}
		}
		return nil, &ConfigFileError{Path: path, Err: err}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, &ConfigFileError{Path: path, Err: err}
	}

	if !k.Exists(fileKey) || k.Get(fileKey) == nil {
		logger.FromContext(ctx).Info("dropdown config file has no dropdowns key, ignoring", "path", path)
		return nil, nil
	}

	items, ok := k.Get(fileKey).([]interface{})
	if !ok {
		return nil, &ConfigFileError{Path: path, Err: fmt.Errorf("%s must be a list, got %T", fileKey, k.Get(fileKey))}
	}
	for i, item := range items {
		if _, ok := item.(map[string]interface{}); !ok {
			return nil, &ConfigFileError{Path: path, Err: fmt.Errorf("%s[%d] must be a mapping, got %T", fileKey, i, item)}
		}
	}

	var specs []Spec
	if err := k.Unmarshal(fileKey, &specs); err != nil {
		return nil, &ConfigFileError{Path: path, Err: fmt.Errorf("decoding %s: %w", fileKey, err)}
	}
	return specs, nil
}

package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// PageInfo describes one rendered page found under a site directory.
type PageInfo struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash separated path relative to the root directory.
	Size    int64  // File size in bytes.
}

// Config controls the behaviour of FindPages.
type Config struct {
	RootDir string   // Site directory to walk.
	Include []string // Glob patterns; only matching files are returned.
	Exclude []string // Glob patterns; matching files are skipped.
}

// FindPages walks config.RootDir and returns every regular file that passes
// the include and exclude filters, sorted by relative path.
func FindPages(config Config) ([]PageInfo, error) {
	if err := ValidatePatterns(config.Include); err != nil {
		return nil, err
	}
	if err := ValidatePatterns(config.Exclude); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	var pages []PageInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		pages = append(pages, PageInfo{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Size:    info.Size(),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].RelPath < pages[j].RelPath })
	return pages, nil
}

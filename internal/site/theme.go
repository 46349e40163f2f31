package site

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
)

// pageTemplateName is the entry template every page is rendered with.
const pageTemplateName = "main.html"

//go:embed theme
var themeFiles embed.FS

// themeFuncs are available to every theme template, including overrides.
var themeFuncs = template.FuncMap{
	// comment emits a literal HTML comment; html/template strips comments
	// written directly in template source.
	"comment": func(text string) template.HTML {
		return template.HTML("<!-- " + text + " -->")
	},
}

// Theme is an ordered search path of template directories. A template found
// in an earlier directory shadows one with the same name in a later one.
type Theme struct {
	layers []fs.FS
}

// DefaultTheme returns the built-in theme with no overrides.
func DefaultTheme() *Theme {
	base, err := fs.Sub(themeFiles, "theme")
	if err != nil {
		panic(err)
	}
	return &Theme{layers: []fs.FS{base}}
}

// Prepend adds dir to the front of the search path.
func (t *Theme) Prepend(dir fs.FS) {
	t.layers = append([]fs.FS{dir}, t.layers...)
}

// Lookup returns the directory that provides the named template.
func (t *Theme) Lookup(name string) (fs.FS, bool) {
	for _, layer := range t.layers {
		if _, err := fs.Stat(layer, name); err == nil {
			return layer, true
		}
	}
	return nil, false
}

// Parse loads every *.html template visible through the search path, each
// from the highest priority directory that has it.
func (t *Theme) Parse() (*template.Template, error) {
	owners := make(map[string]fs.FS)
	var names []string
	for _, layer := range t.layers {
		err := fs.WalkDir(layer, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path.Ext(p) != ".html" {
				return nil
			}
			if _, seen := owners[p]; !seen {
				owners[p] = layer
				names = append(names, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning theme templates: %w", err)
		}
	}
	if _, ok := owners[pageTemplateName]; !ok {
		return nil, fmt.Errorf("theme has no %s template", pageTemplateName)
	}
	sort.Strings(names)

	root := template.New(pageTemplateName).Funcs(themeFuncs)
	for _, name := range names {
		data, err := fs.ReadFile(owners[name], name)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", name, err)
		}
		tmpl := root
		if name != pageTemplateName {
			tmpl = root.New(name)
		}
		if _, err := tmpl.Parse(string(data)); err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
	}
	return root, nil
}

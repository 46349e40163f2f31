package dropdown

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestPresetDeterministic(t *testing.T) {
	for _, name := range PresetNames() {
		first, err := Resolve(context.Background(), Options{Preset: name})
		require.NoError(t, err)
		second, err := Resolve(context.Background(), Options{Preset: name})
		require.NoError(t, err)
		assert.Equal(t, first, second, "preset %s", name)
	}
}

func TestPresetReturnsCopy(t *testing.T) {
	spec, err := Preset("cms-pog")
	require.NoError(t, err)
	spec.Title = "changed"
	spec.Links[0].URL = "https://example.com"

	again, err := Preset("cms-pog")
	require.NoError(t, err)
	assert.Equal(t, "CMS POG Docs", again.Title)
	assert.Equal(t, "https://cms-analysis-corrections.docs.cern.ch/", again.Links[0].URL)
}

func TestResolveDoesNotMutateRegistry(t *testing.T) {
	resolved, err := Resolve(context.Background(), Options{Preset: "cms-pog"})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	resolved[0].Links[0].Text = "mutated"

	spec, err := Preset("cms-pog")
	require.NoError(t, err)
	assert.Equal(t, "Analysis Corrections | CrossPOG", spec.Links[0].Text)
	assert.Equal(t, PluginIconPrefix+"CMSlogo_white_nolabel_1024_May2014.png", spec.Icon)
}

func TestUnknownPreset(t *testing.T) {
	_, err := Resolve(context.Background(), Options{Preset: "nonexistent"})
	require.Error(t, err)

	var presetErr *UnknownPresetError
	require.True(t, errors.As(err, &presetErr))
	assert.Equal(t, "nonexistent", presetErr.Name)
	assert.Contains(t, err.Error(), "nonexistent")
	assert.Contains(t, err.Error(), "cms-pog")
}

func TestResolveInlineOnly(t *testing.T) {
	inline := []Spec{{Title: "A", Links: []Link{}}}

	got, err := Resolve(context.Background(), Options{Inline: inline})
	require.NoError(t, err)
	assert.Equal(t, []Spec{{Title: "A", Links: []Link{}}}, got)
}

func TestResolvePresetBeforeInline(t *testing.T) {
	got, err := Resolve(context.Background(), Options{
		Preset: "cms-pog",
		Inline: []Spec{{Title: "B"}},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CMS POG Docs", got[0].Title)
	assert.Equal(t, AssetsURLPrefix+"CMSlogo_white_nolabel_1024_May2014.png", got[0].Icon)
	assert.Equal(t, "B", got[1].Title)
}

func TestResolveAllSourcesOrder(t *testing.T) {
	root := t.TempDir()
	docsDir := filepath.Join(root, "docs")
	writeFile(t, filepath.Join(root, "dropdowns.yml"), `
dropdowns:
  - title: File One
    links:
      - text: First
        url: https://one.example.com
  - title: File Two
    icon: __plugin__/two.png
    links:
      - text: Second
`)

	got, err := Resolve(context.Background(), Options{
		Preset:     "cms-pog",
		ConfigFile: "dropdowns.yml",
		Inline:     []Spec{{Title: "Inline"}},
		DocsDir:    docsDir,
	})
	require.NoError(t, err)

	titles := make([]string, len(got))
	for i, s := range got {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{"CMS POG Docs", "File One", "File Two", "Inline"}, titles)
	assert.Equal(t, "/header-dropdown-assets/two.png", got[2].Icon)
	assert.Equal(t, DefaultLinkURL, got[2].Links[0].URL)
	assert.Equal(t, "https://one.example.com", got[1].Links[0].URL)
}

func TestResolveDoesNotMutateInline(t *testing.T) {
	inline := []Spec{{Title: "X", Icon: "__plugin__/x.png", Links: []Link{{Text: "t"}}}}

	_, err := Resolve(context.Background(), Options{Inline: inline})
	require.NoError(t, err)
	assert.Equal(t, "__plugin__/x.png", inline[0].Icon)
	assert.Equal(t, "", inline[0].Links[0].URL)
}

func TestRewriteIcon(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"__plugin__/logo.png", "/header-dropdown-assets/logo.png"},
		{"https://x/y.png", "https://x/y.png"},
		{"/assets/logo.png", "/assets/logo.png"},
		{"img/__plugin__/logo.png", "img/__plugin__/logo.png"},
		{"", ""},
	}
	for _, tt := range tests {
		got := RewriteIcon(tt.in)
		assert.Equal(t, tt.want, got, "RewriteIcon(%q)", tt.in)
		assert.Equal(t, got, RewriteIcon(got), "RewriteIcon should be idempotent for %q", tt.in)
	}
}

func TestResolveConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv/project", "menus.yml"), ResolveConfigPath("/srv/project/docs", "menus.yml"))
	assert.Equal(t, filepath.Join("/srv/project", "cfg", "menus.yml"), ResolveConfigPath("/srv/project/docs/", "cfg/menus.yml"))
	assert.Equal(t, "menus.yml", ResolveConfigPath("docs", "menus.yml"))
	assert.Equal(t, "/etc/menus.yml", ResolveConfigPath("/srv/project/docs", "/etc/menus.yml"))
}

func TestConfigFileNotFound(t *testing.T) {
	root := t.TempDir()
	docsDir := filepath.Join(root, "docs")

	_, err := Resolve(context.Background(), Options{ConfigFile: "missing.yml", DocsDir: docsDir})
	require.Error(t, err)

	var notFound *ConfigFileNotFoundError
	require.True(t, errors.As(err, &notFound))
	want := filepath.Join(root, "missing.yml")
	assert.Equal(t, want, notFound.Path)
	assert.Contains(t, err.Error(), want)
}

func TestLoadFileWithoutDropdownsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.yml")
	writeFile(t, path, "site_name: other\n")

	specs, err := LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestLoadFileRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "dropdowns: [unterminated\n"},
		{"dropdowns is a mapping", "dropdowns:\n  title: A\n"},
		{"dropdowns is a scalar", "dropdowns: nope\n"},
		{"entry is a scalar", "dropdowns:\n  - just-a-string\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "menus.yml")
			writeFile(t, path, tt.content)

			_, err := LoadFile(context.Background(), path)
			require.Error(t, err)
			var fileErr *ConfigFileError
			assert.True(t, errors.As(err, &fileErr))
			assert.Equal(t, path, fileErr.Path)
		})
	}
}

func TestSpecClone(t *testing.T) {
	orig := Spec{Title: "T", Links: []Link{{Text: "a", URL: "/a"}}}
	cp := orig.Clone()
	cp.Links[0].Text = "b"
	assert.Equal(t, "a", orig.Links[0].Text)

	assert.Nil(t, Spec{Title: "empty"}.Clone().Links)
}

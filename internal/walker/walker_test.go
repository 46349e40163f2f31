package walker

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testdataDir returns the absolute path to the testdata/rendered directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	root := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "rendered")
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

// makeSite creates files under a temporary site directory.
func makeSite(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("<html></html>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func relPaths(pages []PageInfo) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.RelPath
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindPages_Testdata(t *testing.T) {
	pages, err := FindPages(Config{RootDir: testdataDir(t), Include: []string{"**/*.html"}})
	if err != nil {
		t.Fatalf("FindPages() error: %v", err)
	}
	want := []string{"material.html", "no_search.html"}
	if got := relPaths(pages); !equal(got, want) {
		t.Errorf("FindPages() = %v, want %v", got, want)
	}
	for _, p := range pages {
		if !filepath.IsAbs(p.Path) {
			t.Errorf("Path %q should be absolute", p.Path)
		}
		if p.Size == 0 {
			t.Errorf("Size of %s should be non-zero", p.RelPath)
		}
	}
}

func TestFindPages_IncludeExclude(t *testing.T) {
	dir := makeSite(t,
		"index.html",
		"404.html",
		"guide/setup.html",
		"guide/setup.css",
		"api/v1/index.html",
	)

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name:    "all html",
			include: []string{"**/*.html"},
			want:    []string{"404.html", "api/v1/index.html", "guide/setup.html", "index.html"},
		},
		{
			name:    "no include means everything",
			want:    []string{"404.html", "api/v1/index.html", "guide/setup.css", "guide/setup.html", "index.html"},
		},
		{
			name:    "exclude by base name",
			include: []string{"**/*.html"},
			exclude: []string{"404.html"},
			want:    []string{"api/v1/index.html", "guide/setup.html", "index.html"},
		},
		{
			name:    "exclude subtree",
			include: []string{"**/*.html"},
			exclude: []string{"api/**"},
			want:    []string{"404.html", "guide/setup.html", "index.html"},
		},
		{
			name:    "include one directory",
			include: []string{"guide/*.html"},
			want:    []string{"guide/setup.html"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := FindPages(Config{RootDir: dir, Include: tt.include, Exclude: tt.exclude})
			if err != nil {
				t.Fatalf("FindPages() error: %v", err)
			}
			if got := relPaths(pages); !equal(got, tt.want) {
				t.Errorf("FindPages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindPages_SkipsDefaultExcludes(t *testing.T) {
	dir := makeSite(t,
		"index.html",
		".git/info.html",
		"node_modules/pkg/readme.html",
		"header-dropdown-assets/preview.html",
	)

	pages, err := FindPages(Config{RootDir: dir, Include: []string{"**/*.html"}})
	if err != nil {
		t.Fatalf("FindPages() error: %v", err)
	}
	if got := relPaths(pages); !equal(got, []string{"index.html"}) {
		t.Errorf("FindPages() = %v, want only index.html", got)
	}
}

func TestFindPages_MissingRoot(t *testing.T) {
	_, err := FindPages(Config{RootDir: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestFindPages_InvalidPattern(t *testing.T) {
	_, err := FindPages(Config{RootDir: t.TempDir(), Include: []string{"[unclosed"}})
	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PatternError", err)
	}
	if perr.Pattern != "[unclosed" {
		t.Errorf("Pattern = %q", perr.Pattern)
	}
}

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"index.html", nil, true},
		{"index.html", []string{"**/*.html"}, true},
		{"guide/setup.html", []string{"**/*.html"}, true},
		{"guide/setup.css", []string{"**/*.html"}, false},
		{"guide/setup.html", []string{"setup.html"}, true},
	}
	for _, tt := range tests {
		if got := MatchesInclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestMatchesExclude(t *testing.T) {
	if MatchesExclude("index.html", nil) {
		t.Error("empty exclude list should exclude nothing")
	}
	if !MatchesExclude("blog/2024/post.html", []string{"blog/**"}) {
		t.Error("blog/** should exclude nested pages")
	}
}

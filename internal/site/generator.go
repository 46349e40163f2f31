package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/headerdrop/internal/logger"
	"github.com/ziadkadry99/headerdrop/internal/progress"
)

// SiteGenerator converts a directory of markdown into a static HTML site and
// runs plugin hooks at each build phase.
type SiteGenerator struct {
	Config   *BuildConfig
	Plugins  []Plugin
	Reporter progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator for cfg with the given plugins.
func NewSiteGenerator(cfg *BuildConfig, plugins ...Plugin) *SiteGenerator {
	return &SiteGenerator{
		Config:   cfg,
		Plugins:  plugins,
		Reporter: progress.Nop{},
	}
}

// pageData is the template context of a page.
type pageData struct {
	Title    string
	SiteName string
	RepoURL  string
	Content  template.HTML
	TreeHTML template.HTML
	BasePath string
	Extra    map[string]any
}

// Generate builds the site and returns the number of pages written. Any
// plugin error aborts the build.
func (g *SiteGenerator) Generate(ctx context.Context) (int, error) {
	cfg := g.Config
	if cfg.Extra == nil {
		cfg.Extra = make(map[string]any)
	}
	if cfg.BuildID == "" {
		cfg.BuildID = uuid.NewString()
	}
	log := logger.WithValues(logger.FromContext(ctx), logger.BuildIDKey, cfg.BuildID)
	ctx = logger.WithLogger(ctx, log)

	for _, p := range g.Plugins {
		if h, ok := p.(ConfigHook); ok {
			if err := h.OnConfig(ctx, cfg); err != nil {
				return 0, fmt.Errorf("plugin %s: %w", p.Name(), err)
			}
		}
	}

	mdPaths, err := collectMarkdown(cfg.DocsDir)
	if err != nil {
		return 0, err
	}
	if len(mdPaths) == 0 {
		return 0, fmt.Errorf("no markdown files found in %s", cfg.DocsDir)
	}

	theme := DefaultTheme()
	for _, p := range g.Plugins {
		if h, ok := p.(EnvHook); ok {
			if err := h.OnEnv(ctx, theme, cfg); err != nil {
				return 0, fmt.Errorf("plugin %s: %w", p.Name(), err)
			}
		}
	}
	tmpl, err := theme.Parse()
	if err != nil {
		return 0, err
	}

	pages := make([]*Page, 0, len(mdPaths))
	sources := make(map[string][]byte, len(mdPaths))
	for _, rel := range mdPaths {
		content, err := os.ReadFile(filepath.Join(cfg.DocsDir, filepath.FromSlash(rel)))
		if err != nil {
			return 0, err
		}
		sources[rel] = content
		pages = append(pages, &Page{
			SrcPath: rel,
			URL:     mdPathToHTML(rel),
			Title:   extractTitle(string(content), rel),
		})
	}
	nav := BuildNav(pages)

	if err := os.MkdirAll(cfg.SiteDir, 0o755); err != nil {
		return 0, err
	}
	if err := WriteSearchIndex(BuildSearchIndex(pages, sources), filepath.Join(cfg.SiteDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.SiteDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(cfg.SiteDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	g.Reporter.Start(len(pages))
	for i, page := range pages {
		if err := g.renderPage(ctx, md, tmpl, nav, page, sources[page.SrcPath]); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", page.SrcPath, err)
		}
		g.Reporter.Update(i+1, page.SrcPath)
	}
	g.Reporter.Finish()

	for _, p := range g.Plugins {
		if h, ok := p.(PostBuildHook); ok {
			if err := h.OnPostBuild(ctx, cfg); err != nil {
				return 0, fmt.Errorf("plugin %s: %w", p.Name(), err)
			}
		}
	}

	log.V(1).Info("site generated", "pages", len(pages), "site_dir", cfg.SiteDir)
	return len(pages), nil
}

// renderPage converts one markdown page and writes the final HTML.
func (g *SiteGenerator) renderPage(ctx context.Context, md goldmark.Markdown, tmpl *template.Template, nav *NavNode, page *Page, src []byte) error {
	var body bytes.Buffer
	if err := md.Convert(src, &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	basePath := strings.Repeat("../", strings.Count(page.URL, "/"))
	data := pageData{
		Title:    page.Title,
		SiteName: g.Config.SiteName,
		RepoURL:  g.Config.RepoURL,
		Content:  template.HTML(rewriteMDLinks(body.String())),
		TreeHTML: template.HTML(nav.ToHTML(page.SrcPath, basePath)),
		BasePath: basePath,
		Extra:    g.Config.Extra,
	}

	var out bytes.Buffer
	if err := tmpl.ExecuteTemplate(&out, pageTemplateName, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	output := out.String()
	for _, p := range g.Plugins {
		if h, ok := p.(PostPageHook); ok {
			var err error
			if output, err = h.OnPostPage(ctx, output, page, g.Config); err != nil {
				return fmt.Errorf("plugin %s: %w", p.Name(), err)
			}
		}
	}

	outPath := filepath.Join(g.Config.SiteDir, filepath.FromSlash(page.URL))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(output), 0o644)
}

// collectMarkdown returns the slash separated paths of every .md file under
// docsDir, sorted.
func collectMarkdown(docsDir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		rel, err := filepath.Rel(docsDir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking docs dir: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// extractTitle returns the first level-one heading of a markdown document,
// or the file name without extension.
func extractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return strings.TrimSuffix(filepath.Base(relPath), ".md")
}

// rewriteMDLinks points relative .md links at the rendered .html pages.
func rewriteMDLinks(content string) string {
	content = strings.ReplaceAll(content, `.md"`, `.html"`)
	return strings.ReplaceAll(content, `.md#`, `.html#`)
}

// mdPathToHTML converts a markdown path to its output path.
func mdPathToHTML(p string) string {
	if strings.HasSuffix(p, ".md") {
		return strings.TrimSuffix(p, ".md") + ".html"
	}
	return p
}

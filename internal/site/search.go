package site

import (
	"encoding/json"
	"os"
	"strings"
)

// maxSearchContent caps the indexed text of a page.
const maxSearchContent = 2000

// SearchEntry is one page of the client-side search index.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex indexes pages from their markdown sources. The summary is
// the first non-heading line after the title.
func BuildSearchIndex(pages []*Page, sources map[string][]byte) []SearchEntry {
	entries := make([]SearchEntry, 0, len(pages))
	for _, page := range pages {
		entry := SearchEntry{Path: page.URL, Title: page.Title}
		var text []string
		for _, line := range strings.Split(string(sources[page.SrcPath]), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "#") {
				text = append(text, strings.TrimSpace(strings.TrimLeft(line, "#")))
				continue
			}
			if entry.Summary == "" {
				entry.Summary = line
			}
			text = append(text, line)
		}
		content := strings.Join(text, " ")
		if len(content) > maxSearchContent {
			content = content[:maxSearchContent]
		}
		entry.Content = content
		entries = append(entries, entry)
	}
	return entries
}

// WriteSearchIndex writes entries as JSON to outputPath.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

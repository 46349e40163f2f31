package site

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// NavNode is a node of the sidebar navigation. Directories have children;
// leaves point at a page.
type NavNode struct {
	Name     string
	Label    string
	Dir      string // slash separated directory path, empty for the root
	Page     *Page
	Children []*NavNode
}

// BuildNav arranges pages into a directory tree, directories before pages,
// each group sorted by name.
func BuildNav(pages []*Page) *NavNode {
	root := &NavNode{Name: "docs"}
	for _, page := range pages {
		parts := strings.Split(page.SrcPath, "/")
		node := root
		for i, part := range parts[:len(parts)-1] {
			node = node.child(part, strings.Join(parts[:i+1], "/"))
		}
		node.Children = append(node.Children, &NavNode{
			Name:  parts[len(parts)-1],
			Label: page.Title,
			Page:  page,
		})
	}
	root.sort()
	return root
}

// child returns the directory child called name, creating it if needed.
func (n *NavNode) child(name, dir string) *NavNode {
	for _, c := range n.Children {
		if c.Page == nil && c.Name == name {
			return c
		}
	}
	c := &NavNode{Name: name, Label: formatDirName(name), Dir: dir}
	n.Children = append(n.Children, c)
	return c
}

func (n *NavNode) sort() {
	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if (a.Page == nil) != (b.Page == nil) {
			return a.Page == nil
		}
		return a.Name < b.Name
	})
	for _, c := range n.Children {
		if c.Page == nil {
			c.sort()
		}
	}
}

// ToHTML renders the tree as nested lists. Directories on the path to
// activePath are expanded and the active page is marked.
func (n *NavNode) ToHTML(activePath, basePath string) string {
	var b strings.Builder
	homeClass := ""
	if activePath == "index.md" {
		homeClass = ` class="active"`
	}
	fmt.Fprintf(&b, `<ul><li class="file home-link"><a href="%sindex.html"%s>Home</a></li></ul>`+"\n", basePath, homeClass)
	n.writeChildren(&b, activePath, basePath)
	return b.String()
}

func (n *NavNode) writeChildren(b *strings.Builder, activePath, basePath string) {
	if len(n.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, c := range n.Children {
		if c.Page == nil {
			state := ""
			if strings.HasPrefix(activePath, c.Dir+"/") {
				state = " expanded"
			}
			fmt.Fprintf(b, `<li class="dir%s"><span class="dir-toggle">%s</span>`+"\n", state, html.EscapeString(c.Label))
			c.writeChildren(b, activePath, basePath)
			b.WriteString("</li>\n")
			continue
		}
		if c.Page.SrcPath == "index.md" {
			continue
		}
		active := ""
		if c.Page.SrcPath == activePath {
			active = ` class="active"`
		}
		fmt.Fprintf(b, `<li class="file"><a href="%s%s"%s>%s</a></li>`+"\n", basePath, c.Page.URL, active, html.EscapeString(c.Label))
	}
	b.WriteString("</ul>\n")
}

// formatDirName title-cases a directory slug for display.
func formatDirName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

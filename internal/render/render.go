package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"regexp"
	"strings"

	"github.com/ziadkadry99/headerdrop/internal/dropdown"
)

// InjectedMarker prefixes every block of dropdown markup. A page that already
// contains it is never injected again.
const InjectedMarker = "<!-- header-dropdown:injected -->"

// dropdownsPartial is the template shared by text injection and the
// override templates.
const dropdownsPartial = "partials/header-dropdowns.html"

//go:embed templates
var templateFiles embed.FS

var dropdownsTmpl = template.Must(template.ParseFS(templateFiles, "templates/"+dropdownsPartial))

// anchor is a splice point in a rendered page. Markup goes after the match
// when after is set, before it otherwise.
type anchor struct {
	name  string
	re    *regexp.Regexp
	after bool
}

// anchors are tried in order; the first match wins.
var anchors = []anchor{
	{name: "search", re: regexp.MustCompile(`(?s)<!--\s*Search interface\s*-->.*?</form>`), after: true},
	{name: "repository", re: regexp.MustCompile(`<!--\s*Repository information\s*-->`), after: false},
}

// FindAnchor returns the byte offset at which dropdown markup belongs in page
// and the name of the anchor that matched.
func FindAnchor(page string) (offset int, name string, ok bool) {
	for _, a := range anchors {
		loc := a.re.FindStringIndex(page)
		if loc == nil {
			continue
		}
		if a.after {
			return loc[1], a.name, true
		}
		return loc[0], a.name, true
	}
	return 0, "", false
}

// Markup renders the widgets, shared style and behavior script for dropdowns.
// It returns an empty string when there is nothing to render.
func Markup(dropdowns []dropdown.Spec) (string, error) {
	if len(dropdowns) == 0 {
		return "", nil
	}
	var b bytes.Buffer
	b.WriteString(InjectedMarker)
	b.WriteString("\n")
	if err := dropdownsTmpl.Execute(&b, dropdowns); err != nil {
		return "", fmt.Errorf("rendering dropdown markup: %w", err)
	}
	return b.String(), nil
}

// Inject splices dropdown markup into an already rendered page. Pages with
// no anchor, pages already injected, and calls with no dropdowns return page
// unchanged.
func Inject(page string, dropdowns []dropdown.Spec) (string, error) {
	if len(dropdowns) == 0 || strings.Contains(page, InjectedMarker) {
		return page, nil
	}
	offset, _, ok := FindAnchor(page)
	if !ok {
		return page, nil
	}
	markup, err := Markup(dropdowns)
	if err != nil {
		return "", err
	}
	return page[:offset] + markup + page[offset:], nil
}

// Overrides returns the template tree that shadows the host theme's header.
func Overrides() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

package site

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func TestThemeLookup(t *testing.T) {
	theme := DefaultTheme()
	override := fstest.MapFS{"partials/header.html": {Data: []byte("x")}}
	theme.Prepend(override)

	layer, ok := theme.Lookup("partials/header.html")
	if !ok {
		t.Fatal("header not found")
	}
	if _, isOverride := layer.(fstest.MapFS); !isOverride {
		t.Error("header should resolve to the prepended layer")
	}

	if _, ok := theme.Lookup("partials/sidebar.html"); !ok {
		t.Error("sidebar should resolve to the base layer")
	}
	if _, ok := theme.Lookup("partials/missing.html"); ok {
		t.Error("missing template should not resolve")
	}
}

func TestThemeParseRequiresMain(t *testing.T) {
	theme := &Theme{layers: nil}
	theme.Prepend(fstest.MapFS{"partials/header.html": {Data: []byte("x")}})

	if _, err := theme.Parse(); err == nil || !strings.Contains(err.Error(), "main.html") {
		t.Errorf("err = %v, want missing main.html", err)
	}
}

func TestThemeCommentFunc(t *testing.T) {
	theme := &Theme{}
	theme.Prepend(fstest.MapFS{"main.html": {Data: []byte(`<p>{{comment "Search interface"}}</p><!-- stripped -->`)}})

	tmpl, err := theme.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "main.html", nil); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "<p><!-- Search interface --></p>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

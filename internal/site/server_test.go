package site

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendBeforeBodyEnd(t *testing.T) {
	tests := []struct {
		page, want string
	}{
		{"<body>a</body></html>", "<body>a<s></body></html>"},
		{"<body>a</body>b</body>", "<body>a</body>b<s></body>"},
		{"fragment", "fragment<s>"},
	}
	for _, tt := range tests {
		if got := AppendBeforeBodyEnd(tt.page, "<s>"); got != tt.want {
			t.Errorf("AppendBeforeBodyEnd(%q) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func serveSite(t *testing.T, live bool) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html><body>hi</body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(NewRouter(dir, false, live, newReloadHub()))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestRouterLiveReload(t *testing.T) {
	srv := serveSite(t, true)

	page := get(t, srv.URL+"/index.html")
	if !strings.Contains(page, liveReloadPath) || !strings.HasSuffix(page, "</body></html>") {
		t.Errorf("reload client not spliced before </body>: %q", page)
	}
	if dir := get(t, srv.URL+"/"); !strings.Contains(dir, liveReloadPath) {
		t.Error("directory index should also get the reload client")
	}
	if css := get(t, srv.URL+"/style.css"); css != "body{}" {
		t.Errorf("style.css = %q", css)
	}
}

func TestRouterStatic(t *testing.T) {
	srv := serveSite(t, false)

	if page := get(t, srv.URL+"/index.html"); strings.Contains(page, liveReloadPath) {
		t.Error("reload client should only be added in live mode")
	}
	if got := get(t, srv.URL+"/healthz"); got != "ok" {
		t.Errorf("healthz = %q", got)
	}
}

package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/headerdrop/internal/logger"
)

// liveReloadPath is the websocket endpoint browsers listen on for reloads.
const liveReloadPath = "/livereload"

// rebuildDebounce groups bursts of file events into one rebuild.
const rebuildDebounce = 250 * time.Millisecond

// liveReloadScript reconnects to the server and reloads on every message.
const liveReloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "` + liveReloadPath + `");
  ws.onmessage = function () { location.reload(); };
})();
</script>
`

// ServeOptions configures the preview server.
type ServeOptions struct {
	Dir      string
	Port     int
	Open     bool
	AllowAll bool

	// WatchDir enables live reload: changes below it trigger Rebuild and a
	// browser reload.
	WatchDir string
	Rebuild  func(ctx context.Context) error
}

// Serve serves a built site until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions) error {
	log := logger.FromContext(ctx)
	hub := newReloadHub()
	live := opts.WatchDir != "" && opts.Rebuild != nil

	if live {
		watcher, err := watchTree(opts.WatchDir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", opts.WatchDir, err)
		}
		defer watcher.Close()
		go runWatcher(ctx, watcher, opts.Rebuild, hub)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts.Dir, opts.AllowAll, live, hub),
		ReadHeaderTimeout: 10 * time.Second,
	}

	url := fmt.Sprintf("http://localhost:%d", opts.Port)
	if opts.Open {
		go openBrowser(url)
	}
	log.Info("serving site", "url", url, "dir", opts.Dir, "live_reload", live)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		hub.closeAll()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter returns the preview handler for a site directory. When live is
// set, HTML pages are served with the reload client appended.
func NewRouter(dir string, allowAll, live bool, hub *ReloadHub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		MaxAge:         300,
	}
	if allowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	root := http.Dir(dir)
	files := http.FileServer(root)
	if live && hub != nil {
		r.Get(liveReloadPath, hub.ServeHTTP)
		r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
			if serveLivePage(w, req, root) {
				return
			}
			files.ServeHTTP(w, req)
		})
		return r
	}
	r.Handle("/*", files)
	return r
}

// serveLivePage writes an HTML page with the reload client spliced in. It
// reports false when the request is not for an HTML page.
func serveLivePage(w http.ResponseWriter, req *http.Request, root http.FileSystem) bool {
	name := path.Clean("/" + req.URL.Path)
	if strings.HasSuffix(req.URL.Path, "/") {
		name = path.Join(name, "index.html")
	}
	if path.Ext(name) != ".html" {
		return false
	}
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, AppendBeforeBodyEnd(string(data), liveReloadScript))
	return true
}

// AppendBeforeBodyEnd inserts snippet before the last </body>, or appends it
// when the page has none.
func AppendBeforeBodyEnd(page, snippet string) string {
	idx := strings.LastIndex(page, "</body>")
	if idx == -1 {
		return page + snippet
	}
	return page[:idx] + snippet + page[idx:]
}

// ReloadHub tracks connected live reload clients.
type ReloadHub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
}

func newReloadHub() *ReloadHub {
	return &ReloadHub{
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:  make(map[*websocket.Conn]struct{}),
	}
}

func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.FromContext(r.Context()).Error(err, "live reload upgrade failed")
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	// Drain until the browser goes away.
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast tells every connected browser to reload.
func (h *ReloadHub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *ReloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	delete(h.clients, conn)
}

func (h *ReloadHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// watchTree watches dir and all of its subdirectories.
func watchTree(dir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// runWatcher rebuilds after each burst of changes and notifies browsers.
func runWatcher(ctx context.Context, watcher *fsnotify.Watcher, rebuild func(context.Context) error, hub *ReloadHub) {
	log := logger.FromContext(ctx)
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = watcher.Add(ev.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(rebuildDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			if err := rebuild(ctx); err != nil {
				log.Error(err, "rebuild failed")
				continue
			}
			hub.Broadcast()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error(err, "file watcher error")
		}
	}
}

// openBrowser opens url in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

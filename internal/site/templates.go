package site

// cssContent is the stylesheet of the built-in theme.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --bg-header: #3f51b5;
  --text: #212529;
  --text-header: #ffffff;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #3f51b5;
  --code-bg: #f1f3f5;
  --sidebar-width: 280px;
  --content-max-width: 900px;
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-sidebar: #16171f;
  --bg-header: #24283b;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --code-bg: #1f2030;
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
  display: flex;
  min-height: 100vh;
}

.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0;
  bottom: 0;
  left: 0;
  overflow-y: auto;
  z-index: 100;
}

.sidebar-header { padding: 16px; border-bottom: 1px solid var(--border); }
.project-title { font-weight: 700; color: var(--accent); text-decoration: none; }
.sidebar-tree { padding: 8px 0; font-size: 0.9rem; }
.sidebar-tree ul { list-style: none; }
.sidebar-tree ul ul { padding-left: 14px; }
.sidebar-tree a { display: block; padding: 3px 16px; color: var(--text); text-decoration: none; }
.sidebar-tree a.active { color: var(--accent); font-weight: 600; }
.sidebar-tree .dir > ul { display: none; }
.sidebar-tree .dir.expanded > ul { display: block; }
.sidebar-tree .dir-toggle { display: block; padding: 3px 16px; cursor: pointer; font-weight: 600; }
.sidebar-tree .hidden { display: none; }
.sidebar-overlay { display: none; }

.content { margin-left: var(--sidebar-width); flex: 1; min-width: 0; }

.top-bar {
  position: sticky;
  top: 0;
  z-index: 50;
  display: flex;
  align-items: center;
  gap: 12px;
  height: 48px;
  padding: 0 16px;
  background: var(--bg-header);
  color: var(--text-header);
}

.top-bar__title { flex: 1; font-weight: 600; white-space: nowrap; overflow: hidden; text-overflow: ellipsis; }
.top-bar__source { color: var(--text-header); text-decoration: none; font-size: 0.85rem; }
.menu-toggle, .theme-toggle { display: flex; border: 0; background: transparent; color: inherit; cursor: pointer; }
.menu-toggle { display: none; }

.search__form input {
  width: 220px;
  padding: 4px 10px;
  border: 0;
  border-radius: 4px;
  font-size: 0.85rem;
}

.page-content { max-width: var(--content-max-width); padding: 32px 40px; }
.page-content h1, .page-content h2, .page-content h3 { margin: 1.2em 0 0.5em; line-height: 1.3; }
.page-content p, .page-content ul, .page-content ol, .page-content pre, .page-content table { margin-bottom: 1em; }
.page-content ul, .page-content ol { padding-left: 1.5em; }
.page-content a { color: var(--accent); }
.page-content code { background: var(--code-bg); padding: 1px 4px; border-radius: 3px; font-size: 0.9em; }
.page-content pre { padding: 12px; overflow-x: auto; border-radius: 6px; background: var(--code-bg); }
.page-content pre code { padding: 0; background: none; }
.page-content table { border-collapse: collapse; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 6px 10px; }

@media (max-width: 900px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.2s; }
  .sidebar.open { transform: none; }
  .sidebar-overlay.visible { display: block; position: fixed; inset: 0; background: rgba(0, 0, 0, 0.3); z-index: 90; }
  .content { margin-left: 0; }
  .menu-toggle { display: flex; }
  .search__form input { width: 140px; }
}
`

// jsContent drives the built-in theme: dark mode, the mobile sidebar and the
// sidebar filter backed by search-index.json.
const jsContent = `(function () {
  "use strict";

  var root = document.documentElement;

  function setTheme(theme) {
    root.setAttribute("data-theme", theme);
    try { localStorage.setItem("headerdrop-theme", theme); } catch (e) {}
  }

  var stored = null;
  try { stored = localStorage.getItem("headerdrop-theme"); } catch (e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function () {
      setTheme(root.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");
  function toggleSidebar() {
    if (sidebar) sidebar.classList.toggle("open");
    if (overlay) overlay.classList.toggle("visible");
  }
  var menuToggle = document.getElementById("menu-toggle");
  if (menuToggle) menuToggle.addEventListener("click", toggleSidebar);
  if (overlay) overlay.addEventListener("click", toggleSidebar);

  document.querySelectorAll(".dir-toggle").forEach(function (toggle) {
    toggle.addEventListener("click", function () {
      this.parentElement.classList.toggle("expanded");
    });
  });

  var tree = document.getElementById("sidebar-tree");
  var input = document.getElementById("search-input");
  if (!tree || !input) return;

  var index = [];
  var css = document.querySelector("link[rel=stylesheet]");
  var base = css ? css.getAttribute("href").replace("style.css", "") : "";
  fetch(base + "search-index.json")
    .then(function (r) { return r.json(); })
    .then(function (data) { index = data || []; })
    .catch(function () { index = []; });

  input.addEventListener("input", function () {
    var query = this.value.toLowerCase().trim();
    var matches = {};
    index.forEach(function (entry) {
      var text = (entry.title + " " + entry.summary + " " + entry.content).toLowerCase();
      if (query && text.indexOf(query) !== -1) matches[entry.path] = true;
    });

    tree.querySelectorAll("li.file").forEach(function (item) {
      var link = item.querySelector("a");
      if (!link) return;
      var path = link.getAttribute("href").replace(/^(\.\.\/)+/, "");
      var hit = !query || link.textContent.toLowerCase().indexOf(query) !== -1 || matches[path];
      item.classList.toggle("hidden", !hit);
    });
    Array.prototype.slice.call(tree.querySelectorAll("li.dir")).reverse().forEach(function (dir) {
      var visible = dir.querySelectorAll("li.file:not(.hidden)").length > 0;
      dir.classList.toggle("hidden", !visible);
      if (query && visible) dir.classList.add("expanded");
    });
  });
})();
`

package dropdown

const (
	// ExtraKey is the build extras key under which the resolved dropdowns are published.
	ExtraKey = "header_dropdowns"

	// PluginIconPrefix marks an icon path as relative to the bundled plugin assets.
	PluginIconPrefix = "__plugin__/"

	// AssetsDir is the subdirectory of the site output that receives bundled assets.
	AssetsDir = "header-dropdown-assets"

	// AssetsURLPrefix is the public URL prefix of AssetsDir.
	AssetsURLPrefix = "/" + AssetsDir + "/"

	// DefaultLinkURL is used for links configured without a url.
	DefaultLinkURL = "#"
)

// Link is one clickable entry inside a dropdown panel.
type Link struct {
	Text   string `yaml:"text" koanf:"text"`
	URL    string `yaml:"url" koanf:"url"`
	Target string `yaml:"target,omitempty" koanf:"target"`
}

// Spec describes a single header dropdown: its trigger label, an optional
// icon and the ordered links shown in its panel.
type Spec struct {
	Title string `yaml:"title" koanf:"title"`
	Icon  string `yaml:"icon,omitempty" koanf:"icon"`
	Links []Link `yaml:"links" koanf:"links"`
}

// Clone returns a copy of s that shares no memory with it.
func (s Spec) Clone() Spec {
	out := s
	if s.Links != nil {
		out.Links = make([]Link, len(s.Links))
		copy(out.Links, s.Links)
	}
	return out
}

// normalize fills link defaults and rewrites the icon path.
func (s Spec) normalize() Spec {
	out := s.Clone()
	out.Icon = RewriteIcon(out.Icon)
	for i := range out.Links {
		if out.Links[i].URL == "" {
			out.Links[i].URL = DefaultLinkURL
		}
	}
	return out
}

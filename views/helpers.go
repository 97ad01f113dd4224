package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/eringen/showcase/catalog"
)

// Component adapts a gomponents node to templ.Component so the server can
// render every view through one contract.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// absoluteURL resolves ref against base. It returns ref unchanged when
// either fails to parse or base is empty.
func absoluteURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil || base == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// PlaceholderImage is used for projects without an image.
const PlaceholderImage = "/placeholder.png"

func imageSrc(p *catalog.Project) string {
	if strings.TrimSpace(p.Image) == "" {
		return PlaceholderImage
	}
	return p.Image
}

func siteTitle(cfg SiteConfig) string {
	return strings.TrimSpace(possessive(cfg.Owner) + " " + cfg.Accent)
}

// PortfolioJsonLD produces a Schema.org CollectionPage block listing the
// projects.
func PortfolioJsonLD(cfg SiteConfig, projects []*catalog.Project) string {
	items := make([]map[string]interface{}, 0, len(projects))
	for i, p := range projects {
		items = append(items, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     p.Title,
			"url":      BuildURL(cfg.URL, "projects", p.ID),
		})
	}
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "CollectionPage",
		"name":        siteTitle(cfg),
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
		"mainEntity": map[string]interface{}{
			"@type":           "ItemList",
			"itemListElement": items,
		},
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func possessive(name string) string {
	if name == "" {
		return ""
	}
	return name + "'s"
}

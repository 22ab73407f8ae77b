package blogsite

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
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

// WebsiteJsonLD returns a Schema.org WebSite JSON-LD block. Social links
// become the author's sameAs profiles.
func WebsiteJsonLD(sc SiteConfig, cfg Configuration) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     sc.Name,
		"url":      BuildURL(sc.URL),
	}
	if desc := cfg.BlogDescription(); desc != "" {
		data["description"] = desc
	}
	if sc.Author != "" {
		author := map[string]interface{}{
			"@type": "Person",
			"name":  sc.Author,
		}
		if links := cfg.SocialLinks(); len(links) > 0 {
			sameAs := make([]string, 0, len(links))
			for _, l := range links {
				sameAs = append(sameAs, l.URL)
			}
			author["sameAs"] = sameAs
		}
		data["author"] = author
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

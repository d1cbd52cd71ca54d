// Package sitemap renders the sitemap and robots.txt for the single-page site.
package sitemap

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// Build returns the sitemap for baseURL, stamped with now.
func Build(baseURL string, now time.Time) ([]byte, error) {
	if baseURL == "" {
		return nil, errors.New("sitemap: base URL is required")
	}

	set := urlSet{
		XMLNS: namespace,
		URLs: []url{{
			Loc:        strings.TrimRight(baseURL, "/") + "/",
			LastMod:    now.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   1,
		}},
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "sitemap: marshal")
	}
	return append([]byte(xml.Header), out...), nil
}

// Robots allows every crawler and points at the sitemap.
func Robots(baseURL string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(baseURL, "/") + "/sitemap.xml\n"
}

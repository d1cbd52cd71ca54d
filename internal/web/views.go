package web

import (
	"bytes"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/athaploo/portfolio/internal/content"
	"github.com/athaploo/portfolio/internal/portfolio"
	"github.com/yuin/goldmark"
)

// pageView feeds index.html.
type pageView struct {
	Profile content.Profile
	About   template.HTML
	Browser browserView
	Modal   *detailView
	BaseURL string
	Year    int
}

// browserView feeds browser.html: the tab bar plus the active list.
type browserView struct {
	Tabs   []tabView
	Active string
	Cards  []cardView
	Chips  []chipView
}

type tabView struct {
	Key    string
	Label  string
	Active bool
}

// cardView is one list card. Teaser and TeaserList are mutually exclusive.
type cardView struct {
	Title       string
	Subtitle    string
	Small       string
	Tags        []string
	TeaserLabel string
	Teaser      string
	TeaserList  []string
	Href        string
}

type chipView struct {
	Label string
	Href  string
}

// detailView is a portfolio.Payload flattened for templates and JSON.
type detailView struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Meta     []metaView `json:"meta,omitempty"`
	Body     *bodyView  `json:"body,omitempty"`
}

type metaView struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

type bodyView struct {
	Kind     string   `json:"kind"`
	Problem  string   `json:"problem,omitempty"`
	Approach string   `json:"approach,omitempty"`
	Outcomes []string `json:"outcomes,omitempty"`
	Text     string   `json:"text,omitempty"`
	Items    []string `json:"items,omitempty"`
}

const (
	bodySections = "sections"
	bodyText     = "text"
	bodyList     = "list"
)

func focusHref(sel portfolio.Selection) string {
	q := url.Values{}
	if sel.Category.Indexed() {
		q.Set("index", strconv.Itoa(sel.Index))
	} else {
		q.Set("label", sel.Label)
	}
	return "/focus/" + sel.Category.String() + "?" + q.Encode()
}

func newBrowserView(p *content.Portfolio, active portfolio.Category) browserView {
	v := browserView{Active: active.Key()}
	for _, t := range portfolio.Tabs() {
		v.Tabs = append(v.Tabs, tabView{Key: t.Key, Label: t.Label, Active: t.Category == active})
	}

	switch active {
	case portfolio.CategoryProject:
		for i, pr := range p.Projects {
			v.Cards = append(v.Cards, cardView{
				Title:       pr.Title,
				Tags:        pr.Tags,
				TeaserLabel: "Problem",
				Teaser:      pr.Problem,
				Href:        focusHref(portfolio.Item(active, i)),
			})
		}
	case portfolio.CategoryExperience:
		for i, e := range p.Experience {
			v.Cards = append(v.Cards, cardView{
				Title:       e.Role,
				Subtitle:    e.Organization,
				Small:       e.Dates + " • " + e.Location,
				TeaserLabel: "Problem",
				Teaser:      e.Problem,
				Href:        focusHref(portfolio.Item(active, i)),
			})
		}
	case portfolio.CategorySkill:
		for _, s := range p.Skills {
			v.Chips = append(v.Chips, chipView{Label: s, Href: focusHref(portfolio.Skill(s))})
		}
	case portfolio.CategoryEducation:
		for i, ed := range p.Education {
			v.Cards = append(v.Cards, cardView{
				Title:    ed.Institution,
				Subtitle: ed.Program,
				Small:    ed.Dates,
				Teaser:   ed.Details,
				Href:     focusHref(portfolio.Item(active, i)),
			})
		}
	case portfolio.CategoryHonor:
		for i, h := range p.Honors {
			card := cardView{
				Title: h.Title,
				Small: h.Organization,
				Href:  focusHref(portfolio.Item(active, i)),
			}
			setTeaser(&card, h.Description, 0)
			v.Cards = append(v.Cards, card)
		}
	case portfolio.CategoryCertification:
		for i, c := range p.Certifications {
			small := c.Organization
			if c.Date != "" {
				small += " • " + c.Date
			}
			if c.CredentialID != "" {
				small += " • ID: " + c.CredentialID
			}
			card := cardView{
				Title: c.Title,
				Small: small,
				Tags:  c.Tags,
				Href:  focusHref(portfolio.Item(active, i)),
			}
			setTeaser(&card, c.Description, 3)
			v.Cards = append(v.Cards, card)
		}
	}
	return v
}

// setTeaser copies a description onto a card, truncating lists to limit
// entries when limit is positive.
func setTeaser(card *cardView, d content.Description, limit int) {
	switch d := d.(type) {
	case content.Text:
		card.Teaser = string(d)
	case content.List:
		items := []string(d)
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		card.TeaserList = items
	}
}

// newDetailView flattens p. Text bodies stay plain text; only the profile
// about block is rendered as markdown.
func newDetailView(p portfolio.Payload) *detailView {
	v := &detailView{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Tags:     p.Tags,
	}

	for _, m := range p.Meta {
		switch m := m.(type) {
		case portfolio.MetaText:
			v.Meta = append(v.Meta, metaView{Text: string(m)})
		case portfolio.MetaLink:
			v.Meta = append(v.Meta, metaView{Text: m.Label, URL: m.URL})
		}
	}

	switch b := p.Body.(type) {
	case portfolio.SectionsBody:
		v.Body = &bodyView{Kind: bodySections, Problem: b.Problem, Approach: b.Approach, Outcomes: b.Outcomes}
	case portfolio.TextBody:
		v.Body = &bodyView{Kind: bodyText, Text: string(b)}
	case portfolio.ListBody:
		v.Body = &bodyView{Kind: bodyList, Items: []string(b)}
	}
	return v
}

// renderProse converts a prose block to HTML. Raw HTML in the source is
// dropped by goldmark's default renderer; on failure the text is escaped.
func renderProse(md goldmark.Markdown, text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>")
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

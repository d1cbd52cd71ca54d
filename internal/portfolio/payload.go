package portfolio

import (
	"fmt"
	"slices"

	"github.com/athaploo/portfolio/internal/content"
)

// ProjectSubtitle is the fixed subtitle of every project detail.
const ProjectSubtitle = "Problem • Approach • Outcomes"

// Payload is everything the detail modal renders for one selection. Empty
// Subtitle and nil Tags, Meta or Body mean the piece is absent.
type Payload struct {
	Title    string
	Subtitle string
	Tags     []string
	Meta     []MetaPart
	Body     Body
}

// MetaPart is one piece of the small print under the title.
type MetaPart interface {
	metaPart()
}

// MetaText is plain small print.
type MetaText string

// MetaLink opens URL in a new browsing context.
type MetaLink struct {
	Label string
	URL   string
}

func (MetaText) metaPart() {}
func (MetaLink) metaPart() {}

// Body is the main block of a detail view.
type Body interface {
	body()
}

// SectionsBody is the Problem / Approach / Outcomes layout.
type SectionsBody struct {
	Problem  string
	Approach string
	Outcomes []string
}

// TextBody is a single paragraph.
type TextBody string

// ListBody is an ordered list of entries.
type ListBody []string

func (SectionsBody) body() {}
func (TextBody) body()     {}
func (ListBody) body()     {}

// Derive computes the detail payload for sel. It reports false when sel does
// not resolve to an item: an index outside its collection, or a skill with no
// label.
func Derive(p *content.Portfolio, sel Selection) (Payload, bool) {
	if p == nil {
		return Payload{}, false
	}

	switch sel.Category {
	case CategoryProject:
		if !inRange(sel.Index, len(p.Projects)) {
			return Payload{}, false
		}
		pr := p.Projects[sel.Index]
		return Payload{
			Title:    pr.Title,
			Subtitle: ProjectSubtitle,
			Tags:     slices.Clone(pr.Tags),
			Body: SectionsBody{
				Problem:  pr.Problem,
				Approach: pr.Approach,
				Outcomes: slices.Clone(pr.Outcomes),
			},
		}, true

	case CategoryExperience:
		if !inRange(sel.Index, len(p.Experience)) {
			return Payload{}, false
		}
		e := p.Experience[sel.Index]
		return Payload{
			Title:    fmt.Sprintf("%s — %s", e.Role, e.Organization),
			Subtitle: fmt.Sprintf("%s • %s", e.Dates, e.Location),
			Body: SectionsBody{
				Problem:  e.Problem,
				Approach: e.Approach,
				Outcomes: slices.Clone(e.Outcomes),
			},
		}, true

	case CategoryEducation:
		if !inRange(sel.Index, len(p.Education)) {
			return Payload{}, false
		}
		ed := p.Education[sel.Index]
		out := Payload{
			Title:    ed.Institution,
			Subtitle: ed.Program,
			Meta:     []MetaPart{MetaText(ed.Dates)},
		}
		if ed.Details != "" {
			out.Body = TextBody(ed.Details)
		}
		return out, true

	case CategoryHonor:
		if !inRange(sel.Index, len(p.Honors)) {
			return Payload{}, false
		}
		h := p.Honors[sel.Index]
		return Payload{
			Title:    h.Title,
			Subtitle: h.Organization,
			Body:     descriptionBody(h.Description),
		}, true

	case CategoryCertification:
		if !inRange(sel.Index, len(p.Certifications)) {
			return Payload{}, false
		}
		c := p.Certifications[sel.Index]
		return Payload{
			Title:    c.Title,
			Subtitle: c.Organization,
			Tags:     slices.Clone(c.Tags),
			Meta:     certificationMeta(c),
			Body:     descriptionBody(c.Description),
		}, true

	case CategorySkill:
		if sel.Label == "" {
			return Payload{}, false
		}
		return Payload{
			Title: sel.Label,
			Body:  TextBody(SkillBlurb(p.Profile)),
		}, true
	}

	return Payload{}, false
}

// SkillBlurb is the body shown for any skill chip.
func SkillBlurb(profile content.Profile) string {
	return fmt.Sprintf("One of %s’s core tools/skills used across projects and experience.", profile.FirstName())
}

func certificationMeta(c content.Certification) []MetaPart {
	var meta []MetaPart
	if c.Date != "" {
		meta = append(meta, MetaText("Issued: "+c.Date))
	}
	if c.CredentialID != "" {
		meta = append(meta, MetaText("Credential ID: "+c.CredentialID))
	}
	if c.VerifyURL != "" {
		meta = append(meta, MetaLink{Label: "Verify", URL: c.VerifyURL})
	}
	return meta
}

func descriptionBody(d content.Description) Body {
	switch d := d.(type) {
	case content.Text:
		if d == "" {
			return nil
		}
		return TextBody(d)
	case content.List:
		return ListBody(slices.Clone(d))
	}
	return nil
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

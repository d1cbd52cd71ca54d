// Package portfolio is the interactive core shared by the web and terminal
// front ends: which tab is active, which item is focused, and what the detail
// view for that item contains.
//
// Nothing in this package is safe for concurrent use. Each front end owns one
// TabController and one FocusResolver per viewer and serialises access to them.
package portfolio

import (
	"github.com/pkg/errors"
)

// Category identifies one content collection.
type Category int

const (
	CategoryProject Category = iota
	CategoryExperience
	CategorySkill
	CategoryEducation
	CategoryHonor
	CategoryCertification
)

// Tab is one entry of the tab bar.
type Tab struct {
	Category Category
	Key      string
	Label    string
}

// tabs is in display order.
var tabs = []Tab{
	{Category: CategoryProject, Key: "projects", Label: "Projects"},
	{Category: CategoryExperience, Key: "experience", Label: "Professional Experience"},
	{Category: CategorySkill, Key: "skills", Label: "Skills"},
	{Category: CategoryEducation, Key: "education", Label: "Education"},
	{Category: CategoryHonor, Key: "honors", Label: "Honors & Awards"},
	{Category: CategoryCertification, Key: "certifications", Label: "Certifications"},
}

var names = map[Category]string{
	CategoryProject:       "project",
	CategoryExperience:    "experience",
	CategorySkill:         "skill",
	CategoryEducation:     "education",
	CategoryHonor:         "honor",
	CategoryCertification: "certification",
}

// Tabs returns the tab bar entries in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// String returns the singular category name, e.g. "project".
func (c Category) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "unknown"
}

// Key returns the tab key, e.g. "projects".
func (c Category) Key() string {
	for _, t := range tabs {
		if t.Category == c {
			return t.Key
		}
	}
	return ""
}

// Label returns the tab label shown to the viewer.
func (c Category) Label() string {
	for _, t := range tabs {
		if t.Category == c {
			return t.Label
		}
	}
	return ""
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	_, ok := names[c]
	return ok
}

// Indexed reports whether selections in c refer to a position in a
// collection. Only skills are selected by label.
func (c Category) Indexed() bool {
	return c != CategorySkill
}

// ParseCategory accepts a singular category name or a tab key.
func ParseCategory(s string) (Category, error) {
	for c, n := range names {
		if n == s {
			return c, nil
		}
	}
	for _, t := range tabs {
		if t.Key == s {
			return t.Category, nil
		}
	}
	return 0, errors.Errorf("unknown category %q", s)
}

// Next returns the category after c in tab order, wrapping around.
func (c Category) Next() Category {
	for i, t := range tabs {
		if t.Category == c {
			return tabs[(i+1)%len(tabs)].Category
		}
	}
	return CategoryProject
}

// Prev returns the category before c in tab order, wrapping around.
func (c Category) Prev() Category {
	for i, t := range tabs {
		if t.Category == c {
			return tabs[(i+len(tabs)-1)%len(tabs)].Category
		}
	}
	return CategoryProject
}

package portfolio

import (
	"github.com/athaploo/portfolio/internal/content"
)

// Selection names one item under detail inspection. Index is meaningful for
// indexed categories, Label for skills.
type Selection struct {
	Category Category
	Index    int
	Label    string
}

// Item selects the item at index in an indexed category.
func Item(c Category, index int) Selection {
	return Selection{Category: c, Index: index}
}

// Skill selects a skill chip by its label.
func Skill(label string) Selection {
	return Selection{Category: CategorySkill, Label: label}
}

// FocusResolver owns the current selection and derives its detail payload.
type FocusResolver struct {
	content  *content.Portfolio
	selected *Selection
}

// NewFocusResolver returns a resolver with nothing selected.
func NewFocusResolver(p *content.Portfolio) *FocusResolver {
	return &FocusResolver{content: p}
}

// Open replaces the selection with sel. A selection that does not resolve to
// an item clears the selection instead.
func (f *FocusResolver) Open(sel Selection) {
	if _, ok := Derive(f.content, sel); !ok {
		f.selected = nil
		return
	}
	f.selected = &sel
}

// Close clears the selection. Closing with nothing open is a no-op.
func (f *FocusResolver) Close() {
	f.selected = nil
}

// Selection returns the current selection, if any.
func (f *FocusResolver) Selection() (Selection, bool) {
	if f.selected == nil {
		return Selection{}, false
	}
	return *f.selected, true
}

// IsOpen reports whether an item is selected.
func (f *FocusResolver) IsOpen() bool {
	return f.selected != nil
}

// Payload derives the detail view for the current selection.
func (f *FocusResolver) Payload() (Payload, bool) {
	if f.selected == nil {
		return Payload{}, false
	}
	return Derive(f.content, *f.selected)
}

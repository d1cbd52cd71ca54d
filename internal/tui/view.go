package tui

import (
	"fmt"
	"strings"

	"github.com/athaploo/portfolio/internal/portfolio"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if payload, ok := m.focus.Payload(); ok {
		modal := m.renderModal(payload)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Name.Render(m.content.Profile.Name),
		m.styles.Headline.Width(m.width).Render(m.content.Profile.Headline),
	)
	tabBar := m.renderTabs()
	footer := m.styles.Footer.Render(m.help.View(m.keys))

	used := lipgloss.Height(header) + lipgloss.Height(tabBar) + lipgloss.Height(footer) + 2
	list := m.renderList(m.height - used)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", tabBar, "", list, footer)
}

func (m Model) renderTabs() string {
	current := m.tabs.Current()
	var parts []string
	for i, t := range portfolio.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if t.Category == current {
			parts = append(parts, m.styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(parts, " "))
}

// renderList draws the active collection, scrolled so the cursor is visible.
// Each entry takes two lines.
func (m Model) renderList(height int) string {
	current := m.tabs.Current()
	entries := m.entries(current)
	if len(entries) == 0 {
		return m.styles.ItemDetail.Render("Nothing here yet.")
	}

	visible := height / 2
	if visible < 1 {
		visible = 1
	}
	cursor := m.cursors[current]
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(entries) {
		end = len(entries)
	}

	var rows []string
	for i := start; i < end; i++ {
		e := entries[i]
		title := m.styles.Item.Render(e.title)
		if i == cursor {
			title = m.styles.SelectedItem.Render(e.title)
		}
		rows = append(rows, title, m.styles.ItemDetail.Render(e.detail))
	}
	return strings.Join(rows, "\n")
}

func (m Model) modalWidth() int {
	w := m.width - 4
	if w > maxModalWidth {
		w = maxModalWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderModal(p portfolio.Payload) string {
	inner := m.modalWidth() - 6
	wrap := lipgloss.NewStyle().Width(inner)

	lines := []string{m.styles.ModalTitle.Width(inner).Render(p.Title)}
	if p.Subtitle != "" {
		lines = append(lines, m.styles.ModalSubtitle.Width(inner).Render(p.Subtitle))
	}
	if len(p.Tags) > 0 {
		chips := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			chips = append(chips, m.styles.Chip.Render(t))
		}
		lines = append(lines, "", wrap.Render(strings.Join(chips, " ")))
	}
	if meta := renderMeta(p.Meta); meta != "" {
		lines = append(lines, m.styles.Meta.Width(inner).Render(meta))
	}

	switch b := p.Body.(type) {
	case portfolio.SectionsBody:
		lines = append(lines,
			m.styles.SectionHeader.Render("Problem"), wrap.Render(b.Problem),
			m.styles.SectionHeader.Render("Approach"), wrap.Render(b.Approach),
			m.styles.SectionHeader.Render("Outcomes"), wrap.Render(bullets(b.Outcomes)),
		)
	case portfolio.TextBody:
		lines = append(lines, "", wrap.Render(string(b)))
	case portfolio.ListBody:
		lines = append(lines, "", wrap.Render(bullets(b)))
	}

	lines = append(lines, m.styles.Footer.Render("esc close • tab next tab"))
	return m.styles.Modal.Width(m.modalWidth()).Render(strings.Join(lines, "\n"))
}

// renderMeta joins meta parts with bullets; links show their URL since a
// terminal cannot open a new browsing context.
func renderMeta(parts []portfolio.MetaPart) string {
	var out []string
	for _, p := range parts {
		switch p := p.(type) {
		case portfolio.MetaText:
			out = append(out, string(p))
		case portfolio.MetaLink:
			out = append(out, p.Label+": "+p.URL)
		}
	}
	return strings.Join(out, " • ")
}

func bullets(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
	return b.String()
}

// Package tui is a terminal rendition of the portfolio: the same tabs and
// detail view as the web page, driven from the keyboard.
package tui

import (
	"strings"

	"github.com/athaploo/portfolio/internal/content"
	"github.com/athaploo/portfolio/internal/portfolio"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	maxModalWidth = 80
)

// Model is the bubbletea model. It owns one TabController and one
// FocusResolver; bubbletea's update loop is the only writer.
type Model struct {
	content *content.Portfolio
	tabs    *portfolio.TabController
	focus   *portfolio.FocusResolver
	cursors map[portfolio.Category]int

	keys   Keymap
	styles Styles
	help   help.Model

	width  int
	height int
}

// New returns a model on the projects tab with nothing open.
func New(p *content.Portfolio) Model {
	return Model{
		content: p,
		tabs:    portfolio.NewTabController(),
		focus:   portfolio.NewFocusResolver(p),
		cursors: make(map[portfolio.Category]int),
		keys:    DefaultKeymap(),
		styles:  DefaultStyles(),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(p *content.Portfolio) error {
	if _, err := tea.NewProgram(New(p), tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "run terminal browser")
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus.IsOpen() {
			return m.updateModal(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Open):
		m.focus.Close()
	case key.Matches(msg, m.keys.NextTab):
		m.focus.Close()
		m.tabs.Activate(m.tabs.Current().Next())
	case key.Matches(msg, m.keys.PrevTab):
		m.focus.Close()
		m.tabs.Activate(m.tabs.Current().Prev())
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.tabs.Current()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Activate(current.Next())
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Activate(current.Prev())
	case key.Matches(msg, m.keys.JumpTab):
		tabs := portfolio.Tabs()
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(tabs) {
			m.tabs.Activate(tabs[i].Category)
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursors[current] > 0 {
			m.cursors[current]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursors[current] < m.itemCount(current)-1 {
			m.cursors[current]++
		}
	case key.Matches(msg, m.keys.Open):
		if sel, ok := m.selectionAtCursor(); ok {
			m.focus.Open(sel)
		}
	}
	return m, nil
}

func (m Model) itemCount(c portfolio.Category) int {
	switch c {
	case portfolio.CategoryProject:
		return len(m.content.Projects)
	case portfolio.CategoryExperience:
		return len(m.content.Experience)
	case portfolio.CategorySkill:
		return len(m.content.Skills)
	case portfolio.CategoryEducation:
		return len(m.content.Education)
	case portfolio.CategoryHonor:
		return len(m.content.Honors)
	case portfolio.CategoryCertification:
		return len(m.content.Certifications)
	}
	return 0
}

func (m Model) selectionAtCursor() (portfolio.Selection, bool) {
	current := m.tabs.Current()
	i := m.cursors[current]
	if i < 0 || i >= m.itemCount(current) {
		return portfolio.Selection{}, false
	}
	if current == portfolio.CategorySkill {
		return portfolio.Skill(m.content.Skills[i]), true
	}
	return portfolio.Item(current, i), true
}

// listEntry is one row of the active list: a title and a dimmed detail line.
type listEntry struct {
	title  string
	detail string
}

func (m Model) entries(c portfolio.Category) []listEntry {
	var out []listEntry
	switch c {
	case portfolio.CategoryProject:
		for _, p := range m.content.Projects {
			out = append(out, listEntry{p.Title, strings.Join(p.Tags, " · ")})
		}
	case portfolio.CategoryExperience:
		for _, e := range m.content.Experience {
			out = append(out, listEntry{e.Role, e.Organization + " • " + e.Dates})
		}
	case portfolio.CategorySkill:
		for _, s := range m.content.Skills {
			out = append(out, listEntry{title: s})
		}
	case portfolio.CategoryEducation:
		for _, ed := range m.content.Education {
			out = append(out, listEntry{ed.Institution, ed.Program})
		}
	case portfolio.CategoryHonor:
		for _, h := range m.content.Honors {
			out = append(out, listEntry{h.Title, h.Organization})
		}
	case portfolio.CategoryCertification:
		for _, cert := range m.content.Certifications {
			detail := cert.Organization
			if cert.Date != "" {
				detail += " • " + cert.Date
			}
			out = append(out, listEntry{cert.Title, detail})
		}
	}
	return out
}

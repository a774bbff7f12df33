// Package browse is the interactive catalog browser: a pattern list on the
// left, the full card for the selected pattern on the right.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonhull/magpie/pkg/catalog"
)

const listWidth = 30

// Lipgloss styles for the browser chrome
var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240"))
)

// Run starts the interactive browser over c. It blocks until the user quits.
func Run(c *catalog.Catalog) error {
	p := tea.NewProgram(newModel(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// model is the BubbleTea model for the browser
type model struct {
	entries  []catalog.Entry
	filtered []int // indexes into entries matching the filter
	filter   catalog.Category
	cursor   int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newModel(c *catalog.Catalog) model {
	m := model{entries: c.All()}
	m.applyFilter("")
	return m
}

// applyFilter rebuilds the visible list. An empty filter shows everything.
func (m *model) applyFilter(f catalog.Category) {
	m.filter = f
	m.filtered = m.filtered[:0]
	for i, e := range m.entries {
		if f == "" || e.Category == f {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// nextFilter cycles all → Creational → Structural → Behavioral → all.
func nextFilter(f catalog.Category) catalog.Category {
	cats := catalog.Categories()
	if f == "" {
		return cats[0]
	}
	for i, c := range cats {
		if c == f {
			if i+1 < len(cats) {
				return cats[i+1]
			}
			return ""
		}
	}
	return ""
}

// current returns the selected entry, if the filtered list has one.
func (m model) current() (catalog.Entry, bool) {
	if len(m.filtered) == 0 {
		return catalog.Entry{}, false
	}
	return m.entries[m.filtered[m.cursor]], true
}

// Init initializes the browser model
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input and window sizing
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetail()
			}

		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.refreshDetail()
			}

		case "tab":
			m.applyFilter(nextFilter(m.filter))
			m.refreshDetail()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		detailWidth := maxInt(20, msg.Width-listWidth-3)
		detailHeight := maxInt(5, msg.Height-4)
		if !m.ready {
			m.viewport = viewport.New(detailWidth, detailHeight)
			m.ready = true
		} else {
			m.viewport.Width = detailWidth
			m.viewport.Height = detailHeight
		}
		m.refreshDetail()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) refreshDetail() {
	if !m.ready {
		return
	}
	entry, ok := m.current()
	if !ok {
		m.viewport.SetContent(mutedStyle.Render("No patterns in this category."))
		return
	}
	m.viewport.SetContent(detail(entry, m.viewport.Width))
}

// View renders the browser
func (m model) View() string {
	if !m.ready {
		return "Loading catalog..."
	}

	var b strings.Builder

	// Header
	filterName := "All"
	if m.filter != "" {
		filterName = m.filter.String()
	}
	noun := "patterns"
	if len(m.filtered) == 1 {
		noun = "pattern"
	}
	b.WriteString(titleStyle.Render("Magpie") +
		mutedStyle.Render(fmt.Sprintf("  %d %s", len(m.filtered), noun)) +
		badgeStyle.Render("  ["+filterName+"]") + "\n\n")

	// Body: list on the left, detail viewport on the right
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), " │ ", m.viewport.View()))
	b.WriteString("\n")

	// Footer
	b.WriteString(mutedStyle.Render("[↑/↓] Navigate    [Tab] Category    [q] Quit"))

	return b.String()
}

// listView renders the scrolling pattern list column.
func (m model) listView() string {
	visible := maxInt(1, m.height-4)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := minInt(len(m.filtered), start+visible)

	var b strings.Builder
	for row := start; row < end; row++ {
		entry := m.entries[m.filtered[row]]
		name := truncate(entry.Name, listWidth-2)
		if row == m.cursor {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		if row < end-1 {
			b.WriteString("\n")
		}
	}
	if len(m.filtered) == 0 {
		b.WriteString(mutedStyle.Render("  (empty)"))
	}

	return lipgloss.NewStyle().Width(listWidth).Render(b.String())
}

// detail renders the full pattern card for the right-hand pane.
func detail(entry catalog.Entry, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(entry.Name) + "  " +
		badgeStyle.Render("("+entry.Category.String()+")") + "\n")
	if len(entry.AlsoKnownAs) > 0 {
		b.WriteString(labelStyle.Render("Also known as: ") + strings.Join(entry.AlsoKnownAs, ", ") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(maxInt(20, width-2)).Render(entry.Purpose) + "\n\n")

	b.WriteString(labelStyle.Render("Participants") + "\n")
	for _, p := range entry.Participants {
		b.WriteString("  - " + p + "\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Keywords: ") + strings.Join(entry.Keywords, ", ") + "\n")
	if len(entry.Related) > 0 {
		b.WriteString(labelStyle.Render("Related: ") + strings.Join(entry.Related, ", ") + "\n")
	}

	return b.String()
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

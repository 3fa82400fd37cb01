package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal shows the keyboard shortcut reference.
type HelpModal struct {
	Modal
	theme Theme
}

// NewHelpModal creates a new HelpModal instance
func NewHelpModal(theme Theme) HelpModal {
	return HelpModal{
		Modal: NewModal("", 64, 24),
		theme: theme,
	}
}

// SetSize updates the modal size based on terminal dimensions
func (m *HelpModal) SetSize(width, height int) {
	modalWidth := 64
	modalHeight := 24

	if modalWidth > width-4 {
		modalWidth = width - 4
	}
	if modalHeight > height-4 {
		modalHeight = height - 4
	}

	m.width = modalWidth
	m.height = modalHeight
}

// Update handles input for the help modal
func (m HelpModal) Update(msg tea.Msg) (HelpModal, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			m.Hide()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{"NAVIGATION", []helpEntry{
		{"h / ←", "previous tweet"},
		{"l / →", "next tweet"},
		{"r", "random tweet"},
		{"j / k", "scroll detail pane"},
	}},
	{"ANNOTATION", []helpEntry{
		{"a", "edit tag"},
		{"n", "edit note"},
		{"u", "edit username"},
		{"s", "save tag and note"},
		{"b", "toggle bookmark"},
		{"e", "export all annotations"},
	}},
	{"FILTERS", []helpEntry{
		{"/", "edit keyword search"},
		{"d", "edit date range"},
		{"t", "cycle tag filter"},
		{"B", "toggle bookmarked-only view"},
	}},
	{"OTHER", []helpEntry{
		{"o", "open tweet in browser"},
		{"tab", "cycle input fields"},
		{"esc", "leave input field"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}},
}

// View renders the help modal
func (m HelpModal) View() string {
	if !m.visible {
		return ""
	}

	theme := m.theme
	var content strings.Builder

	title := "KEYBOARD SHORTCUTS"
	titlePadding := (m.width - 4 - lipgloss.Width(title)) / 2
	if titlePadding < 0 {
		titlePadding = 0
	}
	content.WriteString(theme.SelectedStyle().Render(strings.Repeat(" ", titlePadding) + title))
	content.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	descStyle := lipgloss.NewStyle().Foreground(theme.White)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.Gray)

	for _, section := range helpSections {
		content.WriteString(sectionStyle.Render("── " + section.title))
		content.WriteString("\n")
		for _, e := range section.entries {
			line := fmt.Sprintf("  %s  %s",
				keyStyle.Render(fmt.Sprintf("%-8s", e.key)),
				descStyle.Render(e.desc),
			)
			content.WriteString(line)
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	m.Modal.SetContent(content.String())
	return m.Modal.View(theme)
}

// ViewWithOverlay renders the help modal over the given background
func (m HelpModal) ViewWithOverlay(backgroundView string, termWidth, termHeight int) string {
	if !m.visible {
		return backgroundView
	}

	bgLines := strings.Split(backgroundView, "\n")
	for i := range bgLines {
		if i == 0 {
			continue
		}
		bgLines[i] = strings.Repeat(" ", termWidth)
	}

	modalView := m.View()
	modalLines := strings.Split(modalView, "\n")
	startY := maxInt(0, (termHeight-len(modalLines))/2)
	startX := maxInt(0, (termWidth-(m.width+4))/2)

	result := make([]string, maxInt(len(bgLines), startY+len(modalLines)))
	copy(result, bgLines)

	padding := strings.Repeat(" ", startX)
	for i, line := range modalLines {
		if startY+i < len(result) {
			result[startY+i] = padding + line
		}
	}

	return strings.Join(result, "\n")
}

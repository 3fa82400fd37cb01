package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Modal is a generic centered overlay component.
type Modal struct {
	title   string
	width   int
	height  int
	content string
	visible bool
}

// NewModal creates a new Modal instance
func NewModal(title string, width, height int) Modal {
	return Modal{
		title:  title,
		width:  width,
		height: height,
	}
}

// Show makes the modal visible
func (m *Modal) Show() {
	m.visible = true
}

// Hide makes the modal invisible
func (m *Modal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is currently visible
func (m Modal) IsVisible() bool {
	return m.visible
}

// SetContent updates the modal content
func (m *Modal) SetContent(content string) {
	m.content = content
}

// View renders the modal if visible
func (m Modal) View(theme Theme) string {
	if !m.visible {
		return ""
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Width(m.width).
		Height(m.height).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Accent).
		MarginBottom(1)

	var full strings.Builder
	if m.title != "" {
		full.WriteString(titleStyle.Render(m.title))
		full.WriteString("\n")
	}
	full.WriteString(m.content)

	return modalStyle.Render(full.String())
}

// ViewWithOverlay renders the modal centered over a blanked background,
// keeping the first line (the header bar) intact.
func (m Modal) ViewWithOverlay(backgroundView string, termWidth, termHeight int, theme Theme) string {
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

	modalView := m.View(theme)
	if modalView == "" {
		return strings.Join(bgLines, "\n")
	}

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

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

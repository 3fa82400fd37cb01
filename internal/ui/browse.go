package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rsaidi/tweetscope/internal/session"
)

// buildViewStateString creates a formatted string showing the active filters
func buildViewStateString(m Model) string {
	var states []string

	tag := m.sess.Criteria.Tag
	if tag == "" {
		tag = session.TagAll
	}
	states = append(states, "Tag: "+tag)

	if m.sess.Criteria.Keyword != "" {
		states = append(states, fmt.Sprintf("Search: %q", m.sess.Criteria.Keyword))
	}

	if m.sess.Criteria.BookmarkedOnly {
		states = append(states, "View: BOOKMARKED")
	} else {
		states = append(states, "View: ALL")
	}

	states = append(states, fmt.Sprintf("Matches: %d/%d", len(m.filtered), len(m.tweets)))

	return strings.Join(states, " | ")
}

// renderBrowse renders the full browse screen: header, filter bar, the
// detail and annotation panes, and the status line.
func renderBrowse(m Model) string {
	if m.width == 0 {
		return "Loading..."
	}

	theme := m.theme

	// Header bar with right-aligned view state
	title := " TWEETSCOPE"
	stateString := fmt.Sprintf("%s  ◆ %s ", buildViewStateString(m), time.Now().Format("15:04"))

	spacing := "  "
	if pad := m.width - lipgloss.Width(title) - lipgloss.Width(stateString); pad > 0 {
		spacing = strings.Repeat(" ", pad)
	}
	header := theme.HeaderStyle().Width(m.width).Render(title + spacing + stateString)

	filterBar := renderFilterBar(m, theme)

	contentHeight := m.height - 6
	if contentHeight < 5 {
		contentHeight = 5
	}

	detailWidth := m.width * 3 / 5
	if detailWidth < 40 {
		detailWidth = 40
	}
	annWidth := m.width - detailWidth - 3
	if annWidth < 30 {
		annWidth = 30
	}

	var main string
	if len(m.filtered) == 0 {
		main = lipgloss.NewStyle().
			Width(m.width).
			Height(contentHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Render(renderNoMatches(theme))
	} else {
		detailStyle := theme.BorderStyle().
			Width(detailWidth).
			Height(contentHeight).
			Padding(0, 1)

		annStyle := theme.BorderStyle().
			Width(annWidth).
			Height(contentHeight).
			Padding(0, 1)

		main = lipgloss.JoinHorizontal(
			lipgloss.Top,
			detailStyle.Render(m.viewport.View()),
			annStyle.Render(renderAnnotationPane(m, annWidth, theme)),
		)
	}

	// Status bar: transient message wins over key hints
	statusStyle := lipgloss.NewStyle().
		Background(theme.DarkGray).
		Foreground(theme.Gray).
		Width(m.width).
		Padding(0, 1)

	var statusText string
	if m.statusMessage != "" {
		statusText = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(m.statusMessage)
	} else if m.focus != focusBrowse {
		statusText = "tab:next field  shift+tab:previous  enter/esc:done"
	} else {
		statusText = "h/l:prev/next  r:random  b:bookmark  s:save  e:export  /:search  d:dates  t:tag filter  B:bookmarked  o:open  ?:help  q:quit"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		filterBar,
		main,
		statusStyle.Render(statusText),
	)
}

// renderFilterBar shows the keyword and date-range inputs side by side.
func renderFilterBar(m Model, theme Theme) string {
	keywordView := m.keyword.View()
	dateView := m.dateRange.View()

	var bookmarkBadge string
	if m.sess.Criteria.BookmarkedOnly {
		bookmarkBadge = lipgloss.NewStyle().Foreground(theme.Orange).Render("★ bookmarked only")
	} else {
		bookmarkBadge = theme.MutedStyle().Render("★ off")
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(keywordView + "   " + dateView + "   " + bookmarkBadge)
}

// renderAnnotationPane shows position, the editable fields and the
// bookmark state for the current tweet.
func renderAnnotationPane(m Model, width int, theme Theme) string {
	_, idx, ok := m.Current()
	if !ok {
		return ""
	}

	labelStyle := theme.MutedStyle()
	var b strings.Builder

	position := fmt.Sprintf("Tweet %d/%d", idx+1, len(m.tweets))
	if p := m.sess.Position(m.filtered); p > 0 {
		position += fmt.Sprintf("  ·  match %d of %d", p, len(m.filtered))
	}
	b.WriteString(theme.SelectedStyle().Render(position))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Username (display only)"))
	b.WriteString("\n")
	b.WriteString(m.userInput.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Tag"))
	b.WriteString("\n")
	b.WriteString(m.tagInput.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Note"))
	b.WriteString("\n")
	b.WriteString(m.noteInput.View())
	b.WriteString("\n\n")

	if m.sess.Bookmarked(idx) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Orange).Render("★ bookmarked"))
	} else {
		b.WriteString(labelStyle.Render("☆ not bookmarked"))
	}

	if _, saved := m.sess.Annotation(idx); saved {
		b.WriteString("   ")
		b.WriteString(theme.SuccessStyle().Render("● annotated"))
	}

	return b.String()
}

// renderNoMatches is the empty filter result state: nothing is
// selectable until the criteria change.
func renderNoMatches(theme Theme) string {
	return lipgloss.NewStyle().
		Foreground(theme.Gray).
		Italic(true).
		Render("No tweets match your filters.")
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsaidi/tweetscope/internal/corpus"
	"github.com/rsaidi/tweetscope/internal/session"
)

// testTweets returns a small corpus in loaded-and-sorted order: the
// unparseable date first, then ascending dates.
func testTweets() []corpus.Tweet {
	return []corpus.Tweet{
		{Content: "broken clock", TweetDate: "bad-date", TweetURL: "https://twitter.com/a/status/1", ProfileURL: "https://twitter.com/a"},
		{Content: "mourning thread", TweetDate: "2021/05/01", TweetURL: "https://twitter.com/b/status/2", ProfileURL: "https://twitter.com/b"},
		{Content: "supportive reply", TweetDate: "2021/05/02", TweetURL: "https://twitter.com/c/status/3", ProfileURL: "https://twitter.com/c"},
		{Content: "late arrival", TweetDate: "2021/05/07", TweetURL: "https://twitter.com/d/status/4", ProfileURL: "https://twitter.com/d"},
	}
}

// testModel creates a sized Model over the test corpus.
func testModel() Model {
	m := NewModel(testTweets(), session.New(), "annotations_export.json", DuskTheme)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press feeds a sequence of keys through Update.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsaidi/tweetscope/internal/corpus"
	"github.com/rsaidi/tweetscope/internal/session"
)

// focusArea identifies which part of the UI receives key input.
type focusArea int

const (
	focusBrowse focusArea = iota
	focusKeyword
	focusDateRange
	focusUser
	focusTag
	focusNote
)

// inputCycle is the tab order through the editable fields.
var inputCycle = []focusArea{focusKeyword, focusDateRange, focusUser, focusTag, focusNote}

// Model represents the application state for the TUI
type Model struct {
	tweets   []corpus.Tweet
	sess     *session.Session
	filtered []int // indices satisfying the current criteria, ascending

	exportPath string
	theme      Theme

	focus     focusArea
	keyword   textinput.Model
	dateRange textinput.Model
	userInput textinput.Model
	tagInput  textinput.Model
	noteInput textarea.Model

	viewport viewport.Model // Scrollable tweet detail pane
	ready    bool           // Viewport ready flag
	width    int            // Terminal width
	height   int            // Terminal height

	statusMessage string // Temporary status message to display
	helpModal     HelpModal

	lastSynced int // record index currently loaded into the inputs, -1 before first sync
}

// clearStatusMsg is sent to clear the status message after a delay
type clearStatusMsg struct{}

// exportDoneMsg reports the outcome of an export action
type exportDoneMsg struct {
	path string
	err  error
}

// NewModel creates a new Model instance over an already-loaded corpus.
func NewModel(tweets []corpus.Tweet, sess *session.Session, exportPath string, theme Theme) Model {
	keyword := textinput.New()
	keyword.Placeholder = "content keyword"
	keyword.Prompt = "/ "
	keyword.CharLimit = 256

	dateRange := textinput.New()
	dateRange.Placeholder = "YYYY/MM/DD - YYYY/MM/DD"
	dateRange.Prompt = "□ "
	dateRange.CharLimit = 64

	userInput := textinput.New()
	userInput.Placeholder = "username"
	userInput.Prompt = "@ "
	userInput.CharLimit = 128

	tagInput := textinput.New()
	tagInput.Placeholder = "e.g. grief, support, silencing"
	tagInput.Prompt = "# "
	tagInput.CharLimit = 128

	noteInput := textarea.New()
	noteInput.Placeholder = "Notes"
	noteInput.SetHeight(5)
	noteInput.CharLimit = 0

	m := Model{
		tweets:     tweets,
		sess:       sess,
		exportPath: exportPath,
		theme:      theme,
		keyword:    keyword,
		dateRange:  dateRange,
		userInput:  userInput,
		tagInput:   tagInput,
		noteInput:  noteInput,
		viewport:   viewport.New(80, 20),
		helpModal:  NewHelpModal(theme),
		lastSynced: -1,
	}
	m.refilter()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Current returns the tweet under the cursor. ok is false when the
// filtered list is empty and nothing is displayable.
func (m Model) Current() (corpus.Tweet, int, bool) {
	if len(m.filtered) == 0 {
		return corpus.Tweet{}, 0, false
	}
	idx := m.sess.Index
	if idx < 0 || idx >= len(m.tweets) {
		return corpus.Tweet{}, 0, false
	}
	return m.tweets[idx], idx, true
}

// Filtered exposes the current filtered index list for tests.
func (m Model) Filtered() []int {
	return m.filtered
}

// refilter is the explicit "recompute filtered list, then clamp
// cursor" step run after every mutating action.
func (m *Model) refilter() {
	m.filtered = m.sess.Filtered(m.tweets)
	m.sess.Revalidate(m.filtered)
	m.syncIfMoved()
}

// syncIfMoved reloads the inputs and detail pane when the cursor moved
// to a different record since the last sync.
func (m *Model) syncIfMoved() {
	if len(m.filtered) == 0 {
		return
	}
	if m.sess.Index != m.lastSynced {
		m.syncRecord()
	}
}

// syncRecord loads the current record into the annotation inputs and
// re-renders the detail pane. Saved values win; the username falls
// back to the handle derived from the profile URL.
func (m *Model) syncRecord() {
	tweet, idx, ok := m.Current()
	if !ok {
		return
	}

	ann, hasAnn := m.sess.Annotation(idx)
	m.tagInput.SetValue(ann.Tag)
	m.noteInput.SetValue(ann.Note)

	user := ann.User
	if user == "" {
		user = corpus.Username(tweet.ProfileURL)
	}
	m.userInput.SetValue(user)

	md := buildTweetMarkdown(tweet, user, ann, hasAnn)
	m.viewport.SetContent(renderMarkdown(md, m.viewport.Width, m.theme))
	m.viewport.GotoTop()

	m.lastSynced = idx
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.helpModal.SetSize(msg.Width, msg.Height)
		// Re-render the detail pane at the new width
		if m.lastSynced >= 0 {
			m.syncRecord()
		}
		m.ready = true
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("✗ Export failed: %v", msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("✓ Annotations exported to %s", msg.path)
		}
		return m, clearStatusAfterDelay(3 * time.Second)
	}

	// Help modal swallows input while visible
	if m.helpModal.IsVisible() {
		var cmd tea.Cmd
		m.helpModal, cmd = m.helpModal.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus != focusBrowse {
			return m.handleInputKey(key)
		}
		return m.handleBrowseKey(key)
	}

	return m, nil
}

// layout recomputes pane sizes from the terminal dimensions.
func (m *Model) layout() {
	contentHeight := m.height - 6 // header + filter bar + status + borders
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

	m.viewport.Width = detailWidth - 4
	m.viewport.Height = contentHeight - 2

	inputWidth := annWidth - 6
	m.keyword.Width = m.width/3 - 6
	m.dateRange.Width = m.width/3 - 6
	m.userInput.Width = inputWidth
	m.tagInput.Width = inputWidth
	m.noteInput.SetWidth(inputWidth)
}

// handleBrowseKey processes keys while no input field is focused.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.helpModal.SetSize(m.width, m.height)
		m.helpModal.Show()
		return m, nil

	// Navigation within the filtered list
	case "h", "left":
		if len(m.filtered) > 0 {
			m.sess.Prev(m.filtered)
			m.syncIfMoved()
		}
	case "l", "right":
		if len(m.filtered) > 0 {
			m.sess.Next(m.filtered)
			m.syncIfMoved()
		}
	case "r":
		if len(m.filtered) > 0 {
			m.sess.Random(m.filtered)
			m.syncIfMoved()
		}

	// Detail pane scrolling
	case "j", "down":
		m.viewport.LineDown(1)
	case "k", "up":
		m.viewport.LineUp(1)

	case "b":
		if _, idx, ok := m.Current(); ok {
			m.sess.ToggleBookmark(idx)
			if m.sess.Bookmarked(idx) {
				m.statusMessage = "★ Bookmarked"
			} else {
				m.statusMessage = "☆ Bookmark removed"
			}
			m.refilter()
			return m, clearStatusAfterDelay(2 * time.Second)
		}

	case "B":
		m.sess.Criteria.BookmarkedOnly = !m.sess.Criteria.BookmarkedOnly
		m.refilter()

	case "t":
		m.cycleTagFilter()
		m.refilter()

	case "s":
		if tweet, idx, ok := m.Current(); ok {
			m.sess.Save(idx, session.Annotation{
				Tag:     m.tagInput.Value(),
				Note:    m.noteInput.Value(),
				Content: tweet.Content,
				Date:    tweet.TweetDate,
				User:    m.userInput.Value(),
				URL:     tweet.TweetURL,
			})
			m.statusMessage = "✓ Saved"
			m.refilter()
			return m, clearStatusAfterDelay(2 * time.Second)
		}

	case "e":
		return m, exportCmd(m.sess, m.exportPath)

	case "o":
		if tweet, _, ok := m.Current(); ok {
			if err := openInBrowser(tweet.TweetURL); err != nil {
				m.statusMessage = "Failed to open browser"
			} else {
				m.statusMessage = "Opening in browser..."
			}
			return m, clearStatusAfterDelay(2 * time.Second)
		}

	// Focus an input field
	case "/":
		return m.focusField(focusKeyword)
	case "d":
		return m.focusField(focusDateRange)
	case "u":
		return m.focusField(focusUser)
	case "a":
		return m.focusField(focusTag)
	case "n":
		return m.focusField(focusNote)
	case "tab":
		return m.focusField(focusKeyword)
	}

	return m, nil
}

// handleInputKey processes keys while an input field is focused.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.focusField(focusBrowse)

	case "tab":
		return m.focusField(nextField(m.focus, 1))

	case "shift+tab":
		return m.focusField(nextField(m.focus, -1))

	case "enter":
		// The note textarea keeps enter for newlines
		if m.focus != focusNote {
			return m.focusField(focusBrowse)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusKeyword:
		before := m.keyword.Value()
		m.keyword, cmd = m.keyword.Update(msg)
		if m.keyword.Value() != before {
			m.sess.Criteria.Keyword = m.keyword.Value()
			m.refilter()
		}
	case focusDateRange:
		before := m.dateRange.Value()
		m.dateRange, cmd = m.dateRange.Update(msg)
		if m.dateRange.Value() != before {
			m.sess.Criteria.DateRange = m.dateRange.Value()
			m.refilter()
		}
	case focusUser:
		m.userInput, cmd = m.userInput.Update(msg)
	case focusTag:
		m.tagInput, cmd = m.tagInput.Update(msg)
	case focusNote:
		m.noteInput, cmd = m.noteInput.Update(msg)
	}

	return m, cmd
}

// focusField moves focus, blurring everything else.
func (m Model) focusField(f focusArea) (tea.Model, tea.Cmd) {
	m.keyword.Blur()
	m.dateRange.Blur()
	m.userInput.Blur()
	m.tagInput.Blur()
	m.noteInput.Blur()

	m.focus = f

	var cmd tea.Cmd
	switch f {
	case focusKeyword:
		cmd = m.keyword.Focus()
	case focusDateRange:
		cmd = m.dateRange.Focus()
	case focusUser:
		cmd = m.userInput.Focus()
	case focusTag:
		cmd = m.tagInput.Focus()
	case focusNote:
		cmd = m.noteInput.Focus()
	}

	return m, cmd
}

// nextField steps through the tab order in the given direction.
func nextField(current focusArea, dir int) focusArea {
	for i, f := range inputCycle {
		if f == current {
			n := (i + dir + len(inputCycle)) % len(inputCycle)
			return inputCycle[n]
		}
	}
	return inputCycle[0]
}

// cycleTagFilter advances the tag filter through "All" plus every
// distinct saved tag.
func (m *Model) cycleTagFilter() {
	options := append([]string{session.TagAll}, m.sess.Tags()...)

	current := m.sess.Criteria.Tag
	if current == "" {
		current = session.TagAll
	}

	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	m.sess.Criteria.Tag = options[(idx+1)%len(options)]
}

// View renders the current model state
func (m Model) View() string {
	base := renderBrowse(m)

	if m.helpModal.IsVisible() {
		return m.helpModal.ViewWithOverlay(base, m.width, m.height)
	}

	return base
}

// exportCmd returns a command that writes the annotation snapshot.
func exportCmd(sess *session.Session, path string) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: sess.Export(path)}
	}
}

// clearStatusAfterDelay returns a command that clears the status message after a delay
func clearStatusAfterDelay(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

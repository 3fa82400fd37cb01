package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/rsaidi/tweetscope/internal/corpus"
	"github.com/rsaidi/tweetscope/internal/session"
)

// buildTweetMarkdown composes the detail-pane document for one tweet:
// metadata, the quoted content, and the saved annotation if any.
func buildTweetMarkdown(t corpus.Tweet, user string, ann session.Annotation, hasAnn bool) string {
	var md strings.Builder

	md.WriteString(fmt.Sprintf("# @%s\n\n", user))

	date := t.TweetDate
	if date == "" {
		date = "Unknown date"
	}
	md.WriteString(fmt.Sprintf("**Date:** %s\n\n", date))

	if t.TweetURL != "" {
		md.WriteString(fmt.Sprintf("[View tweet](%s)\n\n", t.TweetURL))
	}

	// Quote every line so multi-line tweets stay inside one block
	for _, line := range strings.Split(t.Content, "\n") {
		md.WriteString("> " + line + "\n")
	}
	md.WriteString("\n")

	if hasAnn {
		md.WriteString("## Annotation\n\n")
		if ann.Tag != "" {
			md.WriteString(fmt.Sprintf("- **Tag:** %s\n", ann.Tag))
		}
		if ann.Note != "" {
			md.WriteString(fmt.Sprintf("- **Note:** %s\n", strings.ReplaceAll(ann.Note, "\n", " ")))
		}
		if ann.Tag == "" && ann.Note == "" {
			md.WriteString("- saved with empty tag and note\n")
		}
	}

	return md.String()
}

// renderMarkdown renders the detail document through glamour using the
// theme's style. Falls back to the raw markdown if rendering fails, so
// a styling problem never hides the tweet itself.
func renderMarkdown(md string, width int, theme Theme) string {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(theme.ToGlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

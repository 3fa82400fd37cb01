package ui

import (
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the TUI
type Theme struct {
	Name     string
	Accent   lipgloss.Color // Primary UI accent, selection, headers
	Tag      lipgloss.Color // Tags and links
	Green    lipgloss.Color // Success indicators
	Orange   lipgloss.Color // Bookmarks
	Red      lipgloss.Color // Errors and failures
	Gray     lipgloss.Color // Muted text
	DarkGray lipgloss.Color // Borders and status bar background
	White    lipgloss.Color // Main text
}

// DuskTheme is the default dark palette
var DuskTheme = Theme{
	Name:     "dusk",
	Accent:   lipgloss.Color("#00D9FF"),
	Tag:      lipgloss.Color("#E6CCFF"),
	Green:    lipgloss.Color("#00FF88"),
	Orange:   lipgloss.Color("#FF8800"),
	Red:      lipgloss.Color("#FF0066"),
	Gray:     lipgloss.Color("#666666"),
	DarkGray: lipgloss.Color("#333333"),
	White:    lipgloss.Color("#EEEEEE"),
}

// PaperTheme provides softer tones for lighter terminals
var PaperTheme = Theme{
	Name:     "paper",
	Accent:   lipgloss.Color("#06B6D4"),
	Tag:      lipgloss.Color("#8B5CF6"),
	Green:    lipgloss.Color("#22C55E"),
	Orange:   lipgloss.Color("#FB923C"),
	Red:      lipgloss.Color("#F43F5E"),
	Gray:     lipgloss.Color("#64748B"),
	DarkGray: lipgloss.Color("#475569"),
	White:    lipgloss.Color("#F1F5F9"),
}

// AvailableThemes lists every theme selectable from config
var AvailableThemes = []Theme{
	DuskTheme,
	PaperTheme,
}

// ThemeByName returns the named theme, falling back to dusk.
func ThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return DuskTheme
}

func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.DarkGray).
		Foreground(t.Accent).
		Bold(true)
}

func (t Theme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
}

func (t Theme) TagStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Tag)
}

func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Green)
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Red).
		Bold(true)
}

func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Gray)
}

func (t Theme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.White)
}

func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.DarkGray)
}

// ToGlamourStyle converts the theme to a glamour style config for the
// tweet detail pane.
func (t Theme) ToGlamourStyle() ansi.StyleConfig {
	style := styles.DraculaStyleConfig

	// No document margin; the viewport supplies its own padding
	style.Document.Margin = uintPtr(0)
	style.Document.StylePrimitive.Color = stringPtr(string(t.White))

	style.Heading.StylePrimitive.Color = stringPtr(string(t.Accent))
	style.Heading.StylePrimitive.Bold = boolPtr(true)

	style.H1.StylePrimitive.Color = stringPtr(string(t.Accent))
	style.H1.StylePrimitive.Bold = boolPtr(true)
	style.H1.Prefix = "▸ "
	style.H1.Suffix = ""
	style.H1.Format = ""

	style.H2.StylePrimitive.Color = stringPtr(string(t.Accent))
	style.H2.StylePrimitive.Bold = boolPtr(true)
	style.H2.Prefix = "▸ "
	style.H2.Suffix = ""
	style.H2.Format = ""

	style.Link.Color = stringPtr(string(t.Tag))
	style.LinkText.Color = stringPtr(string(t.Tag))
	style.Emph.Color = stringPtr(string(t.Orange))
	style.Strong.Color = stringPtr(string(t.Accent))

	style.Item.BlockPrefix = "• "
	style.Item.Color = stringPtr(string(t.White))
	style.Item.Format = ""

	// Quoted tweet content reads better slightly dimmed
	style.BlockQuote.StylePrimitive.Color = stringPtr("#999999")
	style.BlockQuote.StylePrimitive.Italic = boolPtr(true)

	return style
}

// Helper functions for creating pointers
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }
func boolPtr(b bool) *bool       { return &b }

// Package palette implements the interactive color browser for the
// LogbookOne design tokens.
package palette

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"logbookone/pkg/assets"
	"logbookone/pkg/config"
	"logbookone/pkg/theme"
)

const swatchWidth = 6

// Model is the bubbletea model for the palette browser.
type Model struct {
	tokens     []theme.Token
	cursor     int
	appearance theme.Appearance
	keys       KeyMap
	width      int
}

// New creates a browser showing every token under the given appearance.
// Auto is resolved against the terminal background up front so the 'a'
// toggle has a concrete starting point.
func New(appearance theme.Appearance) Model {
	return Model{
		tokens:     theme.Tokens(),
		appearance: appearance.Resolve(),
		keys:       NewKeyMap(),
	}
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

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tokens)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Appearance):
			m.appearance = m.toggledAppearance()
			// Remember the choice for the next run. Persistence is best
			// effort; the browser keeps working without a writable home.
			_ = config.SetAppearance(m.appearance.String())
		}
	}

	return m, nil
}

func (m Model) toggledAppearance() theme.Appearance {
	if m.appearance == theme.Dark {
		return theme.Light
	}
	return theme.Dark
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := theme.AccentStyle.Render("LogbookOne palette")
	bundle := theme.SecondaryTextStyle.Render(assets.BundleID)
	b.WriteString(fmt.Sprintf("%s  %s\n\n", title, bundle))

	nameWidth := maxNameWidth(m.tokens)
	for i, tok := range m.tokens {
		b.WriteString(m.renderRow(tok, i == m.cursor, nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderRow(tok theme.Token, selected bool, nameWidth int) string {
	hex := theme.Hex(tok, m.appearance)
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", swatchWidth))

	marker := "  "
	nameStyle := theme.PrimaryTextStyle
	if selected {
		marker = theme.AccentStyle.Render("▶ ")
		nameStyle = theme.AccentStyle
	}

	name := nameStyle.Render(runewidth.FillRight(tok.Name(), nameWidth))
	values := theme.SecondaryTextStyle.Render(
		fmt.Sprintf("light %s  dark %s", theme.Hex(tok, theme.Light), theme.Hex(tok, theme.Dark)))

	return fmt.Sprintf("%s%s %s  %s", marker, swatch, name, values)
}

func (m Model) renderFooter() string {
	var parts []string
	for _, binding := range m.keys.HelpEntries() {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	footer := strings.Join(parts, "  ·  ")
	footer += fmt.Sprintf("  ·  showing %s", m.appearance)
	return theme.SecondaryTextStyle.Render(footer)
}

func maxNameWidth(tokens []theme.Token) int {
	width := 0
	for _, tok := range tokens {
		if w := runewidth.StringWidth(tok.Name()); w > width {
			width = w
		}
	}
	return width
}

// Selected returns the token under the cursor.
func (m Model) Selected() theme.Token {
	return m.tokens[m.cursor]
}

// Appearance returns the appearance currently shown.
func (m Model) Appearance() theme.Appearance {
	return m.appearance
}

// Package theme maps the LogbookOne catalog colors to terminal colors with
// semantic naming. Components should depend on tokens and the styles built
// from them rather than on color literals.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Appearance selects between the light and dark variant of the palette.
type Appearance int

const (
	// Auto defers to the terminal background at resolve time.
	Auto Appearance = iota
	Light
	Dark
)

// ErrUnknownAppearance is returned when a string names no appearance.
var ErrUnknownAppearance = errors.New("unknown appearance")

// Palette defines both variants of every catalog color. Hex pairs follow the
// app's color sets: the light value renders on light backgrounds, the dark
// value on dark ones.
var palette = [tokenCount]lipgloss.AdaptiveColor{
	AppAccent:      {Light: "#3478F6", Dark: "#4C8DFF"}, // brand blue
	AppBackground:  {Light: "#F2F2F7", Dark: "#000000"}, // grouped background
	CardBackground: {Light: "#FFFFFF", Dark: "#1C1C1E"}, // elevated surface
	Danger:         {Light: "#FF3B30", Dark: "#FF453A"}, // red for destructive actions
	NoteColor:      {Light: "#AF52DE", Dark: "#BF5AF2"}, // purple for notes
	PaymentColor:   {Light: "#30B0C7", Dark: "#40C8E0"}, // teal for payments
	PrimaryText:    {Light: "#1C1C1E", Dark: "#FFFFFF"},
	SecondaryText:  {Light: "#6E6E73", Dark: "#8E8E93"},
	Success:        {Light: "#34C759", Dark: "#30D158"}, // green for confirmations
	TaskColor:      {Light: "#007AFF", Dark: "#0A84FF"}, // blue for tasks
	Warning:        {Light: "#FF9500", Dark: "#FF9F0A"}, // orange for warnings
}

// Color returns the adaptive color for a token. lipgloss picks the variant
// from the terminal background at render time.
func Color(t Token) lipgloss.AdaptiveColor {
	if t < 0 || t >= tokenCount {
		return lipgloss.AdaptiveColor{}
	}
	return palette[t]
}

// Hex returns the hex value of a token under a concrete appearance. Auto is
// resolved against the terminal background first.
func Hex(t Token, a Appearance) string {
	if t < 0 || t >= tokenCount {
		return ""
	}
	if a.Resolve() == Dark {
		return palette[t].Dark
	}
	return palette[t].Light
}

// Resolve collapses Auto into Light or Dark using the terminal background.
// Light and Dark resolve to themselves.
func (a Appearance) Resolve() Appearance {
	if a != Auto {
		return a
	}
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

func (a Appearance) String() string {
	switch a {
	case Auto:
		return "auto"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Appearance(%d)", int(a))
}

// ParseAppearance maps "auto", "light" or "dark" to an Appearance.
func ParseAppearance(s string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownAppearance, s)
}

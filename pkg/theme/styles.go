package theme

import "github.com/charmbracelet/lipgloss"

// Shared styles built from the token palette. Entry kinds (task, note,
// payment) each get their own accent so lists stay scannable.
var (
	PrimaryTextStyle   = lipgloss.NewStyle().Foreground(Color(PrimaryText))
	SecondaryTextStyle = lipgloss.NewStyle().Foreground(Color(SecondaryText))
	AccentStyle        = lipgloss.NewStyle().Foreground(Color(AppAccent)).Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Color(Success))
	WarningStyle = lipgloss.NewStyle().Foreground(Color(Warning))
	DangerStyle  = lipgloss.NewStyle().Foreground(Color(Danger)).Bold(true)

	TaskStyle    = lipgloss.NewStyle().Foreground(Color(TaskColor))
	NoteStyle    = lipgloss.NewStyle().Foreground(Color(NoteColor))
	PaymentStyle = lipgloss.NewStyle().Foreground(Color(PaymentColor))

	// CardStyle frames content the way the app renders cards.
	CardStyle = lipgloss.NewStyle().
			Background(Color(CardBackground)).
			Padding(0, 1)
)

// EntryStyle returns the accent style for one of the entry-kind tokens and
// falls back to primary text for everything else.
func EntryStyle(t Token) lipgloss.Style {
	switch t {
	case TaskColor:
		return TaskStyle
	case NoteColor:
		return NoteStyle
	case PaymentColor:
		return PaymentStyle
	}
	return PrimaryTextStyle
}

package theme

import (
	"errors"
	"fmt"

	"logbookone/pkg/assets"
)

// Token identifies one design-system color. The set is closed: every catalog
// color has exactly one token, so switches over Token can be checked for
// exhaustiveness and new colors are a compile-visible change.
type Token int

const (
	AppAccent Token = iota
	AppBackground
	CardBackground
	Danger
	NoteColor
	PaymentColor
	PrimaryText
	SecondaryText
	Success
	TaskColor
	Warning

	tokenCount // keep last
)

// ErrUnknownToken is returned when a name has no matching token.
var ErrUnknownToken = errors.New("unknown color token")

var tokenNames = [tokenCount]string{
	AppAccent:      assets.ColorNameAppAccent,
	AppBackground:  assets.ColorNameAppBackground,
	CardBackground: assets.ColorNameCardBackground,
	Danger:         assets.ColorNameDanger,
	NoteColor:      assets.ColorNameNoteColor,
	PaymentColor:   assets.ColorNamePaymentColor,
	PrimaryText:    assets.ColorNamePrimaryText,
	SecondaryText:  assets.ColorNameSecondaryText,
	Success:        assets.ColorNameSuccess,
	TaskColor:      assets.ColorNameTaskColor,
	Warning:        assets.ColorNameWarning,
}

// Tokens returns every token in catalog order. The returned slice is a copy.
func Tokens() []Token {
	tokens := make([]Token, tokenCount)
	for i := range tokens {
		tokens[i] = Token(i)
	}
	return tokens
}

// Name returns the catalog resource name for the token, e.g. "appAccent".
func (t Token) Name() string {
	if t < 0 || t >= tokenCount {
		return fmt.Sprintf("Token(%d)", int(t))
	}
	return tokenNames[t]
}

// String implements fmt.Stringer with the catalog resource name.
func (t Token) String() string {
	return t.Name()
}

// ParseToken maps a catalog resource name back to its token.
func ParseToken(name string) (Token, error) {
	for t, n := range tokenNames {
		if n == name {
			return Token(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownToken, name)
}
